package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var configureGlobals sync.Once

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// New builds the process logger. Console output colours levels for humans,
// JSON output is meant for log collectors.
func New(level, format string) (zerolog.Logger, error) {
	return NewWithWriter(os.Stdout, level, format)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	configureGlobals.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339Nano
		zerolog.DurationFieldUnit = time.Millisecond
		zerolog.DurationFieldInteger = true
	})

	var out io.Writer
	switch strings.ToLower(format) {
	case "", FormatConsole:
		out = consoleWriter(w)
	case FormatJSON:
		out = w
	default:
		return zerolog.Nop(), fmt.Errorf("invalid log format %q", format)
	}

	return zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Logger(), nil
}

func consoleWriter(w io.Writer) zerolog.ConsoleWriter {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "2006-01-02 15:04:05 MST",
	}

	output.FormatLevel = func(i interface{}) string {
		var color string
		level, _ := i.(string)
		level = strings.ToUpper(level)

		switch level {
		case "TRACE":
			color = "\x1b[36m"
		case "DEBUG":
			color = "\x1b[32m"
		case "INFO":
			color = "\x1b[34m"
		case "WARN":
			color = "\x1b[33m"
		case "ERROR":
			color = "\x1b[31m"
		case "FATAL":
			color = "\x1b[31;1m"
		case "PANIC":
			color = "\x1b[35m"
		default:
			color = "\x1b[0m"
		}

		return fmt.Sprintf("%s| %-6s|\x1b[0m", color, level)
	}

	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("\x1b[36m%s:\x1b[0m", i)
	}

	return output
}
