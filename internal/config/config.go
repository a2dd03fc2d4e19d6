package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the complete process configuration.
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	Catalog CatalogConfig
}

type ServerConfig struct {
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

type CatalogConfig struct {
	// Dir optionally overrides the embedded translations.
	Dir           string
	AllowDegraded bool
	DocsURL       string
}

const (
	defaultPort    = "8080"
	defaultDocsURL = "http://localhost:8080/docs"
)

// LoadConfig reads the configuration from environment variables, applying
// defaults for unset values.
func LoadConfig() (*Config, error) {
	readTimeout, err := durationEnv("READ_TIMEOUT", 15*time.Second)
	if err != nil {
		return nil, err
	}
	writeTimeout, err := durationEnv("WRITE_TIMEOUT", 15*time.Second)
	if err != nil {
		return nil, err
	}
	idleTimeout, err := durationEnv("IDLE_TIMEOUT", 60*time.Second)
	if err != nil {
		return nil, err
	}

	port := stringEnv("SERVER_PORT", defaultPort)
	if n, err := strconv.Atoi(port); err != nil || n < 1 || n > 65535 {
		return nil, fmt.Errorf("invalid SERVER_PORT: %q", port)
	}

	serverConfig := ServerConfig{
		Port:           port,
		ReadTimeout:    readTimeout,
		WriteTimeout:   writeTimeout,
		IdleTimeout:    idleTimeout,
		AllowedOrigins: listEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}

	logConfig := LogConfig{
		Level:  strings.ToLower(stringEnv("LOG_LEVEL", "info")),
		Format: strings.ToLower(stringEnv("LOG_FORMAT", "console")),
	}
	if logConfig.Format != "console" && logConfig.Format != "json" {
		return nil, fmt.Errorf("invalid LOG_FORMAT: %q", logConfig.Format)
	}

	allowDegraded, err := boolEnv("CATALOG_ALLOW_DEGRADED", false)
	if err != nil {
		return nil, err
	}

	catalogConfig := CatalogConfig{
		Dir:           os.Getenv("CATALOG_DIR"),
		AllowDegraded: allowDegraded,
		DocsURL:       stringEnv("DOCS_URL", defaultDocsURL),
	}

	return &Config{
		Server:  serverConfig,
		Log:     logConfig,
		Catalog: catalogConfig,
	}, nil
}

func stringEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return d, nil
}

func boolEnv(key string, fallback bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %v", key, err)
	}
	return b, nil
}

func listEnv(key string, fallback []string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
