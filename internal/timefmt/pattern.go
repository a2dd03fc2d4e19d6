// Package timefmt renders times through moment-style token patterns.
//
// Supported tokens:
//
//	YYYY  year, at least four digits
//	MMMM  month name taken from Names
//	MM    month, two digits
//	M     month
//	DD    day of month, two digits
//	D     day of month
//	HH    hour 00-23
//	H     hour 0-23
//	hh    hour 01-12
//	h     hour 1-12
//	mm    minute, two digits
//	ss    second, two digits
//	SSS   millisecond, three digits
//	A     meridiem taken from Names
//	Z     zone offset as ±HH:MM
//	ZZ    zone offset as ±HHMM
//	[..]  literal text
//
// Every other character is copied as is. Names are passed on every call, so a
// single pattern can be rendered in several languages concurrently.
package timefmt

import (
	"strconv"
	"strings"
	"time"
)

// Names holds the locale dependent words a pattern may reference.
type Names struct {
	Months   [12]string
	Meridiem [2]string
}

// EnglishNames is used when a locale provides no names of its own.
var EnglishNames = Names{
	Months: [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	Meridiem: [2]string{"AM", "PM"},
}

// tokens is ordered so that longer tokens are matched first.
var tokens = []string{"YYYY", "MMMM", "SSS", "MM", "DD", "HH", "hh", "mm", "ss", "ZZ", "M", "D", "H", "h", "A", "Z"}

// Format renders t, in its own location, through pattern.
func Format(t time.Time, pattern string, names Names) string {
	var b strings.Builder
	b.Grow(len(pattern) + 16)

	for i := 0; i < len(pattern); {
		if pattern[i] == '[' {
			end := strings.IndexByte(pattern[i+1:], ']')
			if end < 0 {
				b.WriteString(pattern[i:])
				break
			}
			b.WriteString(pattern[i+1 : i+1+end])
			i += end + 2
			continue
		}

		tok := matchToken(pattern[i:])
		if tok == "" {
			b.WriteByte(pattern[i])
			i++
			continue
		}
		writeToken(&b, t, tok, names)
		i += len(tok)
	}

	return b.String()
}

func matchToken(s string) string {
	for _, tok := range tokens {
		if strings.HasPrefix(s, tok) {
			return tok
		}
	}
	return ""
}

func writeToken(b *strings.Builder, t time.Time, tok string, names Names) {
	switch tok {
	case "YYYY":
		writePadded(b, t.Year(), 4)
	case "MMMM":
		b.WriteString(names.month(t.Month()))
	case "MM":
		writePadded(b, int(t.Month()), 2)
	case "M":
		b.WriteString(strconv.Itoa(int(t.Month())))
	case "DD":
		writePadded(b, t.Day(), 2)
	case "D":
		b.WriteString(strconv.Itoa(t.Day()))
	case "HH":
		writePadded(b, t.Hour(), 2)
	case "H":
		b.WriteString(strconv.Itoa(t.Hour()))
	case "hh":
		writePadded(b, hour12(t.Hour()), 2)
	case "h":
		b.WriteString(strconv.Itoa(hour12(t.Hour())))
	case "mm":
		writePadded(b, t.Minute(), 2)
	case "ss":
		writePadded(b, t.Second(), 2)
	case "SSS":
		writePadded(b, t.Nanosecond()/int(time.Millisecond), 3)
	case "A":
		b.WriteString(names.meridiem(t.Hour()))
	case "Z":
		writeZone(b, t, true)
	case "ZZ":
		writeZone(b, t, false)
	}
}

func (n Names) month(m time.Month) string {
	if name := n.Months[m-1]; name != "" {
		return name
	}
	return EnglishNames.Months[m-1]
}

func (n Names) meridiem(hour int) string {
	idx := 0
	if hour >= 12 {
		idx = 1
	}
	if v := n.Meridiem[idx]; v != "" {
		return v
	}
	return EnglishNames.Meridiem[idx]
}

func hour12(h int) int {
	h %= 12
	if h == 0 {
		return 12
	}
	return h
}

func writeZone(b *strings.Builder, t time.Time, colon bool) {
	_, secs := t.Zone()
	sign := byte('+')
	if secs < 0 {
		sign = '-'
		secs = -secs
	}
	mins := secs / 60
	b.WriteByte(sign)
	writePadded(b, mins/60, 2)
	if colon {
		b.WriteByte(':')
	}
	writePadded(b, mins%60, 2)
}

func writePadded(b *strings.Builder, v, width int) {
	s := strconv.Itoa(v)
	for i := len(s); i < width; i++ {
		b.WriteByte('0')
	}
	b.WriteString(s)
}
