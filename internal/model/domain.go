package model

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Kind tells how the incoming value must be read.
type Kind int

const (
	KindTime Kind = iota + 1
	KindUnix
)

func (k Kind) String() string {
	switch k {
	case KindTime:
		return "time"
	case KindUnix:
		return "unix"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a query value onto a Kind. Matching is case-insensitive.
func ParseKind(raw string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "time":
		return KindTime, true
	case "unix":
		return KindUnix, true
	}
	return 0, false
}

// Format is the requested output representation.
type Format int

const (
	FormatUTC Format = iota + 1
	FormatReadable
	FormatISO8601
	FormatUnix
	FormatAll
)

// PrimitiveFormats lists the targets that make up FormatAll, in response order.
var PrimitiveFormats = []Format{FormatUTC, FormatReadable, FormatISO8601, FormatUnix}

func (f Format) String() string {
	switch f {
	case FormatUTC:
		return "utc"
	case FormatReadable:
		return "readable"
	case FormatISO8601:
		return "iso8601"
	case FormatUnix:
		return "unix"
	case FormatAll:
		return "all"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat maps a query value onto a Format. Matching is case-insensitive.
func ParseFormat(raw string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "utc":
		return FormatUTC, true
	case "readable":
		return FormatReadable, true
	case "iso8601":
		return FormatISO8601, true
	case "unix":
		return FormatUnix, true
	case "all":
		return FormatAll, true
	}
	return 0, false
}

// Language selects the locale used for readable output and error messages.
type Language int

const (
	LanguageEN Language = iota + 1
	LanguageES
	LanguagePT
)

// DefaultLanguage is used whenever the caller does not pick one.
const DefaultLanguage = LanguageEN

// Languages lists every supported language.
var Languages = []Language{LanguageEN, LanguageES, LanguagePT}

func (l Language) String() string {
	switch l {
	case LanguageEN:
		return "en"
	case LanguageES:
		return "es"
	case LanguagePT:
		return "pt"
	}
	return fmt.Sprintf("Language(%d)", int(l))
}

// ParseLanguage accepts any well-formed BCP 47 tag whose base language is
// supported, so "pt-BR" and "es-419" resolve to pt and es. An empty value
// yields DefaultLanguage.
func ParseLanguage(raw string) (Language, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultLanguage, true
	}

	tag, err := language.Parse(raw)
	if err != nil {
		return 0, false
	}
	base, confidence := tag.Base()
	if confidence != language.Exact {
		return 0, false
	}

	switch base.String() {
	case "en":
		return LanguageEN, true
	case "es":
		return LanguageES, true
	case "pt":
		return LanguagePT, true
	}
	return 0, false
}

// Instant is an absolute point in time expressed as seconds since the Unix epoch.
type Instant int64

// Time returns the instant as a UTC time.Time.
func (i Instant) Time() time.Time {
	return time.Unix(int64(i), 0).UTC()
}

// Offset is a fixed UTC offset in minutes.
type Offset int

const (
	MaxOffset Offset = 14 * 60
	MinOffset Offset = -MaxOffset
)

// Location returns a fixed zone carrying the offset.
func (o Offset) Location() *time.Location {
	return time.FixedZone(o.Compact(), int(o)*60)
}

// String renders the offset as ±HH:MM.
func (o Offset) String() string {
	sign, h, m := o.split()
	return fmt.Sprintf("%c%02d:%02d", sign, h, m)
}

// Compact renders the offset as ±HHMM.
func (o Offset) Compact() string {
	sign, h, m := o.split()
	return fmt.Sprintf("%c%02d%02d", sign, h, m)
}

func (o Offset) split() (sign byte, hours, minutes int) {
	sign = '+'
	v := int(o)
	if v < 0 {
		sign = '-'
		v = -v
	}
	return sign, v / 60, v % 60
}
