package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/suar-net/suar-time/internal/catalog"
	"github.com/suar-net/suar-time/internal/model"
	"github.com/suar-net/suar-time/internal/timefmt"
)

const (
	// UTCPattern renders the offset-shifted instant for format=utc.
	UTCPattern = "MM/DD/YYYY @ h:mm A [UTC]Z"
	// DefaultReadablePattern is used when neither the requested language nor
	// English configure a date format.
	DefaultReadablePattern = "MMMM D, YYYY, HH:mm:ss [GMT]ZZ"

	isoPattern = "YYYY-MM-DD[T]HH:mm:ss.SSS[Z]"
)

// LocaleSource provides readable date locales per language.
type LocaleSource interface {
	Locale(lang string) (catalog.Locale, bool)
}

// Formatter renders instants. The language is passed on every call; the
// formatter holds no per-request state.
type Formatter struct {
	locales LocaleSource
}

// NewFormatter creates a Formatter. A nil source renders every language with
// the built-in English defaults.
func NewFormatter(locales LocaleSource) *Formatter {
	return &Formatter{locales: locales}
}

// Format renders instant for one primitive target. The result is a string
// for utc, readable and iso8601 and an int64 for unix.
func (f *Formatter) Format(instant model.Instant, offset model.Offset, target model.Format, lang model.Language) (any, error) {
	switch target {
	case model.FormatUnix:
		return int64(instant), nil
	case model.FormatISO8601:
		return formatISO(instant), nil
	case model.FormatUTC:
		t := instant.Time().In(offset.Location())
		return timefmt.Format(t, UTCPattern, timefmt.EnglishNames), nil
	case model.FormatReadable:
		pattern, names := f.readableLocale(lang)
		t := instant.Time().In(offset.Location())
		return timefmt.Format(t, pattern, names), nil
	case model.FormatAll:
		return nil, ErrCompositeFormat
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, target)
}

// FormatAll renders every primitive target.
func (f *Formatter) FormatAll(instant model.Instant, offset model.Offset, lang model.Language) (model.AllFormats, error) {
	var out model.AllFormats
	for _, target := range model.PrimitiveFormats {
		v, err := f.Format(instant, offset, target, lang)
		if err != nil {
			return model.AllFormats{}, fmt.Errorf("format %s: %w", target, err)
		}
		switch target {
		case model.FormatUTC:
			out.UTC = v.(string)
		case model.FormatReadable:
			out.Readable = v.(string)
		case model.FormatISO8601:
			out.ISO8601 = v.(string)
		case model.FormatUnix:
			out.Unix = v.(int64)
		}
	}
	return out, nil
}

// readableLocale resolves pattern and names: requested language, then
// English, then built-in defaults. Pattern and names fall back independently.
func (f *Formatter) readableLocale(lang model.Language) (string, timefmt.Names) {
	pattern := ""
	names := timefmt.Names{}
	monthsSet := false
	meridiemSet := false

	for _, candidate := range []model.Language{lang, model.LanguageEN} {
		if f.locales == nil {
			break
		}
		locale, ok := f.locales.Locale(candidate.String())
		if !ok {
			continue
		}
		if pattern == "" {
			pattern = locale.DateFormat
		}
		if !monthsSet && len(locale.Months) == 12 {
			copy(names.Months[:], locale.Months)
			monthsSet = true
		}
		if !meridiemSet && len(locale.Meridiem) == 2 {
			copy(names.Meridiem[:], locale.Meridiem)
			meridiemSet = true
		}
	}

	if pattern == "" {
		pattern = DefaultReadablePattern
	}
	return pattern, names
}

// formatISO renders the instant like JavaScript's Date.toISOString, including
// the expanded +YYYYYY year form past 9999.
func formatISO(instant model.Instant) string {
	t := instant.Time()
	s := timefmt.Format(t, isoPattern, timefmt.EnglishNames)
	if year := t.Year(); year > 9999 {
		y := strconv.Itoa(year)
		if len(y) < 6 {
			y = strings.Repeat("0", 6-len(y)) + y
		}
		s = "+" + y + s[len(strconv.Itoa(year)):]
	}
	return s
}
