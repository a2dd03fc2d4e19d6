// Package catalog holds the read-only message and locale tables loaded at
// process start. A Catalog is immutable after New returns and safe for
// concurrent use.
package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Locale describes how readable dates are rendered for one language.
type Locale struct {
	DateFormat string   `json:"dateFormat" yaml:"dateFormat"`
	Months     []string `json:"months,omitempty" yaml:"months,omitempty"`
	Meridiem   []string `json:"meridiem,omitempty" yaml:"meridiem,omitempty"`
}

func (l Locale) validate() error {
	if len(l.Months) != 0 && len(l.Months) != 12 {
		return fmt.Errorf("%w: expected 12 month names, got %d", ErrInvalidLocale, len(l.Months))
	}
	if len(l.Meridiem) != 0 && len(l.Meridiem) != 2 {
		return fmt.Errorf("%w: expected 2 meridiem names, got %d", ErrInvalidLocale, len(l.Meridiem))
	}
	return nil
}

// Entry is the result of a message lookup.
type Entry struct {
	Code    string
	Message string
}

// Catalog maps (language, code) to messages and language to Locale.
type Catalog struct {
	messages  map[string]map[string]string
	locales   map[string]Locale
	docsURL   string
	languages []string
	degraded  bool
}

// Option configures the Catalog during construction.
type Option func(*Catalog) error

// New creates a Catalog from the given options. Later options override
// entries set by earlier ones.
func New(opts ...Option) (*Catalog, error) {
	c := &Catalog{
		messages: make(map[string]map[string]string),
		locales:  make(map[string]Locale),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	c.languages = c.buildLanguagesList()
	return c, nil
}

// WithMessages registers error messages for a language.
func WithMessages(lang string, messages map[string]string) Option {
	return func(c *Catalog) error {
		lang = normalizeLanguage(lang)
		if lang == "" {
			return ErrEmptyLanguage
		}
		c.addMessages(lang, messages)
		return nil
	}
}

// WithLocale registers the readable date locale for a language.
func WithLocale(lang string, locale Locale) Option {
	return func(c *Catalog) error {
		lang = normalizeLanguage(lang)
		if lang == "" {
			return ErrEmptyLanguage
		}
		if err := locale.validate(); err != nil {
			return fmt.Errorf("locale %q: %w", lang, err)
		}
		c.locales[lang] = locale
		return nil
	}
}

// WithDocumentationURL sets the base URL error documentation links point to.
func WithDocumentationURL(url string) Option {
	return func(c *Catalog) error {
		c.docsURL = strings.TrimRight(url, "#")
		return nil
	}
}

// WithDegraded marks the catalog as running without its configured source.
func WithDegraded() Option {
	return func(c *Catalog) error {
		c.degraded = true
		return nil
	}
}

func (c *Catalog) addMessages(lang string, messages map[string]string) {
	if len(messages) == 0 {
		return
	}
	m, ok := c.messages[lang]
	if !ok {
		m = make(map[string]string, len(messages))
		c.messages[lang] = m
	}
	for code, msg := range messages {
		if msg = strings.TrimSpace(msg); msg != "" {
			m[strings.TrimSpace(code)] = msg
		}
	}
}

// Message returns the configured message for code in lang.
func (c *Catalog) Message(lang, code string) (string, bool) {
	msg, ok := c.messages[normalizeLanguage(lang)][code]
	return msg, ok
}

// Lookup always returns a usable entry. When lang has no message for code
// a generic text pointing at the documentation is returned.
func (c *Catalog) Lookup(lang, code string) Entry {
	if msg, ok := c.Message(lang, code); ok {
		return Entry{Code: code, Message: msg}
	}
	return Entry{
		Code:    code,
		Message: fmt.Sprintf("Unexpected error %s. See %s for details.", code, c.Documentation(code)),
	}
}

// Locale returns the locale configured for lang.
func (c *Catalog) Locale(lang string) (Locale, bool) {
	l, ok := c.locales[normalizeLanguage(lang)]
	return l, ok
}

// Documentation returns the documentation link for code.
func (c *Catalog) Documentation(code string) string {
	if code == "" {
		return c.docsURL
	}
	return c.docsURL + "#" + code
}

// Languages returns the sorted list of languages with any catalog entry.
func (c *Catalog) Languages() []string {
	out := make([]string, len(c.languages))
	copy(out, c.languages)
	return out
}

// Degraded reports whether the catalog was built in degraded mode.
func (c *Catalog) Degraded() bool {
	return c.degraded
}

func (c *Catalog) buildLanguagesList() []string {
	set := make(map[string]struct{}, len(c.messages)+len(c.locales))
	for lang := range c.messages {
		set[lang] = struct{}{}
	}
	for lang := range c.locales {
		set[lang] = struct{}{}
	}
	langs := make([]string, 0, len(set))
	for lang := range set {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

func normalizeLanguage(lang string) string {
	return strings.ToLower(strings.TrimSpace(lang))
}
