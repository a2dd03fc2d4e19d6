package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	sectionErrors = "errors"
	sectionLocale = "locale"
)

//go:embed translations
var translationsFS embed.FS

// Embedded returns the catalog files compiled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(translationsFS, "translations")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(err)
	}
	return sub
}

// WithYAMLDir loads catalog files from YAML files in an fs.FS.
// File convention: {lang}/errors.yaml and {lang}/locale.yaml (.yml accepted).
func WithYAMLDir(fsys fs.FS) Option {
	return func(c *Catalog) error {
		return loadDir(c, fsys, ".yaml", func(data []byte, v any) error {
			return yaml.Unmarshal(data, v)
		})
	}
}

// WithJSONDir loads catalog files from JSON files in an fs.FS.
// File convention: {lang}/errors.json and {lang}/locale.json.
func WithJSONDir(fsys fs.FS) Option {
	return func(c *Catalog) error {
		return loadDir(c, fsys, ".json", func(data []byte, v any) error {
			return json.Unmarshal(data, v)
		})
	}
}

func loadDir(c *Catalog, fsys fs.FS, ext string, unmarshal func([]byte, any) error) error {
	return fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		fileExt := strings.ToLower(path.Ext(filePath))
		var matches bool
		if ext == ".yaml" {
			matches = fileExt == ".yaml" || fileExt == ".yml"
		} else {
			matches = fileExt == ext
		}
		if !matches {
			return nil
		}

		dir := path.Dir(filePath)
		if dir == "." || dir == "" {
			return fmt.Errorf("%w: file %q must be inside a language directory", ErrInvalidFile, filePath)
		}

		lang := normalizeLanguage(path.Base(dir))
		section := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}

		switch section {
		case sectionErrors:
			var messages map[string]string
			if err := unmarshal(data, &messages); err != nil {
				return fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, filePath, err)
			}
			c.addMessages(lang, messages)
		case sectionLocale:
			var locale Locale
			if err := unmarshal(data, &locale); err != nil {
				return fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, filePath, err)
			}
			if err := locale.validate(); err != nil {
				return fmt.Errorf("%q: %w", filePath, err)
			}
			c.locales[lang] = locale
		default:
			return fmt.Errorf("%w: %q", ErrUnknownSection, filePath)
		}

		return nil
	})
}
