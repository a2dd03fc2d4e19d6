package catalog

import "errors"

var (
	ErrEmptyLanguage  = errors.New("catalog: language cannot be empty")
	ErrInvalidFile    = errors.New("catalog: invalid catalog file")
	ErrInvalidLocale  = errors.New("catalog: invalid locale")
	ErrUnknownSection = errors.New("catalog: unknown catalog section")
)
