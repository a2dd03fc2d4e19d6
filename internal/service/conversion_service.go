package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/suar-net/suar-time/internal/catalog"
	"github.com/suar-net/suar-time/internal/model"
)

// MessageCatalog resolves error codes into caller facing messages.
type MessageCatalog interface {
	Lookup(lang, code string) catalog.Entry
	Documentation(code string) string
}

// ConversionService validates a request, parses it and renders the result.
// It keeps no mutable state and is safe for concurrent use.
type ConversionService struct {
	formatter *Formatter
	messages  MessageCatalog
	validate  *validator.Validate
	logger    zerolog.Logger
}

// NewConversionService wires the formatter and message catalog together.
func NewConversionService(formatter *Formatter, messages MessageCatalog, logger zerolog.Logger) *ConversionService {
	return &ConversionService{
		formatter: formatter,
		messages:  messages,
		validate:  validator.New(),
		logger:    logger,
	}
}

// conversion is a request whose shape and enums have been validated.
type conversion struct {
	kind   model.Kind
	format model.Format
	lang   model.Language
	value  string
	offset string
}

// Convert runs one conversion. On success the value is a string, an int64 or
// model.AllFormats depending on the requested format. Any failure is returned
// as *Failure with its message in the requested error language.
func (s *ConversionService) Convert(ctx context.Context, req *model.ConversionRequest) (result any, err error) {
	if req == nil {
		req = &model.ConversionRequest{}
	}
	logger := s.loggerFor(ctx)

	errLang, errLangOK := model.ParseLanguage(req.ErrorLanguage)
	if !errLangOK {
		errLang = model.DefaultLanguage
	}

	defer func() {
		if rec := recover(); rec != nil {
			logger.Error().
				Interface("panic", rec).
				Str("type", req.Type).
				Str("format", req.Format).
				Msg("conversion panicked")
			result, err = nil, s.failure(logger, errLang, fmt.Errorf("%w: panic: %v", ErrInternal, rec))
		}
	}()

	c, err := s.validateRequest(req, errLangOK)
	if err != nil {
		return nil, s.failure(logger, errLang, err)
	}

	result, err = s.run(c)
	if err != nil {
		return nil, s.failure(logger, errLang, err)
	}
	return result, nil
}

func (s *ConversionService) run(c conversion) (any, error) {
	instant, err := ParseInput(c.kind, c.value)
	if err != nil {
		return nil, err
	}

	offset, err := ParseOffset(c.offset)
	if err != nil {
		return nil, err
	}

	if c.format == model.FormatAll {
		all, err := s.formatter.FormatAll(instant, offset, c.lang)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return all, nil
	}

	v, err := s.formatter.Format(instant, offset, c.format, c.lang)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return v, nil
}

// validateRequest checks presence first and enum membership second; the
// first failing check decides the code.
func (s *ConversionService) validateRequest(req *model.ConversionRequest, errLangOK bool) (conversion, error) {
	if err := s.validate.Struct(req); err != nil {
		return conversion{}, shapeError(err)
	}

	kind, ok := model.ParseKind(req.Type)
	if !ok {
		return conversion{}, invalid(CodeInvalidType, "unknown type %q", req.Type)
	}
	format, ok := model.ParseFormat(req.Format)
	if !ok {
		return conversion{}, invalid(CodeInvalidFormat, "unknown format %q", req.Format)
	}
	lang, ok := model.ParseLanguage(req.Language)
	if !ok {
		return conversion{}, invalid(CodeInvalidLanguage, "unknown language %q", req.Language)
	}
	if !errLangOK {
		return conversion{}, invalid(CodeInvalidErrorLanguage, "unknown error language %q", req.ErrorLanguage)
	}

	offset := req.Offset
	if offset == "" {
		offset = DefaultOffset
	}

	return conversion{
		kind:   kind,
		format: format,
		lang:   lang,
		value:  req.Value,
		offset: offset,
	}, nil
}

var missingFieldCodes = map[string]ErrorCode{
	"Value":  CodeMissingValue,
	"Type":   CodeMissingType,
	"Format": CodeMissingFormat,
}

// shapeError maps the first validator failure, in struct field order, onto
// its missing-field code.
func shapeError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	for _, e := range validationErrors {
		if code, ok := missingFieldCodes[e.StructField()]; ok && e.Tag() == "required" {
			return invalid(code, "field %s is required", e.Field())
		}
	}
	return fmt.Errorf("%w: unexpected validation failure: %v", ErrInternal, err)
}

// failure translates err into the caller facing Failure.
func (s *ConversionService) failure(logger *zerolog.Logger, lang model.Language, err error) *Failure {
	code := CodeOf(err)
	entry := s.messages.Lookup(lang.String(), code.String())

	ev := logger.Debug()
	if code == CodeInternal {
		ev = logger.Error()
	}
	ev.Err(err).Str("code", code.String()).Str("lang", lang.String()).Msg("conversion failed")

	return &Failure{
		Code:          code,
		Message:       entry.Message,
		Documentation: s.messages.Documentation(code.String()),
		cause:         err,
	}
}

// loggerFor prefers the request scoped logger stored in ctx.
func (s *ConversionService) loggerFor(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &s.logger
}
