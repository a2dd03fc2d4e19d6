package service

import (
	"errors"
	"fmt"
)

// ErrorCode identifies exactly one validation failure. Codes are stable and
// independent of the language the message is rendered in.
type ErrorCode string

const (
	CodeMissingValue  ErrorCode = "212000"
	CodeMissingType   ErrorCode = "212001"
	CodeMissingFormat ErrorCode = "212002"

	CodeInvalidType          ErrorCode = "212010"
	CodeInvalidFormat        ErrorCode = "212011"
	CodeInvalidLanguage      ErrorCode = "212012"
	CodeInvalidErrorLanguage ErrorCode = "212013"

	CodeTimestampNotNumeric ErrorCode = "212020"
	CodeTimestampTooLow     ErrorCode = "212021"
	CodeTimestampTooHigh    ErrorCode = "212022"

	CodeDateMalformed        ErrorCode = "212030"
	CodeDateYearOutOfRange   ErrorCode = "212031"
	CodeDateMonthOutOfRange  ErrorCode = "212032"
	CodeDateDayOutOfRange    ErrorCode = "212033"
	CodeDateHourOutOfRange   ErrorCode = "212034"
	CodeDateMinuteOutOfRange ErrorCode = "212035"
	CodeDateSecondOutOfRange ErrorCode = "212036"

	CodeOffsetMalformed  ErrorCode = "212040"
	CodeOffsetOutOfRange ErrorCode = "212041"

	CodeInternal ErrorCode = "212090"
)

// Codes lists every code in documentation order.
var Codes = []ErrorCode{
	CodeMissingValue, CodeMissingType, CodeMissingFormat,
	CodeInvalidType, CodeInvalidFormat, CodeInvalidLanguage, CodeInvalidErrorLanguage,
	CodeTimestampNotNumeric, CodeTimestampTooLow, CodeTimestampTooHigh,
	CodeDateMalformed, CodeDateYearOutOfRange, CodeDateMonthOutOfRange, CodeDateDayOutOfRange,
	CodeDateHourOutOfRange, CodeDateMinuteOutOfRange, CodeDateSecondOutOfRange,
	CodeOffsetMalformed, CodeOffsetOutOfRange,
	CodeInternal,
}

func (c ErrorCode) String() string {
	return string(c)
}

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")

	// Formatter errors
	ErrCompositeFormat = errors.New("composite format cannot be rendered directly")
	ErrUnknownFormat   = errors.New("unknown format")
)

// ValidationError is produced by the parsers. It wraps ErrInvalidInput and
// carries the code of the failed check.
type ValidationError struct {
	Code   ErrorCode
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", ErrInvalidInput, e.Reason, e.Code)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

func invalid(code ErrorCode, format string, args ...any) error {
	return &ValidationError{Code: code, Reason: fmt.Sprintf(format, args...)}
}

// CodeOf returns the code carried by err, or CodeInternal for any error that
// is not a ValidationError or Failure.
func CodeOf(err error) ErrorCode {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Code
	}
	var f *Failure
	if errors.As(err, &f) {
		return f.Code
	}
	return CodeInternal
}

// Failure is the translated, caller facing form of a failed conversion.
type Failure struct {
	Code          ErrorCode
	Message       string
	Documentation string
	cause         error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("conversion failed with %s: %s", f.Code, f.Message)
}

func (f *Failure) Unwrap() error {
	return f.cause
}

// Internal reports whether the failure is the generic internal error.
func (f *Failure) Internal() bool {
	return f.Code == CodeInternal
}
