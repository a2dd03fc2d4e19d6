package service

import (
	"regexp"
	"strconv"

	"github.com/suar-net/suar-time/internal/model"
)

// DefaultOffset is used when the caller sends no offset.
const DefaultOffset = "+0000"

var offsetPattern = regexp.MustCompile(`^([+-])(\d{2}):?(\d{2})$`)

// ParseOffset reads a signed ±HHMM or ±HH:MM offset.
func ParseOffset(raw string) (model.Offset, error) {
	m := offsetPattern.FindStringSubmatch(raw)
	if m == nil {
		return 0, invalid(CodeOffsetMalformed, "offset %q does not match ±HHMM or ±HH:MM", raw)
	}

	hours, _ := strconv.Atoi(m[2])
	minutes, _ := strconv.Atoi(m[3])

	switch {
	case hours > 14, hours == 14 && minutes != 0:
		return 0, invalid(CodeOffsetOutOfRange, "offset %q exceeds ±14:00", raw)
	case minutes > 59:
		return 0, invalid(CodeOffsetOutOfRange, "offset %q has %d minutes", raw, minutes)
	}

	total := hours*60 + minutes
	if m[1] == "-" {
		total = -total
	}
	return model.Offset(total), nil
}
