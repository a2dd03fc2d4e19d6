package service

import (
	"errors"
	"regexp"
	"strconv"
	"time"

	"github.com/suar-net/suar-time/internal/model"
)

const (
	// MinInstant is 0001-01-01T00:00:00Z, the first instant of the proleptic
	// Gregorian calendar.
	MinInstant model.Instant = -62135596800
	// MaxInstant is the largest integer a JSON number carries without loss.
	MaxInstant model.Instant = 1<<53 - 1

	minYear = 1
	maxYear = 9999
)

// DateLayout describes the accepted calendar input.
const DateLayout = "YYYY/MM/DD@HH:MM:SS"

var datePattern = regexp.MustCompile(`^(\d{4})/(\d{2})/(\d{2})@(\d{2}):(\d{2}):(\d{2})$`)

// ParseInput reads raw according to kind and returns the absolute instant.
// Calendar input is interpreted as UTC.
func ParseInput(kind model.Kind, raw string) (model.Instant, error) {
	switch kind {
	case model.KindUnix:
		return parseUnix(raw)
	case model.KindTime:
		return parseDate(raw)
	}
	return 0, invalid(CodeInvalidType, "unsupported kind %s", kind)
}

func parseUnix(raw string) (model.Instant, error) {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			if len(raw) > 0 && raw[0] == '-' {
				return 0, invalid(CodeTimestampTooLow, "timestamp %s is below %d", raw, MinInstant)
			}
			return 0, invalid(CodeTimestampTooHigh, "timestamp %s is above %d", raw, MaxInstant)
		}
		return 0, invalid(CodeTimestampNotNumeric, "timestamp %q is not an integer", raw)
	}

	instant := model.Instant(v)
	switch {
	case instant < MinInstant:
		return 0, invalid(CodeTimestampTooLow, "timestamp %d is below %d", v, MinInstant)
	case instant > MaxInstant:
		return 0, invalid(CodeTimestampTooHigh, "timestamp %d is above %d", v, MaxInstant)
	}
	return instant, nil
}

func parseDate(raw string) (model.Instant, error) {
	m := datePattern.FindStringSubmatch(raw)
	if m == nil {
		return 0, invalid(CodeDateMalformed, "date %q does not match %s", raw, DateLayout)
	}

	var c [6]int
	for i := range c {
		c[i], _ = strconv.Atoi(m[i+1])
	}
	year, month, day, hour, minute, second := c[0], c[1], c[2], c[3], c[4], c[5]

	switch {
	case year < minYear || year > maxYear:
		return 0, invalid(CodeDateYearOutOfRange, "year %d outside [%d, %d]", year, minYear, maxYear)
	case month < 1 || month > 12:
		return 0, invalid(CodeDateMonthOutOfRange, "month %d outside [1, 12]", month)
	case day < 1 || day > daysIn(year, time.Month(month)):
		return 0, invalid(CodeDateDayOutOfRange, "day %d outside [1, %d]", day, daysIn(year, time.Month(month)))
	case hour > 23:
		return 0, invalid(CodeDateHourOutOfRange, "hour %d outside [0, 23]", hour)
	case minute > 59:
		return 0, invalid(CodeDateMinuteOutOfRange, "minute %d outside [0, 59]", minute)
	case second > 59:
		return 0, invalid(CodeDateSecondOutOfRange, "second %d outside [0, 59]", second)
	}

	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
	return model.Instant(t.Unix()), nil
}

func daysIn(year int, month time.Month) int {
	switch month {
	case time.February:
		if isLeap(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	}
	return 31
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
