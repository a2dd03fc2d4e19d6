package service_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/suar-net/suar-time/internal/model"
	"github.com/suar-net/suar-time/internal/service"
)

func TestParseInputUnix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		expected model.Instant
		code     service.ErrorCode
	}{
		{name: "epoch", raw: "0", expected: 0},
		{name: "typical", raw: "1700000000", expected: 1700000000},
		{name: "explicit plus", raw: "+42", expected: 42},
		{name: "negative", raw: "-86400", expected: -86400},
		{name: "floor", raw: "-62135596800", expected: service.MinInstant},
		{name: "ceiling", raw: "9007199254740991", expected: service.MaxInstant},
		{name: "below floor", raw: "-62135596801", code: service.CodeTimestampTooLow},
		{name: "above ceiling", raw: "9007199254740992", code: service.CodeTimestampTooHigh},
		{name: "overflows int64", raw: "99999999999999999999", code: service.CodeTimestampTooHigh},
		{name: "underflows int64", raw: "-99999999999999999999", code: service.CodeTimestampTooLow},
		{name: "letters", raw: "abc", code: service.CodeTimestampNotNumeric},
		{name: "trailing letters", raw: "123abc", code: service.CodeTimestampNotNumeric},
		{name: "decimal", raw: "1.5", code: service.CodeTimestampNotNumeric},
		{name: "empty", raw: "", code: service.CodeTimestampNotNumeric},
		{name: "whitespace", raw: " 1", code: service.CodeTimestampNotNumeric},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := service.ParseInput(model.KindUnix, tt.raw)
			if tt.code != "" {
				require.ErrorIs(t, err, service.ErrInvalidInput)
				require.Equal(t, tt.code, service.CodeOf(err))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestParseInputTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		expected time.Time
		code     service.ErrorCode
	}{
		{name: "typical", raw: "2023/11/14@22:13:20", expected: time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC)},
		{name: "first instant", raw: "0001/01/01@00:00:00", expected: time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "last instant", raw: "9999/12/31@23:59:59", expected: time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)},
		{name: "leap day", raw: "2024/02/29@10:00:00", expected: time.Date(2024, 2, 29, 10, 0, 0, 0, time.UTC)},
		{name: "leap century", raw: "2000/02/29@00:00:00", expected: time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC)},
		{name: "before epoch", raw: "1969/07/20@20:17:40", expected: time.Date(1969, 7, 20, 20, 17, 40, 0, time.UTC)},
		{name: "february 30", raw: "2024/02/30@10:00:00", code: service.CodeDateDayOutOfRange},
		{name: "non leap february 29", raw: "2023/02/29@10:00:00", code: service.CodeDateDayOutOfRange},
		{name: "non leap century", raw: "1900/02/29@00:00:00", code: service.CodeDateDayOutOfRange},
		{name: "april 31", raw: "2023/04/31@00:00:00", code: service.CodeDateDayOutOfRange},
		{name: "day zero", raw: "2023/01/00@00:00:00", code: service.CodeDateDayOutOfRange},
		{name: "year zero", raw: "0000/01/01@00:00:00", code: service.CodeDateYearOutOfRange},
		{name: "month zero", raw: "2023/00/01@00:00:00", code: service.CodeDateMonthOutOfRange},
		{name: "month thirteen", raw: "2023/13/01@00:00:00", code: service.CodeDateMonthOutOfRange},
		{name: "hour 24", raw: "2023/01/01@24:00:00", code: service.CodeDateHourOutOfRange},
		{name: "minute 60", raw: "2023/01/01@00:60:00", code: service.CodeDateMinuteOutOfRange},
		{name: "second 60", raw: "2023/01/01@00:00:60", code: service.CodeDateSecondOutOfRange},
		{name: "year checked before month", raw: "0000/13/01@00:00:00", code: service.CodeDateYearOutOfRange},
		{name: "month checked before hour", raw: "2023/13/01@25:00:00", code: service.CodeDateMonthOutOfRange},
		{name: "day checked before second", raw: "2023/02/31@00:00:99", code: service.CodeDateDayOutOfRange},
		{name: "dashes", raw: "2023-11-14@22:13:20", code: service.CodeDateMalformed},
		{name: "missing at sign", raw: "2023/11/14 22:13:20", code: service.CodeDateMalformed},
		{name: "short year", raw: "23/11/14@22:13:20", code: service.CodeDateMalformed},
		{name: "single digit month", raw: "2023/1/14@22:13:20", code: service.CodeDateMalformed},
		{name: "unix number", raw: "1700000000", code: service.CodeDateMalformed},
		{name: "empty", raw: "", code: service.CodeDateMalformed},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := service.ParseInput(model.KindTime, tt.raw)
			if tt.code != "" {
				require.ErrorIs(t, err, service.ErrInvalidInput)
				require.Equal(t, tt.code, service.CodeOf(err))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected.Unix(), int64(got))
		})
	}
}

func TestParseInputTimeRoundTrip(t *testing.T) {
	t.Parallel()

	f := service.NewFormatter(nil)

	for _, year := range []int{1, 4, 100, 1582, 1900, 1970, 2000, 2024, 2100, 9999} {
		for month := 1; month <= 12; month++ {
			last := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
			for _, day := range []int{1, 15, last} {
				raw := fmt.Sprintf("%04d/%02d/%02d@12:34:56", year, month, day)

				instant, err := service.ParseInput(model.KindTime, raw)
				require.NoError(t, err, raw)

				iso, err := f.Format(instant, 0, model.FormatISO8601, model.LanguageEN)
				require.NoError(t, err)
				require.Equal(t, fmt.Sprintf("%04d-%02d-%02dT12:34:56.000Z", year, month, day), iso, raw)
			}
		}
	}
}

func TestParseInputUnknownKind(t *testing.T) {
	t.Parallel()

	_, err := service.ParseInput(model.Kind(0), "1")
	require.ErrorIs(t, err, service.ErrInvalidInput)
	require.Equal(t, service.CodeInvalidType, service.CodeOf(err))
}
