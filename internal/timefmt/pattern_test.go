package timefmt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/suar-net/suar-time/internal/timefmt"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	utc := time.Date(2023, time.November, 14, 22, 13, 20, 0, time.UTC)
	kolkata := utc.In(time.FixedZone("", 5*3600+30*60))
	newYork := utc.In(time.FixedZone("", -5*3600))

	spanish := timefmt.Names{
		Months: [12]string{
			"enero", "febrero", "marzo", "abril", "mayo", "junio",
			"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
		},
	}

	tests := []struct {
		name     string
		t        time.Time
		pattern  string
		names    timefmt.Names
		expected string
	}{
		{
			name:     "utc layout",
			t:        utc,
			pattern:  "MM/DD/YYYY @ h:mm A [UTC]Z",
			names:    timefmt.EnglishNames,
			expected: "11/14/2023 @ 10:13 PM UTC+00:00",
		},
		{
			name:     "readable english",
			t:        utc,
			pattern:  "MMMM D, YYYY, HH:mm:ss [GMT]ZZ",
			names:    timefmt.EnglishNames,
			expected: "November 14, 2023, 22:13:20 GMT+0000",
		},
		{
			name:     "positive half hour offset",
			t:        kolkata,
			pattern:  "YYYY-MM-DD HH:mm Z ZZ",
			names:    timefmt.EnglishNames,
			expected: "2023-11-15 03:43 +05:30 +0530",
		},
		{
			name:     "negative offset",
			t:        newYork,
			pattern:  "h:mm A Z",
			names:    timefmt.EnglishNames,
			expected: "5:13 PM -05:00",
		},
		{
			name:     "spanish month names",
			t:        utc,
			pattern:  "D [de] MMMM [de] YYYY",
			names:    spanish,
			expected: "14 de noviembre de 2023",
		},
		{
			name:     "missing meridiem falls back to english",
			t:        utc,
			pattern:  "hh A",
			names:    spanish,
			expected: "10 PM",
		},
		{
			name:     "empty names fall back to english",
			t:        utc,
			pattern:  "MMMM",
			names:    timefmt.Names{},
			expected: "November",
		},
		{
			name:     "midnight is twelve am",
			t:        time.Date(2020, time.January, 1, 0, 5, 0, 0, time.UTC),
			pattern:  "h:mm A",
			names:    timefmt.EnglishNames,
			expected: "12:05 AM",
		},
		{
			name:     "short tokens",
			t:        time.Date(2020, time.March, 7, 9, 4, 5, 0, time.UTC),
			pattern:  "M/D H",
			names:    timefmt.EnglishNames,
			expected: "3/7 9",
		},
		{
			name:     "milliseconds",
			t:        time.Date(2020, time.March, 7, 9, 4, 5, 42*int(time.Millisecond), time.UTC),
			pattern:  "ss.SSS",
			names:    timefmt.EnglishNames,
			expected: "05.042",
		},
		{
			name:     "small year is padded",
			t:        time.Date(7, time.March, 7, 0, 0, 0, 0, time.UTC),
			pattern:  "YYYY",
			names:    timefmt.EnglishNames,
			expected: "0007",
		},
		{
			name:     "unterminated literal is kept",
			t:        utc,
			pattern:  "YYYY [open",
			names:    timefmt.EnglishNames,
			expected: "2023 [open",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, timefmt.Format(tt.t, tt.pattern, tt.names))
		})
	}
}
