package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestISOTimestamp(t *testing.T) {
	loc := time.FixedZone("KST", 9*60*60)
	ts := time.Date(2026, time.October, 18, 15, 30, 0, 123456789, loc)

	got := ISOTimestamp(ts)

	assert.Equal(t, "2026-10-18T06:30:00.123Z", got)
	parsed, err := time.Parse(time.RFC3339Nano, got)
	assert.NoError(t, err)
	assert.True(t, parsed.Equal(ts.Truncate(time.Millisecond)))
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "plain", input: "Stocks rally", want: "Stocks rally"},
		{name: "entities", input: "S&amp;P 500 hits record", want: "S&P 500 hits record"},
		{name: "markup", input: "<b>Nasdaq</b> climbs", want: "Nasdaq climbs"},
		{name: "whitespace", input: "  KOSPI \n\t closes   higher ", want: "KOSPI closes higher"},
		{name: "invalid utf8", input: "ok\xffay", want: "okay"},
		{name: "korean", input: "코스피 상승 마감", want: "코스피 상승 마감"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.input))
		})
	}
}
