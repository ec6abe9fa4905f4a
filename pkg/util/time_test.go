package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRelativeTime(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		elapsed time.Duration
		want    string
	}{
		{"zero", 0, "just now"},
		{"under a minute", 59 * time.Second, "just now"},
		{"exactly one minute", 60 * time.Second, "1 minute ago"},
		{"two minutes", 120 * time.Second, "2 minutes ago"},
		{"one hour", time.Hour, "1 hour ago"},
		{"one day from 90000s", 90000 * time.Second, "1 day ago"},
		{"one week", 8 * 24 * time.Hour, "1 week ago"},
		{"one month", 31 * 24 * time.Hour, "1 month ago"},
		{"two years", 2 * 365 * 24 * time.Hour, "2 years ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeTime(now.Add(-tt.elapsed), now))
		})
	}
}

func TestFormatLongDate(t *testing.T) {
	ts := time.Date(2023, 11, 15, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "Wednesday, November 15, 2023", FormatLongDate(ts))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "1d 1h 1m 1s", FormatDuration(90061))
	assert.Equal(t, "0d 0h 0m 0s", FormatDuration(0))
	assert.Equal(t, "0d 0h 1m 0s", FormatDuration(60))
	assert.Equal(t, "2d 0h 0m 59s", FormatDuration(2*86400+59))
}
