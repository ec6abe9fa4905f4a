package util

import (
	"fmt"
	"time"
)

// interval table for RelativeTime, largest unit first. A month is a fixed
// 30 days and a year a fixed 365; the output is a coarse phrase anyway.
var intervals = []struct {
	unit    string
	seconds int64
}{
	{"year", 31536000},
	{"month", 2592000},
	{"week", 604800},
	{"day", 86400},
	{"hour", 3600},
	{"minute", 60},
}

// RelativeTime renders how long ago past was, relative to now, as a phrase
// like "3 days ago". Anything under a minute is "just now".
//
// Example:
//
//	RelativeTime(now.Add(-90*time.Second), now) // "1 minute ago"
//	RelativeTime(now.Add(-25*time.Hour), now)   // "1 day ago"
func RelativeTime(past, now time.Time) string {
	elapsed := int64(now.Sub(past).Seconds())
	for _, iv := range intervals {
		if n := elapsed / iv.seconds; n >= 1 {
			unit := iv.unit
			if n > 1 {
				unit += "s"
			}
			return fmt.Sprintf("%d %s ago", n, unit)
		}
	}
	return "just now"
}

// FormatLongDate renders t as a long calendar string in a fixed en-US shape,
// e.g. "Wednesday, November 15, 2023".
func FormatLongDate(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}

// FormatDuration decomposes a second count into days/hours/minutes/seconds,
// e.g. FormatDuration(90061) == "1d 1h 1m 1s". Values are truncated, not
// rounded, and not zero-padded.
func FormatDuration(seconds int64) string {
	days := seconds / 86400
	hours := seconds % 86400 / 3600
	minutes := seconds % 3600 / 60
	secs := seconds % 60
	return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, secs)
}
