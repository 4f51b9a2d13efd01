package ui

import (
	"fmt"
	"time"
)

// FormatTimestamp formats optional Unix seconds using layout in loc.
// It returns "" when ts is nil.
func FormatTimestamp(ts *int64, layout string, loc *time.Location) string {
	if ts == nil {
		return ""
	}
	if loc == nil {
		loc = time.Local
	}
	return time.Unix(*ts, 0).In(loc).Format(layout)
}

// FormatTimeAgo returns a compact age string like "2m ago".
func FormatTimeAgo(then time.Time, now time.Time) string {
	if then.IsZero() {
		return "-"
	}
	return FormatDurationShort(now.Sub(then)) + " ago"
}

// FormatDurationShort formats a duration using short units (s/m/h/d).
func FormatDurationShort(duration time.Duration) string {
	if duration < 0 {
		duration = 0
	}

	duration = duration.Truncate(time.Second)
	seconds := int64(duration.Seconds())
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}

	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}

	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%dh", hours)
	}

	days := hours / 24
	return fmt.Sprintf("%dd", days)
}
