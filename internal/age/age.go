// Package age computes how long a task has been around.
package age

import "time"

// Span returns how long a task was open: from created until ended, or
// until now when ended is nil. It reports false when created is unknown.
// Negative spans clamp to zero.
func Span(created, ended *int64, now time.Time) (time.Duration, bool) {
	if created == nil {
		return 0, false
	}

	end := now
	if ended != nil {
		end = time.Unix(*ended, 0)
	}

	span := end.Sub(time.Unix(*created, 0))
	if span < 0 {
		span = 0
	}
	return span, true
}
