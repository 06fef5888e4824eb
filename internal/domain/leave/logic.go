package leave

import (
	"math"
	"time"
)

// SpanDays returns the inclusive day count of a leave span. Partial-day
// offsets round up, so any touched calendar day counts in full.
func SpanDays(start, end time.Time) (int, error) {
	if start.IsZero() || end.IsZero() {
		return 0, ErrInvalidSpan
	}
	if end.Before(start) {
		return 0, ErrInvalidSpan
	}
	return int(math.Ceil(end.Sub(start).Hours()/24)) + 1, nil
}

// SpanYear returns the calendar year a span is accounted against: the year
// of its start date.
func SpanYear(start time.Time) int {
	return start.Year()
}
