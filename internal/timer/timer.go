// Package timer computes elapsed-time overage for timed surveys.
// A time limit is advisory: late submissions are accepted and the overage
// recorded, never rejected.
package timer

import "time"

// ExcessSeconds returns the whole seconds by which an attempt exceeded the
// allowed time, or 0 when the survey is untimed (minutesAllowed <= 0) or
// finished within the limit.
func ExcessSeconds(startedOn, completedOn time.Time, minutesAllowed float64) int64 {
	if minutesAllowed <= 0 {
		return 0
	}
	elapsed := int64(completedOn.Sub(startedOn).Seconds())
	allowed := int64(minutesAllowed * 60)
	if elapsed > allowed {
		return elapsed - allowed
	}
	return 0
}

// RemainingSeconds returns the whole seconds left on the clock for a
// countdown display. Negative values indicate overrun. Untimed surveys
// always report 0.
func RemainingSeconds(startedOn, now time.Time, minutesAllowed float64) int64 {
	if minutesAllowed <= 0 {
		return 0
	}
	elapsed := int64(now.Sub(startedOn).Seconds())
	return int64(minutesAllowed*60) - elapsed
}
