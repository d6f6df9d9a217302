package timer

import (
	"testing"
	"time"
)

func TestExcessSeconds(t *testing.T) {
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	cases := []struct {
		name           string
		elapsed        time.Duration
		minutesAllowed float64
		want           int64
	}{
		{"no limit ignores elapsed", 5 * time.Hour, 0, 0},
		{"negative limit treated as no limit", 700 * time.Second, -1, 0},
		{"within limit", 500 * time.Second, 10, 0},
		{"exactly at limit", 600 * time.Second, 10, 0},
		{"over limit", 700 * time.Second, 10, 100},
		{"fractional minutes", 100 * time.Second, 1.5, 10},
		{"sub-second truncated", 700*time.Second + 900*time.Millisecond, 10, 100},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ExcessSeconds(start, start.Add(c.elapsed), c.minutesAllowed)
			if got != c.want {
				t.Fatalf("ExcessSeconds(elapsed=%v, minutes=%v) = %d, want %d", c.elapsed, c.minutesAllowed, got, c.want)
			}
		})
	}
}

func TestRemainingSeconds(t *testing.T) {
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	if got := RemainingSeconds(start, start.Add(100*time.Second), 10); got != 500 {
		t.Fatalf("RemainingSeconds = %d, want 500", got)
	}
	// Overrun is reported as a negative countdown, not clamped.
	if got := RemainingSeconds(start, start.Add(700*time.Second), 10); got != -100 {
		t.Fatalf("RemainingSeconds = %d, want -100", got)
	}
	if got := RemainingSeconds(start, start.Add(700*time.Second), 0); got != 0 {
		t.Fatalf("RemainingSeconds untimed = %d, want 0", got)
	}
}
