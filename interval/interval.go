// Package interval provides readable constructors for time intervals measured in seconds.
//
// The values are relative amounts only: a day is always 24 hours and a year is
// always 365 days. Use the time package for calendar arithmetic between two
// specific dates.
package interval

import (
	"math"
	"time"

	"golang.org/x/exp/constraints"
)

// Interval is a number of seconds.
type Interval float64

// Seconds returns interval of n seconds.
func Seconds[N constraints.Integer](n N) Interval {
	return Interval(n)
}

// Minutes returns interval of n minutes.
func Minutes[N constraints.Integer](n N) Interval {
	return 60 * Seconds(n)
}

// Hours returns interval of n hours.
func Hours[N constraints.Integer](n N) Interval {
	return 60 * Minutes(n)
}

// Days returns interval of n days, a day being 24 hours.
func Days[N constraints.Integer](n N) Interval {
	return 24 * Hours(n)
}

// Weeks returns interval of n weeks.
func Weeks[N constraints.Integer](n N) Interval {
	return 7 * Days(n)
}

// Years returns interval of n years. Leap years are ignored, a year is 365 days.
func Years[N constraints.Integer](n N) Interval {
	return 365 * Days(n)
}

// FromDuration converts d to Interval.
func FromDuration(d time.Duration) Interval {
	return Interval(d.Seconds())
}

// Seconds returns i as a plain float64.
func (i Interval) Seconds() float64 {
	return float64(i)
}

// Duration converts i to time.Duration, saturating at the bounds of time.Duration.
func (i Interval) Duration() time.Duration {
	ns := float64(i) * float64(time.Second)
	switch {
	case math.IsNaN(ns):
		return 0
	case ns >= math.MaxInt64:
		return math.MaxInt64
	case ns <= math.MinInt64:
		return math.MinInt64
	}
	return time.Duration(ns)
}

func (i Interval) String() string {
	return i.Duration().String()
}
