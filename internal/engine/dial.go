package engine

import (
	"math"
	"time"
)

// Unit sizes in milliseconds and the wraparound period of each dial.
const (
	MillisPerSecond = 1_000
	MillisPerMinute = 60 * MillisPerSecond
	MillisPerHour   = 60 * MillisPerMinute
	MillisPerDay    = 24 * MillisPerHour

	HoursPerDay      = 24
	MinutesPerHour   = 60
	SecondsPerMinute = 60
)

// DecomposedTime is a time of day expressed on three independent dials.
//
// Each field is derived from the same absolute millisecond value and
// carries the finer-grained progress in its fractional part: at 00:30:00
// Hours is 0.5 and Minutes is 30. There is no cascading carry between the
// fields.
type DecomposedTime struct {
	Hours   float64 // [0, 24)
	Minutes float64 // [0, 60)
	Seconds float64 // [0, 60)
}

// Decompose splits milliseconds since midnight into hour, minute and second
// dial positions. Values outside a day, including negative ones, wrap into
// range.
func Decompose(msOfDay float64) DecomposedTime {
	return DecomposedTime{
		Hours:   wrap(msOfDay/MillisPerHour, HoursPerDay),
		Minutes: wrap(msOfDay/MillisPerMinute, MinutesPerHour),
		Seconds: wrap(msOfDay/MillisPerSecond, SecondsPerMinute),
	}
}

// MillisecondsOfDay rebuilds the millisecond value from Hours alone.
// It is exact only because Hours already folds in the sub-hour progress.
func (d DecomposedTime) MillisecondsOfDay() float64 {
	return d.Hours * MillisPerHour
}

// MillisOfDay returns the milliseconds elapsed since local midnight of t.
func MillisOfDay(t time.Time) float64 {
	hour, minute, sec := t.Clock()
	ms := float64(hour)*MillisPerHour + float64(minute)*MillisPerMinute + float64(sec)*MillisPerSecond
	return ms + float64(t.Nanosecond())/float64(time.Millisecond)
}

// wrap is the floored modulo: the result takes the sign of the period.
func wrap(v, period float64) float64 {
	m := math.Mod(v, period)
	if m < 0 {
		m += period
	}
	// -tiny + period rounds to period in float64.
	if m >= period {
		m = 0
	}
	return m
}
