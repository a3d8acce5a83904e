package clock

import "time"

// Clock is the time source handlers report to clients.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func NewRealClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// Fixed always reports the same instant.
type Fixed time.Time

func NewFixedClock(t time.Time) Fixed {
	return Fixed(t)
}

func (f Fixed) Now() time.Time {
	return time.Time(f)
}
