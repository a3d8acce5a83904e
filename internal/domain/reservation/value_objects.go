package reservation

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrMalformedDate     = errors.New("date must use the YYYY-MM-DD format")
	ErrInvalidStayWindow = errors.New("departure date must be after arrival date")
	ErrReversedWindow    = errors.New("departure date cannot be before arrival date")
)

// DateLayout is the wire format of every stay date.
const DateLayout = "2006-01-02"

// ParseDate parses a calendar date and normalises it to UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrMalformedDate
	}
	return t, nil
}

// ParseOptionalDate treats an empty string as an absent date.
func ParseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// TruncateDate drops the time of day, keeping the calendar date of t.
func TruncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// StayWindow is the half-open interval [arrival, departure). A nil
// departure is an open-ended stay that extends to the unbounded future.
type StayWindow struct {
	arrival   time.Time
	departure *time.Time
}

// NewStayWindow builds the window of a stored reservation. Zero-length
// stays are rejected.
func NewStayWindow(arrival time.Time, departure *time.Time) (StayWindow, error) {
	arrival = TruncateDate(arrival)
	if departure == nil {
		return StayWindow{arrival: arrival}, nil
	}

	dep := TruncateDate(*departure)
	if !arrival.Before(dep) {
		return StayWindow{}, ErrInvalidStayWindow
	}
	return StayWindow{arrival: arrival, departure: &dep}, nil
}

// NewQueryWindow builds the window of an availability query. Only reversed
// input is rejected.
func NewQueryWindow(arrival, departure time.Time) (StayWindow, error) {
	arrival = TruncateDate(arrival)
	departure = TruncateDate(departure)
	if departure.Before(arrival) {
		return StayWindow{}, ErrReversedWindow
	}
	return StayWindow{arrival: arrival, departure: &departure}, nil
}

func (w StayWindow) Arrival() time.Time { return w.arrival }

func (w StayWindow) Departure() *time.Time {
	if w.departure == nil {
		return nil
	}
	d := *w.departure
	return &d
}

func (w StayWindow) IsOpenEnded() bool {
	return w.departure == nil
}

// Overlaps reports whether w.arrival < o.departure and w.departure > o.arrival.
// Back-to-back windows share only a boundary and do not overlap.
func (w StayWindow) Overlaps(o StayWindow) bool {
	return startsBefore(w.arrival, o.departure) && startsBefore(o.arrival, w.departure)
}

func startsBefore(t time.Time, end *time.Time) bool {
	return end == nil || t.Before(*end)
}

// Nights is the length of a bounded stay; open-ended stays report -1.
func (w StayWindow) Nights() int {
	if w.departure == nil {
		return -1
	}
	return int(w.departure.Sub(w.arrival).Hours() / 24)
}

func (w StayWindow) String() string {
	if w.departure == nil {
		return "[" + w.arrival.Format(DateLayout) + ",)"
	}
	return "[" + w.arrival.Format(DateLayout) + "," + w.departure.Format(DateLayout) + ")"
}
