package reservation

import (
	"errors"
	"time"
)

var (
	ErrInvalidClientID = errors.New("client id must be a positive integer")
	ErrInvalidRoomID   = errors.New("room id must be a positive integer")
)

// Reservation is a booking that has not been stored yet.
type Reservation struct {
	clientID int64
	roomID   int64
	window   StayWindow
	status   Status
}

func NewReservation(clientID, roomID int64, arrival time.Time, departure *time.Time, status string) (*Reservation, error) {
	if clientID <= 0 {
		return nil, ErrInvalidClientID
	}
	if roomID <= 0 {
		return nil, ErrInvalidRoomID
	}

	window, err := NewStayWindow(arrival, departure)
	if err != nil {
		return nil, err
	}

	st, err := NewStatus(status)
	if err != nil {
		return nil, err
	}

	return &Reservation{
		clientID: clientID,
		roomID:   roomID,
		window:   window,
		status:   st,
	}, nil
}

func (r *Reservation) ClientID() int64    { return r.clientID }
func (r *Reservation) RoomID() int64      { return r.roomID }
func (r *Reservation) Window() StayWindow { return r.window }
func (r *Reservation) Status() Status     { return r.status }
