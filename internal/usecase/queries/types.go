package queries

import (
	"time"
)

// RoomView represents read-optimized room data
type RoomView struct {
	ID     int64   `json:"id"`
	Number int     `json:"number"`
	Type   string  `json:"type"`
	Price  float64 `json:"price"`
}

// ClientView represents read-optimized client data
type ClientView struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ReservationView joins a reservation with its client and room
type ReservationView struct {
	ID            int64      `json:"id"`
	ClientID      int64      `json:"client_id"`
	ClientName    string     `json:"client_name"`
	ClientEmail   string     `json:"client_email"`
	RoomID        int64      `json:"room_id"`
	RoomNumber    int        `json:"room_number"`
	ArrivalDate   time.Time  `json:"arrival_date"`
	DepartureDate *time.Time `json:"departure_date,omitempty"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
}
