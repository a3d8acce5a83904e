package request

import (
	"hotel-backend/internal/domain/reservation"
	"hotel-backend/internal/usecase/commands"
)

type CreateReservationRequest struct {
	ClientID      int64   `json:"client_id" binding:"required,gt=0"`
	RoomID        int64   `json:"room_id" binding:"required,gt=0"`
	ArrivalDate   string  `json:"arrival_date" binding:"required,isodate" example:"2024-01-01"`
	DepartureDate *string `json:"departure_date,omitempty" binding:"omitempty,isodate" example:"2024-01-10"`
	Status        string  `json:"status" binding:"required,max=80" example:"confirmed"`
}

// ToInput parses the stay dates. An absent or empty departure date books
// the room open-ended.
func (r CreateReservationRequest) ToInput() (commands.CreateReservationInput, error) {
	arrival, err := reservation.ParseDate(r.ArrivalDate)
	if err != nil {
		return commands.CreateReservationInput{}, err
	}

	departure, err := reservation.ParseOptionalDate(r.DepartureDate)
	if err != nil {
		return commands.CreateReservationInput{}, err
	}

	return commands.CreateReservationInput{
		ClientID:      r.ClientID,
		RoomID:        r.RoomID,
		ArrivalDate:   arrival,
		DepartureDate: departure,
		Status:        r.Status,
	}, nil
}

type AvailabilityQuery struct {
	Arrival   string `form:"arrival" binding:"required,isodate" example:"2024-01-05"`
	Departure string `form:"departure" binding:"required,isodate" example:"2024-01-06"`
}

func (q AvailabilityQuery) ToDomain() (reservation.StayWindow, error) {
	arrival, err := reservation.ParseDate(q.Arrival)
	if err != nil {
		return reservation.StayWindow{}, err
	}

	departure, err := reservation.ParseDate(q.Departure)
	if err != nil {
		return reservation.StayWindow{}, err
	}

	return reservation.NewQueryWindow(arrival, departure)
}
