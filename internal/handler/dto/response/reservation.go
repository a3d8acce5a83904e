package response

import (
	"time"

	"hotel-backend/internal/domain/reservation"
	"hotel-backend/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID            int64     `json:"id"`
	ClientID      int64     `json:"client_id"`
	ClientName    string    `json:"client_name"`
	ClientEmail   string    `json:"client_email"`
	RoomID        int64     `json:"room_id"`
	RoomNumber    int       `json:"room_number"`
	ArrivalDate   string    `json:"arrival_date" copier:"-"`
	DepartureDate *string   `json:"departure_date" copier:"-"`
	Nights        *int      `json:"nights,omitempty" copier:"-"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// Stay dates are rendered as YYYY-MM-DD; an open-ended stay has a null
// departure_date and no nights.
func FromReservationView(v *queries.ReservationView) (*ReservationResponse, error) {
	res := &ReservationResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, err
	}

	res.ArrivalDate = v.ArrivalDate.Format(reservation.DateLayout)
	if v.DepartureDate != nil {
		dep := v.DepartureDate.Format(reservation.DateLayout)
		nights := int(v.DepartureDate.Sub(v.ArrivalDate).Hours() / 24)
		res.DepartureDate = &dep
		res.Nights = &nights
	}
	return res, nil
}
