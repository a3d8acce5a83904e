//go:build unit || e2e

package builder

import (
	"time"

	"hotel-backend/internal/domain/reservation"
	reqdto "hotel-backend/internal/handler/dto/request"
	sqlc "hotel-backend/internal/infra/sqlc/generated"
	"hotel-backend/internal/pkg/pgconv"
	"hotel-backend/internal/pkg/ptr"
	"hotel-backend/internal/usecase/commands"
	"hotel-backend/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationBuilder struct {
	ID            int64
	ClientID      int64
	ClientName    string
	ClientEmail   string
	RoomID        int64
	RoomNumber    int
	ArrivalDate   time.Time
	DepartureDate *time.Time
	Status        string
	CreatedAt     time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:            1,
		ClientID:      1,
		ClientName:    "Martin",
		ClientEmail:   "martin@example.com",
		RoomID:        1,
		RoomNumber:    101,
		ArrivalDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		DepartureDate: ptr.To(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)),
		Status:        "confirmed",
		CreatedAt:     time.Date(2023, 12, 20, 9, 0, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

// OpenEnded drops the departure date.
func (b *ReservationBuilder) OpenEnded() *ReservationBuilder {
	b.DepartureDate = nil
	return b
}

func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	return reservation.NewReservation(b.ClientID, b.RoomID, b.ArrivalDate, b.DepartureDate, b.Status)
}

func (b *ReservationBuilder) BuildWindow() reservation.StayWindow {
	w, err := reservation.NewStayWindow(b.ArrivalDate, b.DepartureDate)
	if err != nil {
		panic(err)
	}
	return w
}

func (b *ReservationBuilder) BuildBooking() reservation.Booking {
	return reservation.Booking{RoomID: b.RoomID, Window: b.BuildWindow()}
}

func (b *ReservationBuilder) BuildInfraRow() sqlc.GetReservationByIDRow {
	return sqlc.GetReservationByIDRow{
		ID:          b.ID,
		ClientID:    b.ClientID,
		ClientName:  b.ClientName,
		ClientEmail: b.ClientEmail,
		RoomID:      b.RoomID,
		RoomNumber:  int32(b.RoomNumber),
		Arrival:     pgconv.DateToPgtype(b.ArrivalDate),
		Departure:   pgconv.DatePtrToPgtype(b.DepartureDate),
		Status:      b.Status,
		CreatedAt:   pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *ReservationBuilder) BuildOverlappingRow() sqlc.ListOverlappingReservationsRow {
	return sqlc.ListOverlappingReservationsRow{
		ID:        b.ID,
		RoomID:    b.RoomID,
		Arrival:   pgconv.DateToPgtype(b.ArrivalDate),
		Departure: pgconv.DatePtrToPgtype(b.DepartureDate),
	}
}

func (b *ReservationBuilder) BuildRequestDTO() reqdto.CreateReservationRequest {
	req := reqdto.CreateReservationRequest{
		ClientID:    b.ClientID,
		RoomID:      b.RoomID,
		ArrivalDate: b.ArrivalDate.Format(reservation.DateLayout),
		Status:      b.Status,
	}
	if b.DepartureDate != nil {
		req.DepartureDate = ptr.To(b.DepartureDate.Format(reservation.DateLayout))
	}
	return req
}

func (b *ReservationBuilder) BuildInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		ClientID:      b.ClientID,
		RoomID:        b.RoomID,
		ArrivalDate:   b.ArrivalDate,
		DepartureDate: b.DepartureDate,
		Status:        b.Status,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:            b.ID,
		ClientID:      b.ClientID,
		ClientName:    b.ClientName,
		ClientEmail:   b.ClientEmail,
		RoomID:        b.RoomID,
		RoomNumber:    b.RoomNumber,
		ArrivalDate:   b.ArrivalDate,
		DepartureDate: b.DepartureDate,
		Status:        b.Status,
		CreatedAt:     b.CreatedAt,
	}
}
