package commands

import (
	"hotel-backend/internal/domain/client"
	"hotel-backend/internal/domain/reservation"
	"hotel-backend/internal/domain/room"
	"hotel-backend/internal/pkg/errs"
)

var domainValidationErrors = []error{
	room.ErrInvalidRoomNumber,
	room.ErrEmptyRoomType,
	room.ErrRoomTypeTooLong,
	room.ErrInvalidPrice,
	client.ErrEmptyClientName,
	client.ErrClientNameTooLong,
	client.ErrInvalidEmail,
	client.ErrEmailTooLong,
	reservation.ErrInvalidClientID,
	reservation.ErrInvalidRoomID,
	reservation.ErrInvalidStayWindow,
	reservation.ErrMalformedDate,
	reservation.ErrEmptyStatus,
	reservation.ErrStatusTooLong,
}

// markValidation tags domain constructor failures so handlers answer 400.
func markValidation(err error) error {
	for _, target := range domainValidationErrors {
		if errs.Is(err, target) {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
	}
	return err
}
