package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Room errors
	ErrRoomNotFound    = errors.New("room not found")
	ErrRoomNumberTaken = errors.New("room number already exists")
	ErrRoomInUse       = errors.New("room has reservations")

	// Client errors
	ErrClientNotFound   = errors.New("client not found")
	ErrClientEmailTaken = errors.New("client email already exists")
	ErrClientInUse      = errors.New("client has reservations")

	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrRoomUnavailable     = errors.New("room is not available for the requested dates")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
)
