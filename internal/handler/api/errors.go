package api

import (
	"net/http"
	"strconv"

	"hotel-backend/internal/domain/reservation"
	"hotel-backend/internal/handler/httperr"
	"hotel-backend/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// First match wins. Use-case errors carry their sentinel as a mark, so the
// lookup must go through errs.Is.
var errorMappings = []errorMapping{
	{errs.ErrDomainValidation, http.StatusBadRequest, "Invalid request"},
	{reservation.ErrMalformedDate, http.StatusBadRequest, "Invalid date"},
	{reservation.ErrReversedWindow, http.StatusBadRequest, "Invalid date range"},
	{errs.ErrRoomNumberTaken, http.StatusBadRequest, "Room number already exists"},
	{errs.ErrClientEmailTaken, http.StatusBadRequest, "Email already registered"},
	{errs.ErrRoomNotFound, http.StatusNotFound, "Room not found"},
	{errs.ErrClientNotFound, http.StatusNotFound, "Client not found"},
	{errs.ErrReservationNotFound, http.StatusNotFound, "Reservation not found"},
	{errs.ErrRoomInUse, http.StatusConflict, "Room has reservations"},
	{errs.ErrClientInUse, http.StatusConflict, "Client has reservations"},
	{errs.ErrRoomUnavailable, http.StatusConflict, "Room is not available for these dates"},
}

func abortWithUseCaseError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.message, detailOf(m.status, err))
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

// Only client errors expose their cause.
func detailOf(status int, err error) any {
	if status >= http.StatusInternalServerError {
		return nil
	}
	return err.Error()
}

func abortWithBindError(c *gin.Context, err error) {
	var detail any = err.Error()
	if fields := httperr.ValidationDetail(err); fields != nil {
		detail = fields
	}
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", detail)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		if err == nil {
			err = errs.New("id must be positive")
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return 0, false
	}
	return id, true
}
