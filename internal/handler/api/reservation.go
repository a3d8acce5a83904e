package api

import (
	"fmt"
	"net/http"

	reqdto "hotel-backend/internal/handler/dto/request"
	resdto "hotel-backend/internal/handler/dto/response"
	"hotel-backend/internal/usecase/commands"
	"hotel-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromReservationView(view)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Create reservation
// @Description Books a room for [arrival_date, departure_date). Omit departure_date for an open-ended stay.
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation"
// @Success 201 {object} resdto.MutationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), in)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/reservations/%d", id))
	c.JSON(http.StatusCreated, resdto.Mutation("Reservation created", id))
}

// @Summary Cancel reservation
// @Tags reservations
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.MutationResponse
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.cmds.Cancel(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Mutation("Reservation cancelled", id))
}
