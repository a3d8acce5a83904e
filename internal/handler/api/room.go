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

type RoomHandler struct {
	cmds commands.RoomCommands
	q    queries.RoomQueries
}

func NewRoomHandler(cmds commands.RoomCommands, q queries.RoomQueries) *RoomHandler {
	return &RoomHandler{cmds: cmds, q: q}
}

// @Summary List rooms
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Failure 500 {object} httperr.Response
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromRoomViews(views)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromRoomView(view)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Available rooms
// @Description Rooms with no reservation overlapping [arrival, departure)
// @Tags rooms
// @Produce json
// @Param arrival query string true "Arrival date (YYYY-MM-DD)"
// @Param departure query string true "Departure date (YYYY-MM-DD)"
// @Success 200 {array} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Router /rooms/available [get]
func (h *RoomHandler) Available(c *gin.Context) {
	var query reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBindError(c, err)
		return
	}
	window, err := query.ToDomain()
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	views, err := h.q.Available(c.Request.Context(), window)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromRoomViews(views)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Create room
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body reqdto.RoomRequest true "Room"
// @Success 201 {object} resdto.MutationResponse
// @Failure 400 {object} httperr.Response
// @Router /rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	var req reqdto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/rooms/%d", id))
	c.JSON(http.StatusCreated, resdto.Mutation("Room created", id))
}

// @Summary Update room
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path int true "Room ID"
// @Param request body reqdto.RoomRequest true "Room"
// @Success 200 {object} resdto.MutationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [put]
func (h *RoomHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req reqdto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, req.ToInput()); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Mutation("Room updated", id))
}

// @Summary Delete room
// @Tags rooms
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} resdto.MutationResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rooms/{id} [delete]
func (h *RoomHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Mutation("Room deleted", id))
}
