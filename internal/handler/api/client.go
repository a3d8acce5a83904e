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

type ClientHandler struct {
	cmds commands.ClientCommands
	q    queries.ClientQueries
}

func NewClientHandler(cmds commands.ClientCommands, q queries.ClientQueries) *ClientHandler {
	return &ClientHandler{cmds: cmds, q: q}
}

// @Summary List clients
// @Tags clients
// @Produce json
// @Success 200 {array} resdto.ClientResponse
// @Router /clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromClientViews(views)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get client
// @Tags clients
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} resdto.ClientResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /clients/{id} [get]
func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromClientView(view)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Register client
// @Tags clients
// @Accept json
// @Produce json
// @Param request body reqdto.CreateClientRequest true "Client"
// @Success 201 {object} resdto.MutationResponse
// @Failure 400 {object} httperr.Response
// @Router /clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	var req reqdto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/clients/%d", id))
	c.JSON(http.StatusCreated, resdto.Mutation("Client created", id))
}

// @Summary Delete client
// @Tags clients
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} resdto.MutationResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /clients/{id} [delete]
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Mutation("Client deleted", id))
}
