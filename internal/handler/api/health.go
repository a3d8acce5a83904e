package api

import (
	"net/http"
	"time"

	"hotel-backend/internal/pkg/clock"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	clock clock.Clock
}

func NewHealthHandler(c clock.Clock) *HealthHandler {
	return &HealthHandler{clock: c}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
		"time":    h.clock.Now().UTC().Format(time.RFC3339),
	})
}
