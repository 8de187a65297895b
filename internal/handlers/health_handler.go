package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"tradelog/internal/logger"
)

// Pinger checks store connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports service and database health.
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthResponse is the body of the health check.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Health pings the database
// @Summary     Health check
// @Tags        health
// @Produce     json
// @Success     200 {object} HealthResponse "Database reachable"
// @Failure     500 {object} HealthResponse "Database unreachable"
// @Router      /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		logger.Get().Errorw("health check failed", "error", err)
		c.JSON(http.StatusInternalServerError, HealthResponse{Status: "error", Database: "disconnected"})
		return
	}
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Database: "connected"})
}
