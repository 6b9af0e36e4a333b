package http

import (
	"net/http"

	"golang-stock-summary/internal/summary/dto"

	"github.com/labstack/echo/v4"
)

// HealthHandler serves the liveness probe.
type HealthHandler struct{}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// RegisterRoutes registers the health route on the Echo instance.
func (h *HealthHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Health)
}

// Health reports that the process is serving requests.
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
