// Package v1 provides the HTTP handlers for the chat backend.
package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/madlen/chat-backend/internal/service"
)

// Handler handles HTTP requests.
type Handler struct {
	service *service.Service
}

// NewHandler creates a new handler.
func NewHandler(service *service.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/models", h.ListModels)

	e.GET("/sessions", h.ListSessions)
	e.POST("/sessions", h.CreateSession)
	e.GET("/sessions/:session_id/messages", h.GetSessionMessages)

	e.POST("/chat", h.Chat)

	e.GET("/health", h.Health)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
