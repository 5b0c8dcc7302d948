package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/madlen/chat-backend/internal/domain"
)

// CreateSession creates a new session, with a default title when none is given.
// POST /sessions
func (h *Handler) CreateSession(c echo.Context) error {
	var req domain.CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, domain.ErrorResponse{Detail: "invalid request body"})
	}

	session, err := h.service.CreateSession(c.Request().Context(), req.Title)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, domain.SessionResponse{
		ID:    session.ID,
		Title: session.Title,
	})
}

// ListSessions returns all sessions, newest first.
// GET /sessions
func (h *Handler) ListSessions(c echo.Context) error {
	sessions, err := h.service.ListSessions(c.Request().Context())
	if err != nil {
		return jsonError(c, err)
	}

	out := make([]domain.SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, domain.SessionResponse{
			ID:    session.ID,
			Title: session.Title,
		})
	}

	return c.JSON(http.StatusOK, domain.ListSessionsResponse{Sessions: out})
}

// GetSessionMessages returns a session's messages in ascending timestamp order.
// GET /sessions/:session_id/messages
func (h *Handler) GetSessionMessages(c echo.Context) error {
	sessionID, err := strconv.ParseInt(c.Param("session_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ErrorResponse{Detail: "session_id must be an integer"})
	}

	messages, err := h.service.GetMessages(c.Request().Context(), sessionID)
	if err != nil {
		return jsonError(c, err)
	}

	out := make([]domain.MessageResponse, 0, len(messages))
	for _, msg := range messages {
		out = append(out, domain.MessageResponse{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	return c.JSON(http.StatusOK, domain.ListMessagesResponse{Messages: out})
}
