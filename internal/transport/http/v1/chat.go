package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/madlen/chat-backend/internal/domain"
)

// Chat relays one conversation turn to the upstream model and persists the
// exchange.
// POST /chat
func (h *Handler) Chat(c echo.Context) error {
	var req domain.ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, domain.ErrorResponse{Detail: "invalid request body"})
	}

	raw, err := h.service.Chat(c.Request().Context(), &req)
	if err != nil {
		return jsonError(c, err)
	}

	// The upstream body is returned untouched so the caller keeps access to
	// usage and cost metadata.
	return c.JSONBlob(http.StatusOK, raw)
}
