package v1

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/madlen/chat-backend/internal/domain"
)

// ListModels returns the free-tier entries of the upstream model catalog.
// Any upstream failure is reported as a 500 with the error text.
// GET /models
func (h *Handler) ListModels(c echo.Context) error {
	models, err := h.service.ListFreeModels(c.Request().Context())
	if err != nil {
		log.Printf("ERROR: failed to list models: %v", err)
		return c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Detail: err.Error()})
	}

	return c.JSON(http.StatusOK, domain.ListModelsResponse{Models: models})
}
