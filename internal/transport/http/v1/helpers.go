package v1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/madlen/chat-backend/internal/domain"
)

// jsonError maps a service error onto the wire: validation failures are 400,
// upstream failures keep the upstream's own status, everything else
// (malformed upstream body, storage failure, network error) is a 500. The
// body is always {"detail": ...}.
func jsonError(c echo.Context, err error) error {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return c.JSON(http.StatusBadRequest, domain.ErrorResponse{Detail: validationErr.Message})
	}

	var upstreamErr *domain.UpstreamError
	if errors.As(err, &upstreamErr) {
		return c.JSON(upstreamErr.StatusCode, domain.ErrorResponse{Detail: upstreamErr.Message})
	}

	return c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Detail: err.Error()})
}
