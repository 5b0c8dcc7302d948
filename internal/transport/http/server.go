// Package http provides the HTTP server for the chat backend.
package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/madlen/chat-backend/internal/service"
	v1 "github.com/madlen/chat-backend/internal/transport/http/v1"
)

// NewServer creates and configures the echo server. Only the configured
// frontend origin is allowed by CORS; there is no authentication.
func NewServer(svc *service.Service, frontendOrigin string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{frontendOrigin},
		AllowMethods:     []string{nethttp.MethodGet, nethttp.MethodPost, nethttp.MethodOptions},
		AllowCredentials: true,
	}))

	// Handlers
	handler := v1.NewHandler(svc)
	handler.RegisterRoutes(e)

	return e
}
