package http

import "github.com/labstack/echo/v4"

// Handler registers a set of routes on the Echo instance. The valuation
// API implements it; the server accepts any implementation.
type Handler interface {
	RegisterRoutes(e *echo.Echo)
}
