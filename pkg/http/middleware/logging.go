package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// RequestLogging emits one structured line per request. Paths in skip are
// left out, which keeps scrape and probe traffic quiet.
func RequestLogging(skip ...string) echo.MiddlewareFunc {
	skipped := make(map[string]struct{}, len(skip))
	for _, path := range skip {
		if path != "" {
			skipped[path] = struct{}{}
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			req := c.Request()
			if _, ok := skipped[req.URL.Path]; ok {
				return err
			}

			route := c.Path()
			if route == "" {
				route = req.URL.Path
			}
			log.Info().
				Str("method", req.Method).
				Str("route", route).
				Str("remote", c.RealIP()).
				Int("status", c.Response().Status).
				Dur("duration", time.Since(start)).
				Msg("http request")
			return err
		}
	}
}
