package logger

import (
	"time"

	"github.com/labstack/echo/v4"
)

// RequestLogger returns echo middleware that logs each request with latency
// and status through the global logger.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			fields := []Field{
				String("method", req.Method),
				String("path", req.URL.Path),
				Int("status", res.Status),
				Duration("latency", time.Since(start)),
				String("remote_ip", c.RealIP()),
			}
			if err != nil {
				fields = append(fields, Err(err))
			}

			switch {
			case res.Status >= 500:
				Error("request completed", fields...)
			case res.Status >= 400:
				Warn("request completed", fields...)
			default:
				Info("request completed", fields...)
			}

			return nil
		}
	}
}
