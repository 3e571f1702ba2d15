package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pratama/zonewatch/internal/utils"
)

const (
	// APIKeyHeader is the header carrying the service API key
	APIKeyHeader = "X-API-Key"
)

// ValidateAPIKey middleware validates the API key for internal
// service-to-service routes. An empty expected key disables the check,
// which is only intended for local development.
func ValidateAPIKey(expectedKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if expectedKey == "" {
				return next(c)
			}

			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "API key is required")
			}

			if subtle.ConstantTimeCompare([]byte(apiKey), []byte(expectedKey)) != 1 {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
			}

			return next(c)
		}
	}
}
