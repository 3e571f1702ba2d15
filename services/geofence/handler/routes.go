package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/pratama/zonewatch/internal/pkg/middleware"
	"github.com/pratama/zonewatch/services/geofence"
	httpHandler "github.com/pratama/zonewatch/services/geofence/handler/http"
)

// HTTPHandler combines all handlers for the geofence service
type HTTPHandler struct {
	location *httpHandler.LocationHandler
	admin    *httpHandler.AdminHandler
}

// NewHTTPHandler creates a new combined handler
func NewHTTPHandler(geofenceUC geofence.GeofenceUC, scheduler geofence.CatchupScheduler) *HTTPHandler {
	return &HTTPHandler{
		location: httpHandler.NewLocationHandler(geofenceUC),
		admin:    httpHandler.NewAdminHandler(scheduler),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *HTTPHandler) RegisterRoutes(e *echo.Echo, apiKey string) {
	// Internal routes for service-to-service communication (API key required)
	internal := e.Group("/internal", middleware.ValidateAPIKey(apiKey))

	// Location ingestion (fast path)
	internal.POST("/locations", h.location.IngestLocation)
	internal.GET("/users/nearby", h.location.NearbyUsers)

	// Catch-up administration
	internal.POST("/catchup/trigger", h.admin.TriggerCatchup)
	internal.GET("/catchup/status", h.admin.CatchupStatus)
}
