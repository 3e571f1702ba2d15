package http

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/pratama/zonewatch/internal/pkg/logger"
	"github.com/pratama/zonewatch/internal/pkg/models"
	"github.com/pratama/zonewatch/internal/utils"
	"github.com/pratama/zonewatch/services/geofence"
)

// LocationHandler handles HTTP requests for location ingestion and presence
type LocationHandler struct {
	geofenceUC geofence.GeofenceUC
}

// NewLocationHandler creates a new location HTTP handler
func NewLocationHandler(geofenceUC geofence.GeofenceUC) *LocationHandler {
	return &LocationHandler{geofenceUC: geofenceUC}
}

// IngestRequest is the location ingestion body
type IngestRequest struct {
	UserID         uuid.UUID  `json:"user_id"`
	Tenant         string     `json:"tenant"`
	Latitude       float64    `json:"latitude"`
	Longitude      float64    `json:"longitude"`
	AccuracyMeters *float64   `json:"accuracy_meters,omitempty"`
	RecordedAt     *time.Time `json:"recorded_at,omitempty"`
}

// IngestLocation persists a location sample and runs the fast path
func (h *LocationHandler) IngestLocation(c echo.Context) error {
	var req IngestRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind ingest request", logger.Err(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if req.UserID == uuid.Nil {
		return utils.BadRequestResponse(c, "user_id is required")
	}
	if req.Tenant == "" {
		return utils.BadRequestResponse(c, "tenant is required")
	}

	sample := &models.LocationSample{
		UserID:    req.UserID,
		Tenant:    req.Tenant,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
	if req.AccuracyMeters != nil {
		sample.AccuracyMeters = sql.NullFloat64{Float64: *req.AccuracyMeters, Valid: true}
	}
	if req.RecordedAt != nil {
		sample.RecordedAt = *req.RecordedAt
	}

	hits, err := h.geofenceUC.IngestLocation(c.Request().Context(), sample)
	if err != nil {
		if errors.Is(err, geofence.ErrInvalidCoordinate) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to ingest location",
			logger.String("user_id", req.UserID.String()),
			logger.String("tenant", req.Tenant),
			logger.Err(err))
		return utils.InternalErrorResponse(c, "failed to ingest location")
	}

	return utils.SuccessResponse(c, http.StatusAccepted, "Location ingested", map[string]interface{}{
		"sample_id": sample.ID,
		"hits":      hits,
	})
}

// NearbyUsers returns last known user positions within a radius
func (h *LocationHandler) NearbyUsers(c echo.Context) error {
	tenant := c.QueryParam("tenant")
	if tenant == "" {
		return utils.BadRequestResponse(c, "tenant is required")
	}

	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "lat must be a number")
	}
	lon, err := strconv.ParseFloat(c.QueryParam("lon"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "lon must be a number")
	}

	radiusKm := 1.0
	if raw := c.QueryParam("radius_km"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "radius_km must be a number")
		}
	}

	users, err := h.geofenceUC.NearbyUsers(c.Request().Context(), tenant, lat, lon, radiusKm)
	if err != nil {
		if errors.Is(err, geofence.ErrInvalidCoordinate) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to query nearby users",
			logger.String("tenant", tenant),
			logger.Err(err))
		return utils.InternalErrorResponse(c, "failed to query nearby users")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby users", users)
}
