package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pratama/zonewatch/internal/utils"
	"github.com/pratama/zonewatch/services/geofence"
)

// AdminHandler exposes the catch-up trigger and status endpoints
type AdminHandler struct {
	scheduler geofence.CatchupScheduler
}

// NewAdminHandler creates a new admin HTTP handler
func NewAdminHandler(scheduler geofence.CatchupScheduler) *AdminHandler {
	return &AdminHandler{scheduler: scheduler}
}

// TriggerCatchup manually starts a catch-up run if one is not already
// active
func (h *AdminHandler) TriggerCatchup(c echo.Context) error {
	if err := h.scheduler.TriggerNow(); err != nil {
		if errors.Is(err, geofence.ErrRunInProgress) {
			return utils.ConflictResponse(c, "catch-up run already in progress")
		}
		return utils.InternalErrorResponse(c, "failed to trigger catch-up run")
	}

	return utils.SuccessResponse(c, http.StatusAccepted, "Catch-up run started", nil)
}

// CatchupStatus returns the scheduler state snapshot
func (h *AdminHandler) CatchupStatus(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Catch-up status", h.scheduler.Status())
}
