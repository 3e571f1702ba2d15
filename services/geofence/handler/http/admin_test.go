package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pratama/zonewatch/internal/pkg/models"
	"github.com/pratama/zonewatch/services/geofence"
	"github.com/pratama/zonewatch/services/geofence/mocks"
)

func TestTriggerCatchup_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScheduler := mocks.NewMockCatchupScheduler(ctrl)
	handler := NewAdminHandler(mockScheduler)

	mockScheduler.EXPECT().TriggerNow().Return(nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/internal/catchup/trigger", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.TriggerCatchup(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestTriggerCatchup_AlreadyRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScheduler := mocks.NewMockCatchupScheduler(ctrl)
	handler := NewAdminHandler(mockScheduler)

	mockScheduler.EXPECT().TriggerNow().Return(geofence.ErrRunInProgress)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/internal/catchup/trigger", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.TriggerCatchup(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestTriggerCatchup_UnexpectedError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScheduler := mocks.NewMockCatchupScheduler(ctrl)
	handler := NewAdminHandler(mockScheduler)

	mockScheduler.EXPECT().TriggerNow().Return(errors.New("scheduler stopped"))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/internal/catchup/trigger", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.TriggerCatchup(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCatchupStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScheduler := mocks.NewMockCatchupScheduler(ctrl)
	handler := NewAdminHandler(mockScheduler)

	mockScheduler.EXPECT().Status().Return(models.SchedulerStatus{
		IsRunning:     true,
		LastRunTime:   time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		LastRunStatus: models.RunStatusSuccess,
		NextRunTime:   time.Date(2026, 3, 14, 10, 5, 0, 0, time.UTC),
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/internal/catchup/status", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.CatchupStatus(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, true, data["is_running"])
	assert.Equal(t, "success", data["last_run_status"])
}
