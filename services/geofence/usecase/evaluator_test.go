package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/pratama/zonewatch/internal/pkg/models"
	"github.com/pratama/zonewatch/services/geofence"
	"github.com/pratama/zonewatch/services/geofence/mocks"
)

type evaluatorMocks struct {
	zones       *mocks.MockZoneRepo
	samples     *mocks.MockSampleRepo
	hits        *mocks.MockHitRepo
	suppression *mocks.MockSuppressionRepo
	presence    *mocks.MockPresenceRepo
	notifier    *mocks.MockNotifierGW
}

func newEvaluator(ctrl *gomock.Controller) (*GeofenceUsecase, *evaluatorMocks) {
	m := &evaluatorMocks{
		zones:       mocks.NewMockZoneRepo(ctrl),
		samples:     mocks.NewMockSampleRepo(ctrl),
		hits:        mocks.NewMockHitRepo(ctrl),
		suppression: mocks.NewMockSuppressionRepo(ctrl),
		presence:    mocks.NewMockPresenceRepo(ctrl),
		notifier:    mocks.NewMockNotifierGW(ctrl),
	}

	cfg := models.GeofenceConfig{
		BatchSize:                100,
		LookbackMinutes:          30,
		Interval:                 5 * time.Minute,
		HysteresisBufferMeters:   10.0,
		SuppressionWindowSeconds: 300,
		PriorHitLookback:         24 * time.Hour,
	}

	uc := NewGeofenceUC(m.zones, m.samples, m.hits, m.suppression, m.presence, m.notifier, cfg)
	return uc, m
}

func TestIngestLocation_EnterDispatchesNotification(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newEvaluator(ctrl)

	zone := circleZone(100)
	sample := sampleAt(centerLat, centerLon)
	hitID := uuid.New()

	m.samples.EXPECT().CreateSample(gomock.Any(), sample).Return(nil)
	m.presence.EXPECT().UpdatePresence(gomock.Any(), "acme", sample.UserID, centerLat, centerLon).Return(nil)
	m.zones.EXPECT().FindActiveZones(gomock.Any(), "acme").Return([]models.GeofenceZone{*zone}, nil)
	m.hits.EXPECT().LatestHit(gomock.Any(), sample.UserID, zone.ID, gomock.Any(), gomock.Any()).Return(nil, nil)
	m.suppression.EXPECT().IsSuppressed(gomock.Any(), sample.UserID, zone.ID).Return(false, nil)
	m.hits.EXPECT().RecordHit(gomock.Any(), gomock.Any()).Return(hitID, nil)
	m.notifier.EXPECT().PublishHitEvent(gomock.Any(), gomock.Any()).Return(nil)
	m.notifier.EXPECT().Send(gomock.Any(), sample.UserID, gomock.Any()).Return(1, nil)
	m.hits.EXPECT().MarkNotified(gomock.Any(), hitID).Return(nil)
	m.suppression.EXPECT().Suppress(gomock.Any(), sample.UserID, zone.ID, 300*time.Second).Return(nil)

	hits, err := uc.IngestLocation(context.Background(), sample)

	assert.NoError(t, err)
	assert.Len(t, hits, 1)
	assert.Equal(t, models.EventEnter, hits[0].EventType)
	assert.Equal(t, models.DetectionRealtime, hits[0].DetectionType)
	assert.True(t, hits[0].NotificationSent)
	assert.False(t, hits[0].Suppressed)
}

func TestIngestLocation_SuppressedHitIsRecordedButNotDispatched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newEvaluator(ctrl)

	zone := circleZone(100)
	sample := sampleAt(centerLat, centerLon)
	hitID := uuid.New()

	m.samples.EXPECT().CreateSample(gomock.Any(), sample).Return(nil)
	m.presence.EXPECT().UpdatePresence(gomock.Any(), "acme", sample.UserID, centerLat, centerLon).Return(nil)
	m.zones.EXPECT().FindActiveZones(gomock.Any(), "acme").Return([]models.GeofenceZone{*zone}, nil)
	m.hits.EXPECT().LatestHit(gomock.Any(), sample.UserID, zone.ID, gomock.Any(), gomock.Any()).Return(nil, nil)
	m.suppression.EXPECT().IsSuppressed(gomock.Any(), sample.UserID, zone.ID).Return(true, nil)
	m.hits.EXPECT().RecordHit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, hit *models.GeofenceHit) (uuid.UUID, error) {
			assert.True(t, hit.Suppressed)
			assert.Equal(t, "cooldown window active", hit.SuppressionReason)
			return hitID, nil
		})
	m.notifier.EXPECT().PublishHitEvent(gomock.Any(), gomock.Any()).Return(nil)
	// No Send, MarkNotified or Suppress while the cooldown window is open

	hits, err := uc.IngestLocation(context.Background(), sample)

	assert.NoError(t, err)
	assert.Len(t, hits, 1)
	assert.True(t, hits[0].Suppressed)
	assert.False(t, hits[0].NotificationSent)
}

func TestIngestLocation_ZeroDeliveriesLeavesHitRetryable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newEvaluator(ctrl)

	zone := circleZone(100)
	sample := sampleAt(centerLat, centerLon)

	m.samples.EXPECT().CreateSample(gomock.Any(), sample).Return(nil)
	m.presence.EXPECT().UpdatePresence(gomock.Any(), "acme", sample.UserID, centerLat, centerLon).Return(nil)
	m.zones.EXPECT().FindActiveZones(gomock.Any(), "acme").Return([]models.GeofenceZone{*zone}, nil)
	m.hits.EXPECT().LatestHit(gomock.Any(), sample.UserID, zone.ID, gomock.Any(), gomock.Any()).Return(nil, nil)
	m.suppression.EXPECT().IsSuppressed(gomock.Any(), sample.UserID, zone.ID).Return(false, nil)
	m.hits.EXPECT().RecordHit(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
	m.notifier.EXPECT().PublishHitEvent(gomock.Any(), gomock.Any()).Return(nil)
	m.notifier.EXPECT().Send(gomock.Any(), sample.UserID, gomock.Any()).Return(0, nil)
	// Zero recipients: no MarkNotified, no cooldown window

	hits, err := uc.IngestLocation(context.Background(), sample)

	assert.NoError(t, err)
	assert.Len(t, hits, 1)
	assert.False(t, hits[0].NotificationSent)
}

func TestIngestLocation_DispatchErrorLeavesHitRetryable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newEvaluator(ctrl)

	zone := circleZone(100)
	sample := sampleAt(centerLat, centerLon)

	m.samples.EXPECT().CreateSample(gomock.Any(), sample).Return(nil)
	m.presence.EXPECT().UpdatePresence(gomock.Any(), "acme", sample.UserID, centerLat, centerLon).Return(nil)
	m.zones.EXPECT().FindActiveZones(gomock.Any(), "acme").Return([]models.GeofenceZone{*zone}, nil)
	m.hits.EXPECT().LatestHit(gomock.Any(), sample.UserID, zone.ID, gomock.Any(), gomock.Any()).Return(nil, nil)
	m.suppression.EXPECT().IsSuppressed(gomock.Any(), sample.UserID, zone.ID).Return(false, nil)
	m.hits.EXPECT().RecordHit(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
	m.notifier.EXPECT().PublishHitEvent(gomock.Any(), gomock.Any()).Return(nil)
	m.notifier.EXPECT().Send(gomock.Any(), sample.UserID, gomock.Any()).Return(0, errors.New("nats: timeout"))

	hits, err := uc.IngestLocation(context.Background(), sample)

	assert.NoError(t, err)
	assert.Len(t, hits, 1)
	assert.False(t, hits[0].NotificationSent)
}

func TestIngestLocation_ZoneSuppressionWindowOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newEvaluator(ctrl)

	zone := circleZone(100)
	zone.SuppressionWindowSeconds = 60
	sample := sampleAt(centerLat, centerLon)
	hitID := uuid.New()

	m.samples.EXPECT().CreateSample(gomock.Any(), sample).Return(nil)
	m.presence.EXPECT().UpdatePresence(gomock.Any(), "acme", sample.UserID, centerLat, centerLon).Return(nil)
	m.zones.EXPECT().FindActiveZones(gomock.Any(), "acme").Return([]models.GeofenceZone{*zone}, nil)
	m.hits.EXPECT().LatestHit(gomock.Any(), sample.UserID, zone.ID, gomock.Any(), gomock.Any()).Return(nil, nil)
	m.suppression.EXPECT().IsSuppressed(gomock.Any(), sample.UserID, zone.ID).Return(false, nil)
	m.hits.EXPECT().RecordHit(gomock.Any(), gomock.Any()).Return(hitID, nil)
	m.notifier.EXPECT().PublishHitEvent(gomock.Any(), gomock.Any()).Return(nil)
	m.notifier.EXPECT().Send(gomock.Any(), sample.UserID, gomock.Any()).Return(1, nil)
	m.hits.EXPECT().MarkNotified(gomock.Any(), hitID).Return(nil)
	m.suppression.EXPECT().Suppress(gomock.Any(), sample.UserID, zone.ID, 60*time.Second).Return(nil)

	_, err := uc.IngestLocation(context.Background(), sample)

	assert.NoError(t, err)
}

func TestIngestLocation_PerZoneFailureIsIsolated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newEvaluator(ctrl)

	broken := circleZone(0) // fails geometry validation
	healthy := circleZone(100)
	sample := sampleAt(centerLat, centerLon)
	hitID := uuid.New()

	m.samples.EXPECT().CreateSample(gomock.Any(), sample).Return(nil)
	m.presence.EXPECT().UpdatePresence(gomock.Any(), "acme", sample.UserID, centerLat, centerLon).Return(nil)
	m.zones.EXPECT().FindActiveZones(gomock.Any(), "acme").Return([]models.GeofenceZone{*broken, *healthy}, nil)
	m.hits.EXPECT().LatestHit(gomock.Any(), sample.UserID, healthy.ID, gomock.Any(), gomock.Any()).Return(nil, nil)
	m.suppression.EXPECT().IsSuppressed(gomock.Any(), sample.UserID, healthy.ID).Return(false, nil)
	m.hits.EXPECT().RecordHit(gomock.Any(), gomock.Any()).Return(hitID, nil)
	m.notifier.EXPECT().PublishHitEvent(gomock.Any(), gomock.Any()).Return(nil)
	m.notifier.EXPECT().Send(gomock.Any(), sample.UserID, gomock.Any()).Return(1, nil)
	m.hits.EXPECT().MarkNotified(gomock.Any(), hitID).Return(nil)
	m.suppression.EXPECT().Suppress(gomock.Any(), sample.UserID, healthy.ID, gomock.Any()).Return(nil)

	hits, err := uc.IngestLocation(context.Background(), sample)

	assert.NoError(t, err)
	assert.Len(t, hits, 1)
	assert.Equal(t, healthy.ID, hits[0].ZoneID)
}

func TestIngestLocation_SuppressionLookupFailureFailsOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newEvaluator(ctrl)

	zone := circleZone(100)
	sample := sampleAt(centerLat, centerLon)
	hitID := uuid.New()

	m.samples.EXPECT().CreateSample(gomock.Any(), sample).Return(nil)
	m.presence.EXPECT().UpdatePresence(gomock.Any(), "acme", sample.UserID, centerLat, centerLon).Return(nil)
	m.zones.EXPECT().FindActiveZones(gomock.Any(), "acme").Return([]models.GeofenceZone{*zone}, nil)
	m.hits.EXPECT().LatestHit(gomock.Any(), sample.UserID, zone.ID, gomock.Any(), gomock.Any()).Return(nil, nil)
	m.suppression.EXPECT().IsSuppressed(gomock.Any(), sample.UserID, zone.ID).Return(false, errors.New("redis: connection pool timeout"))
	m.hits.EXPECT().RecordHit(gomock.Any(), gomock.Any()).Return(hitID, nil)
	m.notifier.EXPECT().PublishHitEvent(gomock.Any(), gomock.Any()).Return(nil)
	m.notifier.EXPECT().Send(gomock.Any(), sample.UserID, gomock.Any()).Return(1, nil)
	m.hits.EXPECT().MarkNotified(gomock.Any(), hitID).Return(nil)
	m.suppression.EXPECT().Suppress(gomock.Any(), sample.UserID, zone.ID, gomock.Any()).Return(nil)

	hits, err := uc.IngestLocation(context.Background(), sample)

	assert.NoError(t, err)
	assert.Len(t, hits, 1)
	assert.False(t, hits[0].Suppressed)
}

func TestIngestLocation_PresenceFailureDoesNotBlockEvaluation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newEvaluator(ctrl)

	sample := sampleAt(centerLat, centerLon)

	m.samples.EXPECT().CreateSample(gomock.Any(), sample).Return(nil)
	m.presence.EXPECT().UpdatePresence(gomock.Any(), "acme", sample.UserID, centerLat, centerLon).Return(errors.New("redis down"))
	m.zones.EXPECT().FindActiveZones(gomock.Any(), "acme").Return(nil, nil)

	hits, err := uc.IngestLocation(context.Background(), sample)

	assert.NoError(t, err)
	assert.Empty(t, hits)
}

func TestIngestLocation_InvalidCoordinate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _ := newEvaluator(ctrl)

	sample := sampleAt(91.0, 0.0)

	hits, err := uc.IngestLocation(context.Background(), sample)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, geofence.ErrInvalidCoordinate))
	assert.Nil(t, hits)
}

func TestIngestLocation_SamplePersistenceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newEvaluator(ctrl)

	sample := sampleAt(centerLat, centerLon)

	m.samples.EXPECT().CreateSample(gomock.Any(), sample).Return(errors.New("pq: deadlock detected"))

	hits, err := uc.IngestLocation(context.Background(), sample)

	assert.Error(t, err)
	assert.Nil(t, hits)
	assert.Contains(t, err.Error(), "persist location sample")
}

func TestIngestLocation_DefaultsRecordedAt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newEvaluator(ctrl)

	sample := sampleAt(centerLat, centerLon)
	sample.RecordedAt = time.Time{}

	m.samples.EXPECT().CreateSample(gomock.Any(), sample).Return(nil)
	m.presence.EXPECT().UpdatePresence(gomock.Any(), "acme", sample.UserID, centerLat, centerLon).Return(nil)
	m.zones.EXPECT().FindActiveZones(gomock.Any(), "acme").Return(nil, nil)

	_, err := uc.IngestLocation(context.Background(), sample)

	assert.NoError(t, err)
	assert.False(t, sample.RecordedAt.IsZero())
}

func TestNearbyUsers_DelegatesToPresence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newEvaluator(ctrl)

	expected := []models.NearbyUser{{UserID: uuid.New().String(), Latitude: centerLat, Longitude: centerLon}}
	m.presence.EXPECT().NearbyUsers(gomock.Any(), "acme", centerLat, centerLon, 2.5).Return(expected, nil)

	users, err := uc.NearbyUsers(context.Background(), "acme", centerLat, centerLon, 2.5)

	assert.NoError(t, err)
	assert.Equal(t, expected, users)
}

func TestNearbyUsers_RejectsInvalidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _ := newEvaluator(ctrl)

	_, err := uc.NearbyUsers(context.Background(), "acme", 200.0, 0.0, 1.0)
	assert.True(t, errors.Is(err, geofence.ErrInvalidCoordinate))

	_, err = uc.NearbyUsers(context.Background(), "acme", centerLat, centerLon, 0)
	assert.Error(t, err)
}
