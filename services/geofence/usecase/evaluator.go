package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/pratama/zonewatch/internal/geo"
	"github.com/pratama/zonewatch/internal/pkg/logger"
	"github.com/pratama/zonewatch/internal/pkg/models"
	"github.com/pratama/zonewatch/services/geofence"
)

// GeofenceUsecase implements the geofence.GeofenceUC interface. It is the
// fast path: evaluation runs inline with location ingestion and never lets
// a per-zone failure escape its public entry point.
type GeofenceUsecase struct {
	zones       geofence.ZoneRepo
	samples     geofence.SampleRepo
	hits        geofence.HitRepo
	suppression geofence.SuppressionRepo
	presence    geofence.PresenceRepo
	notifier    geofence.NotifierGW
	detector    *Detector
	cfg         models.GeofenceConfig
}

// NewGeofenceUC creates the evaluation engine use case
func NewGeofenceUC(
	zones geofence.ZoneRepo,
	samples geofence.SampleRepo,
	hits geofence.HitRepo,
	suppression geofence.SuppressionRepo,
	presence geofence.PresenceRepo,
	notifier geofence.NotifierGW,
	cfg models.GeofenceConfig,
) *GeofenceUsecase {
	return &GeofenceUsecase{
		zones:       zones,
		samples:     samples,
		hits:        hits,
		suppression: suppression,
		presence:    presence,
		notifier:    notifier,
		detector:    NewDetector(hits, cfg.HysteresisBufferMeters, cfg.PriorHitLookback),
		cfg:         cfg,
	}
}

// IngestLocation persists a location sample and evaluates it against all
// active zones for its tenant. Returns the hits produced for caller
// telemetry.
func (uc *GeofenceUsecase) IngestLocation(ctx context.Context, sample *models.LocationSample) ([]*models.GeofenceHit, error) {
	if !geo.ValidCoordinate(sample.Latitude, sample.Longitude) {
		return nil, geofence.ErrInvalidCoordinate
	}
	if sample.RecordedAt.IsZero() {
		sample.RecordedAt = models.Now()
	}

	if err := uc.samples.CreateSample(ctx, sample); err != nil {
		return nil, fmt.Errorf("failed to persist location sample: %w", err)
	}

	// Presence is best-effort telemetry; evaluation proceeds without it
	if err := uc.presence.UpdatePresence(ctx, sample.Tenant, sample.UserID, sample.Latitude, sample.Longitude); err != nil {
		logger.Warn("Failed to update presence",
			logger.String("tenant", sample.Tenant),
			logger.Err(err))
	}

	zones, err := uc.zones.FindActiveZones(ctx, sample.Tenant)
	if err != nil {
		return nil, fmt.Errorf("failed to load active zones: %w", err)
	}

	return uc.evaluateZones(ctx, sample, zones, models.DetectionRealtime), nil
}

// NearbyUsers reports last known user positions within a radius
func (uc *GeofenceUsecase) NearbyUsers(ctx context.Context, tenant string, latitude, longitude, radiusKm float64) ([]models.NearbyUser, error) {
	if !geo.ValidCoordinate(latitude, longitude) {
		return nil, geofence.ErrInvalidCoordinate
	}
	if radiusKm <= 0 {
		return nil, fmt.Errorf("radius must be positive")
	}

	return uc.presence.NearbyUsers(ctx, tenant, latitude, longitude, radiusKm)
}

// evaluateZones runs the detector against every zone and pushes each
// transition through the suppression/ledger/dispatch pipeline. A failure on
// one zone never aborts the remaining zones.
func (uc *GeofenceUsecase) evaluateZones(ctx context.Context, sample *models.LocationSample, zones []models.GeofenceZone, detectionType models.DetectionType) []*models.GeofenceHit {
	var produced []*models.GeofenceHit

	for i := range zones {
		zone := &zones[i]

		event, distance, err := uc.detector.Detect(ctx, sample, zone)
		if err != nil {
			logger.Error("Zone evaluation failed",
				logger.String("zone_id", zone.ID.String()),
				logger.String("sample_id", sample.ID.String()),
				logger.Err(err))
			continue
		}
		if event == models.EventNone {
			continue
		}

		hit, err := uc.processTransition(ctx, sample, zone, event, distance, detectionType)
		if err != nil {
			logger.Error("Failed to process transition",
				logger.String("zone_id", zone.ID.String()),
				logger.String("sample_id", sample.ID.String()),
				logger.String("event", string(event)),
				logger.Err(err))
			continue
		}

		produced = append(produced, hit)
	}

	return produced
}

// processTransition records the hit and, when not suppressed, dispatches the
// notification and opens the cooldown window. The hit is recorded regardless
// of suppression so the ledger stays a complete audit trail.
func (uc *GeofenceUsecase) processTransition(ctx context.Context, sample *models.LocationSample, zone *models.GeofenceZone, event models.EventType, distance float64, detectionType models.DetectionType) (*models.GeofenceHit, error) {
	suppressed, err := uc.suppression.IsSuppressed(ctx, sample.UserID, zone.ID)
	if err != nil {
		// A missed suppression read only risks an extra duplicate check;
		// treating the pair as unsuppressed is the safe default.
		logger.Warn("Suppression lookup failed, treating as not suppressed",
			logger.String("zone_id", zone.ID.String()),
			logger.Err(err))
		suppressed = false
	}

	hit := &models.GeofenceHit{
		ZoneID:         zone.ID,
		UserID:         sample.UserID,
		SampleID:       sample.ID,
		EventType:      event,
		DistanceMeters: distance,
		DetectionType:  detectionType,
		TriggeredAt:    sample.RecordedAt,
		Suppressed:     suppressed,
	}
	if suppressed {
		hit.SuppressionReason = "cooldown window active"
	}

	hitID, err := uc.hits.RecordHit(ctx, hit)
	if err != nil {
		return nil, fmt.Errorf("failed to record hit: %w", err)
	}
	hit.ID = hitID

	if err := uc.notifier.PublishHitEvent(ctx, models.HitEvent{
		HitID:         hit.ID,
		ZoneID:        zone.ID,
		UserID:        sample.UserID,
		Tenant:        sample.Tenant,
		EventType:     event,
		DetectionType: detectionType,
		Suppressed:    suppressed,
		TriggeredAt:   hit.TriggeredAt,
	}); err != nil {
		logger.Warn("Failed to publish hit event", logger.Err(err))
	}

	if suppressed {
		return hit, nil
	}

	uc.dispatchNotification(ctx, sample, zone, hit)
	return hit, nil
}

// dispatchNotification sends the notification, marks the hit notified on
// success, and opens the zone's cooldown window. Zero deliveries or a
// dispatch error leave the hit unnotified and unsuppressed so a later pass
// can retry.
func (uc *GeofenceUsecase) dispatchNotification(ctx context.Context, sample *models.LocationSample, zone *models.GeofenceZone, hit *models.GeofenceHit) {
	payload := buildPayload(zone, hit)

	delivered, err := uc.notifier.Send(ctx, sample.UserID, payload)
	if err != nil {
		logger.Error("Notification dispatch failed",
			logger.String("hit_id", hit.ID.String()),
			logger.String("zone_id", zone.ID.String()),
			logger.Err(err))
		return
	}
	if delivered == 0 {
		logger.Warn("Notification dispatched to zero recipients",
			logger.String("hit_id", hit.ID.String()),
			logger.String("zone_id", zone.ID.String()))
		return
	}

	if err := uc.hits.MarkNotified(ctx, hit.ID); err != nil {
		logger.Error("Failed to mark hit notified",
			logger.String("hit_id", hit.ID.String()),
			logger.Err(err))
	} else {
		hit.NotificationSent = true
	}

	window := time.Duration(zone.SuppressionWindowSeconds) * time.Second
	if zone.SuppressionWindowSeconds <= 0 {
		window = time.Duration(uc.cfg.SuppressionWindowSeconds) * time.Second
	}
	if err := uc.suppression.Suppress(ctx, sample.UserID, zone.ID, window); err != nil {
		logger.Warn("Failed to open suppression window",
			logger.String("zone_id", zone.ID.String()),
			logger.Err(err))
	}
}

func buildPayload(zone *models.GeofenceZone, hit *models.GeofenceHit) models.NotificationPayload {
	title := zone.NotificationTemplate
	if title == "" {
		title = zone.Name
	}

	body := fmt.Sprintf("You entered %s", zone.Name)
	if hit.EventType == models.EventExit {
		body = fmt.Sprintf("You left %s", zone.Name)
	}

	return models.NotificationPayload{
		Title: title,
		Body:  body,
		Data: models.NotificationData{
			ZoneID:    zone.ID,
			EventType: hit.EventType,
			HitID:     hit.ID,
		},
	}
}
