package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/pratama/zonewatch/internal/pkg/models"
	"github.com/pratama/zonewatch/services/geofence"
)

type hitRepo struct {
	db *sqlx.DB
}

// NewHitRepository creates the hit ledger repository
func NewHitRepository(db *sqlx.DB) geofence.HitRepo {
	return &hitRepo{db: db}
}

// RecordHit appends a hit to the ledger and returns its ID. Safe for
// concurrent callers; deduplication of transitions is the detector's job,
// not the ledger's.
func (r *hitRepo) RecordHit(ctx context.Context, hit *models.GeofenceHit) (uuid.UUID, error) {
	if hit.ID == uuid.Nil {
		hit.ID = uuid.New()
	}
	if hit.TriggeredAt.IsZero() {
		hit.TriggeredAt = models.Now()
	}

	query := `
		INSERT INTO geofence_hits (
			id, zone_id, user_id, sample_id, event_type, distance_meters,
			detection_type, triggered_at, notification_sent, suppressed,
			suppression_reason
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.ExecContext(ctx, query,
		hit.ID,
		hit.ZoneID,
		hit.UserID,
		hit.SampleID,
		hit.EventType,
		hit.DistanceMeters,
		hit.DetectionType,
		hit.TriggeredAt,
		hit.NotificationSent,
		hit.Suppressed,
		hit.SuppressionReason,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert geofence hit: %w", err)
	}

	return hit.ID, nil
}

// MarkNotified flips notification_sent. Idempotent: updating an already
// notified hit matches zero rows and is still a success.
func (r *hitRepo) MarkNotified(ctx context.Context, hitID uuid.UUID) error {
	query := `
		UPDATE geofence_hits
		SET notification_sent = true
		WHERE id = $1 AND notification_sent = false
	`

	if _, err := r.db.ExecContext(ctx, query, hitID); err != nil {
		return fmt.Errorf("failed to mark hit notified: %w", err)
	}

	return nil
}

// LatestHit returns the most recent hit for (user, zone) triggered within
// [since, until], or nil when none exists. Both bounds are inclusive.
func (r *hitRepo) LatestHit(ctx context.Context, userID, zoneID uuid.UUID, since, until time.Time) (*models.GeofenceHit, error) {
	query := `
		SELECT id, zone_id, user_id, sample_id, event_type, distance_meters,
			detection_type, triggered_at, notification_sent, suppressed,
			COALESCE(suppression_reason, '') AS suppression_reason
		FROM geofence_hits
		WHERE user_id = $1 AND zone_id = $2
			AND triggered_at >= $3 AND triggered_at <= $4
		ORDER BY triggered_at DESC
		LIMIT 1
	`

	hit := &models.GeofenceHit{}
	err := r.db.GetContext(ctx, hit, query, userID, zoneID, since, until)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query latest hit: %w", err)
	}

	return hit, nil
}
