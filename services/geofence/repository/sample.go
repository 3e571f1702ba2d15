package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/pratama/zonewatch/internal/pkg/models"
	"github.com/pratama/zonewatch/services/geofence"
)

type sampleRepo struct {
	db *sqlx.DB
}

// NewSampleRepository creates the location sample repository
func NewSampleRepository(db *sqlx.DB) geofence.SampleRepo {
	return &sampleRepo{db: db}
}

// CreateSample persists a location sample with a null processed watermark
func (r *sampleRepo) CreateSample(ctx context.Context, sample *models.LocationSample) error {
	if sample.ID == uuid.Nil {
		sample.ID = uuid.New()
	}
	if sample.RecordedAt.IsZero() {
		sample.RecordedAt = models.Now()
	}

	query := `
		INSERT INTO location_samples (
			id, user_id, tenant, latitude, longitude, accuracy_meters, recorded_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		sample.ID,
		sample.UserID,
		sample.Tenant,
		sample.Latitude,
		sample.Longitude,
		sample.AccuracyMeters,
		sample.RecordedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert location sample: %w", err)
	}

	return nil
}

// FetchUnprocessed returns up to limit unprocessed samples recorded at or
// after since, oldest first. Unprocessed samples older than the bound are
// considered stale and never fetched, which keeps the scan bounded.
func (r *sampleRepo) FetchUnprocessed(ctx context.Context, since time.Time, limit int) ([]models.LocationSample, error) {
	query := `
		SELECT id, user_id, tenant, latitude, longitude, accuracy_meters,
			recorded_at, processed_at
		FROM location_samples
		WHERE processed_at IS NULL AND recorded_at >= $1
		ORDER BY recorded_at ASC
		LIMIT $2
	`

	samples := []models.LocationSample{}
	if err := r.db.SelectContext(ctx, &samples, query, since, limit); err != nil {
		return nil, fmt.Errorf("failed to fetch unprocessed samples: %w", err)
	}

	return samples, nil
}

// MarkProcessed sets the processed watermark on the given samples
func (r *sampleRepo) MarkProcessed(ctx context.Context, ids []uuid.UUID, processedAt time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := sqlx.In(
		`UPDATE location_samples SET processed_at = ? WHERE id IN (?)`,
		processedAt, ids,
	)
	if err != nil {
		return fmt.Errorf("failed to build mark processed query: %w", err)
	}

	query = r.db.Rebind(query)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to mark samples processed: %w", err)
	}

	return nil
}
