package geofence

import (
	"context"

	"github.com/pratama/zonewatch/internal/pkg/models"
)

// GeofenceUC defines the evaluation engine's business logic surface
type GeofenceUC interface {
	// IngestLocation persists a location sample and runs the fast path
	// against it, returning the hits produced. Per-zone failures are logged
	// and skipped, never surfaced to the ingestion caller.
	IngestLocation(ctx context.Context, sample *models.LocationSample) ([]*models.GeofenceHit, error)

	// NearbyUsers reports last known user positions within a radius.
	NearbyUsers(ctx context.Context, tenant string, latitude, longitude, radiusKm float64) ([]models.NearbyUser, error)
}

// CatchupRunner reconciles the unprocessed sample backlog in bounded
// batches. Implemented by the catch-up evaluator; consumed by the scheduler.
type CatchupRunner interface {
	Run(ctx context.Context) (models.RunStats, error)
}

// CatchupScheduler is the admin surface over the catch-up timer
type CatchupScheduler interface {
	// TriggerNow starts a run if idle; returns ErrRunInProgress otherwise.
	TriggerNow() error
	Status() models.SchedulerStatus
}
