package geofence

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pratama/zonewatch/internal/pkg/models"
)

// ZoneRepo provides read access to active geofence definitions. Zone writes
// belong to the administration surface and are not part of this interface.
type ZoneRepo interface {
	FindActiveZones(ctx context.Context, tenant string) ([]models.GeofenceZone, error)
}

// SampleRepo defines access to the location sample backlog
type SampleRepo interface {
	CreateSample(ctx context.Context, sample *models.LocationSample) error

	// FetchUnprocessed returns up to limit samples with a null processed
	// watermark recorded at or after the since bound, oldest first.
	FetchUnprocessed(ctx context.Context, since time.Time, limit int) ([]models.LocationSample, error)

	// MarkProcessed sets the processed watermark on the given samples.
	MarkProcessed(ctx context.Context, ids []uuid.UUID, processedAt time.Time) error
}

// HitRepo is the durable hit ledger
type HitRepo interface {
	RecordHit(ctx context.Context, hit *models.GeofenceHit) (uuid.UUID, error)

	// MarkNotified flips notification_sent; calling it twice is a no-op.
	MarkNotified(ctx context.Context, hitID uuid.UUID) error

	// LatestHit returns the most recent hit for (user, zone) triggered within
	// [since, until], or nil when none exists. The upper bound keeps hits
	// recorded after a backlog sample from masquerading as its prior state.
	LatestHit(ctx context.Context, userID, zoneID uuid.UUID, since, until time.Time) (*models.GeofenceHit, error)
}

// SuppressionRepo tracks per-(user, zone) notification cooldown windows
type SuppressionRepo interface {
	IsSuppressed(ctx context.Context, userID, zoneID uuid.UUID) (bool, error)
	Suppress(ctx context.Context, userID, zoneID uuid.UUID, window time.Duration) error
}

// PresenceRepo tracks last known user positions per tenant
type PresenceRepo interface {
	UpdatePresence(ctx context.Context, tenant string, userID uuid.UUID, latitude, longitude float64) error
	NearbyUsers(ctx context.Context, tenant string, latitude, longitude, radiusKm float64) ([]models.NearbyUser, error)
}
