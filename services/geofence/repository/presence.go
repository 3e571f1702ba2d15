package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pratama/zonewatch/internal/geo"
	"github.com/pratama/zonewatch/internal/pkg/constants"
	"github.com/pratama/zonewatch/internal/pkg/database"
	"github.com/pratama/zonewatch/internal/pkg/models"
	"github.com/pratama/zonewatch/internal/utils"
	"github.com/pratama/zonewatch/services/geofence"
)

// Presence entries are last-known positions; after a day of silence a
// tenant's GEO set is stale enough to discard wholesale.
const presenceTTL = 24 * time.Hour

type presenceRepo struct {
	redisClient *database.RedisClient
}

// NewPresenceRepository creates the presence tracker backed by a Redis GEO
// set per tenant
func NewPresenceRepository(redisClient *database.RedisClient) geofence.PresenceRepo {
	return &presenceRepo{redisClient: redisClient}
}

// UpdatePresence records the user's last known position and refreshes the
// staleness bound on the tenant's GEO set
func (r *presenceRepo) UpdatePresence(ctx context.Context, tenant string, userID uuid.UUID, latitude, longitude float64) error {
	key := fmt.Sprintf(constants.KeyTenantPresence, tenant)

	if err := r.redisClient.GeoAdd(ctx, key, longitude, latitude, userID.String()); err != nil {
		return fmt.Errorf("failed to update presence: %w", err)
	}

	if err := r.redisClient.Expire(ctx, key, presenceTTL); err != nil {
		return fmt.Errorf("failed to set presence expiry: %w", err)
	}

	return nil
}

// NearbyUsers returns users whose last known position falls within the
// radius, nearest first
func (r *presenceRepo) NearbyUsers(ctx context.Context, tenant string, latitude, longitude, radiusKm float64) ([]models.NearbyUser, error) {
	key := fmt.Sprintf(constants.KeyTenantPresence, tenant)

	results, err := r.redisClient.GeoRadius(ctx, key, longitude, latitude, radiusKm, "km")
	if err != nil {
		return nil, fmt.Errorf("failed to query nearby users: %w", err)
	}

	users := make([]models.NearbyUser, len(results))
	for i, res := range results {
		users[i] = models.NearbyUser{
			UserID:     res.Name,
			Latitude:   res.Latitude,
			Longitude:  res.Longitude,
			DistanceKm: res.Dist,
			Geohash: utils.EncodePoint(
				geo.Point{Latitude: res.Latitude, Longitude: res.Longitude},
				utils.DefaultGeohashPrecision,
			),
		}
	}

	return users, nil
}
