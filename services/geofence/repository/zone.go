package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	gocache "github.com/patrickmn/go-cache"

	"github.com/pratama/zonewatch/internal/pkg/models"
	"github.com/pratama/zonewatch/services/geofence"
)

type zoneRepo struct {
	db    *sqlx.DB
	cache *gocache.Cache
	ttl   time.Duration
}

// NewZoneRepository creates a zone registry backed by postgres with a short
// TTL read cache. The staleness window must stay at or below one evaluation
// cycle; the default 30s TTL sits well under the 5 minute catch-up interval.
func NewZoneRepository(db *sqlx.DB, cacheTTL time.Duration) geofence.ZoneRepo {
	if cacheTTL <= 0 {
		cacheTTL = 30 * time.Second
	}
	return &zoneRepo{
		db:    db,
		cache: gocache.New(cacheTTL, 2*cacheTTL),
		ttl:   cacheTTL,
	}
}

// FindActiveZones returns all active zones for the given tenant
func (r *zoneRepo) FindActiveZones(ctx context.Context, tenant string) ([]models.GeofenceZone, error) {
	cacheKey := "zones:" + tenant
	if cached, found := r.cache.Get(cacheKey); found {
		return cached.([]models.GeofenceZone), nil
	}

	query := `
		SELECT id, tenant, name, geometry_kind,
			COALESCE(center_latitude, 0) AS center_latitude,
			COALESCE(center_longitude, 0) AS center_longitude,
			COALESCE(radius_meters, 0) AS radius_meters,
			polygon_ring, is_active,
			hysteresis_buffer_meters, suppression_window_seconds,
			notification_template, created_at, updated_at
		FROM geofence_zones
		WHERE tenant = $1 AND is_active = true
		ORDER BY created_at
	`

	zones := []models.GeofenceZone{}
	if err := r.db.SelectContext(ctx, &zones, query, tenant); err != nil {
		return nil, fmt.Errorf("failed to query active zones: %w", err)
	}

	r.cache.Set(cacheKey, zones, r.ttl)
	return zones, nil
}
