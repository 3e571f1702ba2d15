package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/pratama/zonewatch/internal/geo"
	"github.com/pratama/zonewatch/internal/pkg/models"
	"github.com/pratama/zonewatch/services/geofence"
)

// Detector decides whether a location sample constitutes an enter or exit
// transition for a single zone.
//
// The prior state reference is the latest ledger hit for the (user, zone)
// pair, not the previous sample. That keeps detection idempotent under
// re-evaluation: a second pass over the same sample sees the hit recorded by
// the first pass as "prior" and emits nothing.
type Detector struct {
	hits              geofence.HitRepo
	defaultHysteresis float64
	priorHitLookback  time.Duration
}

// NewDetector creates a transition detector
func NewDetector(hits geofence.HitRepo, defaultHysteresis float64, priorHitLookback time.Duration) *Detector {
	if priorHitLookback <= 0 {
		priorHitLookback = 24 * time.Hour
	}
	return &Detector{
		hits:              hits,
		defaultHysteresis: defaultHysteresis,
		priorHitLookback:  priorHitLookback,
	}
}

// Detect returns the transition for the sample against the zone, along with
// the sample's distance from the zone center (circular zones only, zero for
// polygons).
func (d *Detector) Detect(ctx context.Context, sample *models.LocationSample, zone *models.GeofenceZone) (models.EventType, float64, error) {
	if err := validateZoneGeometry(zone); err != nil {
		return models.EventNone, 0, err
	}

	point := geo.Point{Latitude: sample.Latitude, Longitude: sample.Longitude}
	geom := zone.Geometry()
	isInside := geom.Contains(point)

	var distanceMeters float64
	if zone.GeometryKind == models.GeometryCircle {
		distanceMeters = geo.Distance(sample.Latitude, sample.Longitude, zone.CenterLatitude, zone.CenterLongitude)
	}

	reference := sample.RecordedAt
	if reference.IsZero() {
		reference = models.Now()
	}

	// Hits triggered after the sample was recorded are not prior state. The
	// upper bound is inclusive so a re-evaluated sample still sees its own
	// hit from an earlier pass.
	prior, err := d.hits.LatestHit(ctx, sample.UserID, zone.ID, reference.Add(-d.priorHitLookback), reference)
	if err != nil {
		return models.EventNone, 0, fmt.Errorf("failed to look up prior hit: %w", err)
	}
	wasInside := prior != nil && prior.EventType == models.EventEnter

	switch {
	case isInside && !wasInside:
		return models.EventEnter, distanceMeters, nil

	case !isInside && wasInside:
		// Exit hysteresis: the point must clear the boundary by the buffer
		// before an exit is recognized, so a user oscillating on the edge
		// does not flap between states.
		buffer := zone.HysteresisBufferMeters
		if buffer <= 0 {
			buffer = d.defaultHysteresis
		}
		if geom.BoundaryDistance(point) >= buffer {
			return models.EventExit, distanceMeters, nil
		}
		return models.EventNone, distanceMeters, nil

	default:
		return models.EventNone, distanceMeters, nil
	}
}

func validateZoneGeometry(zone *models.GeofenceZone) error {
	switch zone.GeometryKind {
	case models.GeometryCircle:
		if zone.RadiusMeters <= 0 {
			return fmt.Errorf("zone %s: radius must be positive: %w", zone.ID, geofence.ErrZoneGeometry)
		}
	case models.GeometryPolygon:
		if len(zone.PolygonRing) < 3 {
			return fmt.Errorf("zone %s: polygon needs at least 3 vertices: %w", zone.ID, geofence.ErrZoneGeometry)
		}
	default:
		return fmt.Errorf("zone %s: unknown geometry kind %q: %w", zone.ID, zone.GeometryKind, geofence.ErrZoneGeometry)
	}
	return nil
}
