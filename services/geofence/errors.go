package geofence

import "errors"

var (
	// ErrRunInProgress is returned when a catch-up run is triggered while
	// another run is still active. Triggers are rejected, not queued.
	ErrRunInProgress = errors.New("catch-up run already in progress")

	// ErrInvalidCoordinate rejects out-of-range latitude/longitude input
	ErrInvalidCoordinate = errors.New("latitude must be in [-90,90] and longitude in [-180,180]")

	// ErrZoneGeometry marks a zone whose stored geometry violates its
	// invariants (radius <= 0, ring with fewer than 3 vertices).
	ErrZoneGeometry = errors.New("zone geometry is malformed")

	// ErrNotFound is returned when a requested record does not exist
	ErrNotFound = errors.New("record not found")
)
