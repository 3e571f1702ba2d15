package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/pratama/zonewatch/internal/geo"
)

// GeometryKind discriminates zone geometry variants in storage
type GeometryKind string

const (
	GeometryCircle  GeometryKind = "circle"
	GeometryPolygon GeometryKind = "polygon"
)

// GeofenceZone represents a named geographic boundary with notification
// configuration. Zones are written by the administration surface and are
// read-only to the evaluation engine.
type GeofenceZone struct {
	ID                       uuid.UUID    `db:"id" json:"id"`
	Tenant                   string       `db:"tenant" json:"tenant"`
	Name                     string       `db:"name" json:"name"`
	GeometryKind             GeometryKind `db:"geometry_kind" json:"geometry_kind"`
	CenterLatitude           float64      `db:"center_latitude" json:"center_latitude,omitempty"`
	CenterLongitude          float64      `db:"center_longitude" json:"center_longitude,omitempty"`
	RadiusMeters             float64      `db:"radius_meters" json:"radius_meters,omitempty"`
	PolygonRing              PolygonRing  `db:"polygon_ring" json:"polygon_ring,omitempty"`
	IsActive                 bool         `db:"is_active" json:"is_active"`
	HysteresisBufferMeters   float64      `db:"hysteresis_buffer_meters" json:"hysteresis_buffer_meters"`
	SuppressionWindowSeconds int          `db:"suppression_window_seconds" json:"suppression_window_seconds"`
	NotificationTemplate     string       `db:"notification_template" json:"notification_template"`
	CreatedAt                time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt                time.Time    `db:"updated_at" json:"updated_at"`
}

// Geometry builds the containment geometry for this zone.
func (z *GeofenceZone) Geometry() geo.Geometry {
	if z.GeometryKind == GeometryPolygon {
		ring := make([]geo.Point, len(z.PolygonRing))
		for i, v := range z.PolygonRing {
			ring[i] = geo.Point{Latitude: v[0], Longitude: v[1]}
		}
		return geo.Polygon{Ring: ring}
	}
	return geo.Circle{
		Center:       geo.Point{Latitude: z.CenterLatitude, Longitude: z.CenterLongitude},
		RadiusMeters: z.RadiusMeters,
	}
}

// PolygonRing is an ordered vertex ring stored as JSONB, each vertex a
// [latitude, longitude] pair.
type PolygonRing [][2]float64

// Value implements driver.Valuer for JSONB storage
func (r PolygonRing) Value() (interface{}, error) {
	if r == nil {
		return nil, nil
	}
	return json.Marshal(r)
}

// Scan implements sql.Scanner for JSONB retrieval
func (r *PolygonRing) Scan(src interface{}) error {
	if src == nil {
		*r = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	}
	return nil
}
