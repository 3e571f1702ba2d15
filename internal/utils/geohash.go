package utils

import (
	"github.com/mmcloughlin/geohash"

	"github.com/pratama/zonewatch/internal/geo"
)

// DefaultGeohashPrecision yields cells of roughly 150m, a useful grouping
// granularity for presence reporting
const DefaultGeohashPrecision = 7

// EncodePoint converts a point to a geohash string
func EncodePoint(p geo.Point, precision uint) string {
	return geohash.EncodeWithPrecision(p.Latitude, p.Longitude, precision)
}
