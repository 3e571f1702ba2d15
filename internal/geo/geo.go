package geo

import (
	"math"
)

// EarthRadiusMeters is the mean earth radius used by the haversine formula
const EarthRadiusMeters = 6371000.0

// Point represents a geographical point with latitude and longitude
type Point struct {
	Latitude  float64
	Longitude float64
}

// Distance calculates the great-circle distance between two points in meters
// using the Haversine formula
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// DistanceBetween calculates the distance between two points in meters
func DistanceBetween(p1, p2 Point) float64 {
	return Distance(p1.Latitude, p1.Longitude, p2.Latitude, p2.Longitude)
}

// ValidCoordinate reports whether a latitude/longitude pair is in range
func ValidCoordinate(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
