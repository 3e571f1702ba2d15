package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance_ZeroForSamePoint(t *testing.T) {
	points := []Point{
		{Latitude: 0, Longitude: 0},
		{Latitude: 37.7749, Longitude: -122.4194},
		{Latitude: -6.175392, Longitude: 106.827153},
		{Latitude: 89.9, Longitude: 179.9},
	}

	for _, p := range points {
		assert.Zero(t, Distance(p.Latitude, p.Longitude, p.Latitude, p.Longitude))
	}
}

func TestDistance_Symmetric(t *testing.T) {
	a := Point{Latitude: 37.7749, Longitude: -122.4194}
	b := Point{Latitude: 34.0522, Longitude: -118.2437}

	d1 := DistanceBetween(a, b)
	d2 := DistanceBetween(b, a)

	assert.Greater(t, d1, 0.0)
	assert.InEpsilon(t, d1, d2, 1e-6)
}

func TestDistance_KnownValue(t *testing.T) {
	// San Francisco to Los Angeles, roughly 559 km great-circle
	d := Distance(37.7749, -122.4194, 34.0522, -118.2437)
	assert.InDelta(t, 559000, d, 5000)
}

func TestDistance_ShortRange(t *testing.T) {
	// One degree of latitude is ~111.19 km
	d := Distance(0, 0, 1, 0)
	assert.InDelta(t, 111195, d, 100)
}

func TestCircle_ContainsCenter(t *testing.T) {
	c := Circle{Center: Point{Latitude: 37.7749, Longitude: -122.4194}, RadiusMeters: 100}
	assert.True(t, c.Contains(c.Center))
}

func TestCircle_Contains(t *testing.T) {
	c := Circle{Center: Point{Latitude: 0, Longitude: 0}, RadiusMeters: 150}

	// ~111 m east of the center
	assert.True(t, c.Contains(Point{Latitude: 0, Longitude: 0.001}))
	// ~222 m east of the center
	assert.False(t, c.Contains(Point{Latitude: 0, Longitude: 0.002}))
}

func TestCircle_BoundaryDistance(t *testing.T) {
	c := Circle{Center: Point{Latitude: 0, Longitude: 0}, RadiusMeters: 100}

	inside := c.BoundaryDistance(c.Center)
	assert.InDelta(t, -100, inside, 1e-9)

	outside := c.BoundaryDistance(Point{Latitude: 0, Longitude: 0.002})
	assert.Greater(t, outside, 0.0)
}

func TestPolygon_Contains(t *testing.T) {
	// Unit square around the origin
	square := Polygon{Ring: []Point{
		{Latitude: -1, Longitude: -1},
		{Latitude: -1, Longitude: 1},
		{Latitude: 1, Longitude: 1},
		{Latitude: 1, Longitude: -1},
	}}

	assert.True(t, square.Contains(Point{Latitude: 0, Longitude: 0}))
	assert.True(t, square.Contains(Point{Latitude: 0.99, Longitude: -0.99}))
	assert.False(t, square.Contains(Point{Latitude: 2, Longitude: 0}))
	assert.False(t, square.Contains(Point{Latitude: 0, Longitude: -2}))
	assert.False(t, square.Contains(Point{Latitude: -3, Longitude: -3}))
}

func TestPolygon_Contains_Concave(t *testing.T) {
	// U-shape: notch cut into the top edge
	u := Polygon{Ring: []Point{
		{Latitude: 0, Longitude: 0},
		{Latitude: 0, Longitude: 3},
		{Latitude: 3, Longitude: 3},
		{Latitude: 3, Longitude: 2},
		{Latitude: 1, Longitude: 2},
		{Latitude: 1, Longitude: 1},
		{Latitude: 3, Longitude: 1},
		{Latitude: 3, Longitude: 0},
	}}

	assert.True(t, u.Contains(Point{Latitude: 0.5, Longitude: 1.5}))
	// Inside the notch, outside the polygon
	assert.False(t, u.Contains(Point{Latitude: 2, Longitude: 1.5}))
	assert.True(t, u.Contains(Point{Latitude: 2, Longitude: 0.5}))
	assert.True(t, u.Contains(Point{Latitude: 2, Longitude: 2.5}))
}

func TestPolygon_Contains_EdgeTieBreak(t *testing.T) {
	square := Polygon{Ring: []Point{
		{Latitude: 0, Longitude: 0},
		{Latitude: 0, Longitude: 1},
		{Latitude: 1, Longitude: 1},
		{Latitude: 1, Longitude: 0},
	}}

	// South and west boundaries are inside under the half-open rule
	assert.True(t, square.Contains(Point{Latitude: 0, Longitude: 0.5}))
	assert.True(t, square.Contains(Point{Latitude: 0.5, Longitude: 0}))
	// North and east boundaries are outside
	assert.False(t, square.Contains(Point{Latitude: 1, Longitude: 0.5}))
	assert.False(t, square.Contains(Point{Latitude: 0.5, Longitude: 1}))
}

func TestPolygon_Contains_DegenerateRing(t *testing.T) {
	line := Polygon{Ring: []Point{{Latitude: 0, Longitude: 0}, {Latitude: 1, Longitude: 1}}}
	assert.False(t, line.Contains(Point{Latitude: 0.5, Longitude: 0.5}))
}

func TestPolygon_BoundaryDistance(t *testing.T) {
	square := Polygon{Ring: []Point{
		{Latitude: -0.001, Longitude: -0.001},
		{Latitude: -0.001, Longitude: 0.001},
		{Latitude: 0.001, Longitude: 0.001},
		{Latitude: 0.001, Longitude: -0.001},
	}}

	// Centroid is inside the containing circle
	assert.Less(t, square.BoundaryDistance(Point{Latitude: 0, Longitude: 0}), 0.0)
	// A point far away is well outside
	assert.Greater(t, square.BoundaryDistance(Point{Latitude: 1, Longitude: 1}), 0.0)
}

func TestValidCoordinate(t *testing.T) {
	assert.True(t, ValidCoordinate(0, 0))
	assert.True(t, ValidCoordinate(-90, 180))
	assert.True(t, ValidCoordinate(90, -180))
	assert.False(t, ValidCoordinate(90.1, 0))
	assert.False(t, ValidCoordinate(0, -180.1))
	assert.False(t, ValidCoordinate(math.NaN(), 0))
}
