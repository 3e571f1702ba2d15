package geo

// Geometry is the containment test shared by circle and polygon zones.
//
// BoundaryDistance returns the distance in meters from the point to the
// geometry's outer boundary: positive when the point is outside, negative
// when inside. It is the input to exit hysteresis.
type Geometry interface {
	Contains(p Point) bool
	BoundaryDistance(p Point) float64
}

// Circle is a center point with a radius in meters
type Circle struct {
	Center       Point
	RadiusMeters float64
}

// Contains reports whether the point lies within the circle, boundary
// inclusive.
func (c Circle) Contains(p Point) bool {
	return DistanceBetween(p, c.Center) <= c.RadiusMeters
}

// BoundaryDistance returns distance from the circle boundary in meters
func (c Circle) BoundaryDistance(p Point) float64 {
	return DistanceBetween(p, c.Center) - c.RadiusMeters
}

// Polygon is an ordered vertex ring. The ring is implicitly closed; the
// last vertex does not need to repeat the first.
type Polygon struct {
	Ring []Point
}

// Contains performs even-odd ray casting over the vertex ring, casting a
// ray toward increasing longitude. Edges are half-open in latitude and the
// crossing comparison is strict in longitude, so boundary points resolve
// deterministically: points on the south or west boundary are inside,
// points on the north or east boundary are outside.
func (pg Polygon) Contains(p Point) bool {
	n := len(pg.Ring)
	if n < 3 {
		return false
	}

	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		vi, vj := pg.Ring[i], pg.Ring[j]
		if (vi.Latitude > p.Latitude) != (vj.Latitude > p.Latitude) {
			crossLon := (vj.Longitude-vi.Longitude)*(p.Latitude-vi.Latitude)/(vj.Latitude-vi.Latitude) + vi.Longitude
			if p.Longitude < crossLon {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// BoundaryDistance approximates the polygon boundary by its minimal
// containing circle (centroid center, max vertex distance radius). Exit
// hysteresis on polygon zones therefore has reduced precision: the buffer
// is measured against the containing circle, not the true edge.
func (pg Polygon) BoundaryDistance(p Point) float64 {
	return pg.containingCircle().BoundaryDistance(p)
}

func (pg Polygon) containingCircle() Circle {
	n := len(pg.Ring)
	if n == 0 {
		return Circle{}
	}

	var sumLat, sumLon float64
	for _, v := range pg.Ring {
		sumLat += v.Latitude
		sumLon += v.Longitude
	}
	center := Point{Latitude: sumLat / float64(n), Longitude: sumLon / float64(n)}

	var radius float64
	for _, v := range pg.Ring {
		if d := DistanceBetween(center, v); d > radius {
			radius = d
		}
	}
	return Circle{Center: center, RadiusMeters: radius}
}
