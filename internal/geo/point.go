package geo

import "math"

const earthRadiusKm = 6371.0

// Point is a geographic coordinate. Route points are produced by polyline
// decoding and are never mutated afterwards; the decoded sequence preserves
// route traversal order (start to end).
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// HaversineKm returns the great-circle distance between a and b in kilometers.
func HaversineKm(a, b Point) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Lat*math.Pi/180)*math.Cos(b.Lat*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// MinDistanceToPathKm returns the smallest haversine distance from p to any
// point in path, along with the index of the nearest point. Returns
// (+Inf, -1) for an empty path.
func MinDistanceToPathKm(p Point, path []Point) (float64, int) {
	minKm := math.Inf(1)
	nearest := -1
	for i, rp := range path {
		if d := HaversineKm(p, rp); d < minKm {
			minKm = d
			nearest = i
		}
	}
	return minKm, nearest
}
