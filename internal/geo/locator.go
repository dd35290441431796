package geo

// AverageSpeedKmh converts time constraints ("after 2hrs") into distances
// along the route. It is a deliberately coarse highway-speed assumption, not
// measured from real route durations. Tunable, pending domain validation.
const AverageSpeedKmh = 70.0

// DisplaySpeedKmh is used only when formatting estimated travel times for
// candidate stops. Kept separate from AverageSpeedKmh because the two serve
// different purposes and were tuned independently.
const DisplaySpeedKmh = 50.0

// LocateByDistance walks the logical path origin -> points[0] -> points[1]
// -> ... accumulating segment lengths, and returns the interpolated point at
// targetKm from the origin. The origin -> points[0] segment counts like any
// other: constraints are "from start", and start is the navigation origin,
// not the first decoded point.
//
// If targetKm exceeds the total path length the last route point is returned
// (overshoot clamps to the destination-ward end). An empty sequence returns
// the origin.
func LocateByDistance(origin Point, points []Point, targetKm float64) Point {
	if len(points) == 0 || targetKm <= 0 {
		return origin
	}

	accumulated := 0.0
	prev := origin
	for _, curr := range points {
		segment := HaversineKm(prev, curr)
		if segment > 0 && accumulated+segment >= targetKm {
			ratio := (targetKm - accumulated) / segment
			return interpolate(prev, curr, ratio)
		}
		accumulated += segment
		prev = curr
	}

	// Route shorter than the requested distance.
	return points[len(points)-1]
}

// LocateByTime converts hours of travel at the given average speed into a
// distance and delegates to LocateByDistance.
func LocateByTime(origin Point, points []Point, hours, averageSpeedKmh float64) Point {
	return LocateByDistance(origin, points, hours*averageSpeedKmh)
}

// Midpoint returns the middle element of the decoded sequence, or the origin
// when the sequence is empty. Used as the search anchor when no constraint
// narrows the search.
func Midpoint(origin Point, points []Point) Point {
	if len(points) == 0 {
		return origin
	}
	return points[len(points)/2]
}

// TotalPathLengthKm returns the accumulated length of origin -> points[0]
// -> ... -> points[n-1].
func TotalPathLengthKm(origin Point, points []Point) float64 {
	total := 0.0
	prev := origin
	for _, curr := range points {
		total += HaversineKm(prev, curr)
		prev = curr
	}
	return total
}

// Linear interpolation on coordinates is an accepted approximation at
// corridor scale; it is not geodesic-exact.
func interpolate(a, b Point, ratio float64) Point {
	return Point{
		Lat: a.Lat + (b.Lat-a.Lat)*ratio,
		Lng: a.Lng + (b.Lng-a.Lng)*ratio,
	}
}
