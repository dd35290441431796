package planner

import (
	"context"
	"math"

	"pitstop.roadtripper.org/internal/geo"
)

const (
	// NamedLocationCorridorKm is how far a named location may sit from the
	// route and still be treated as "on the way".
	NamedLocationCorridorKm = 50.0

	// namedLocationCandidates caps how many geocoding results are checked
	// against the corridor before giving up on a name.
	namedLocationCandidates = 5
)

// ResolveNamedLocation geocodes a place name and, when any of the top
// results falls within the route corridor, returns the ROUTE point nearest
// to that result. Anchoring on the route point rather than the named place
// itself keeps subsequent searches centered on the traveled path.
//
// ok is false when the name resolves to nothing, or when every result is
// farther than NamedLocationCorridorKm from the route.
func ResolveNamedLocation(ctx context.Context, searcher PlaceSearcher, name string, routePoints []geo.Point) (geo.Point, bool, error) {
	if len(routePoints) == 0 {
		return geo.Point{}, false, nil
	}

	places, err := searcher.TextSearch(ctx, name, nil)
	if err != nil {
		return geo.Point{}, false, err
	}
	if len(places) > namedLocationCandidates {
		places = places[:namedLocationCandidates]
	}

	best := geo.Point{}
	bestDist := math.Inf(1)
	found := false
	for _, p := range places {
		candidate := p.Geometry.Location.Point()
		dist, idx := geo.MinDistanceToPathKm(candidate, routePoints)
		if idx < 0 || dist > NamedLocationCorridorKm {
			continue
		}
		if dist < bestDist {
			bestDist = dist
			best = routePoints[idx]
			found = true
		}
	}
	return best, found, nil
}
