package planner

import (
	"context"

	"pitstop.roadtripper.org/internal/geo"
	"pitstop.roadtripper.org/internal/models"
)

// SearchType labels which anchoring strategy produced the search location.
type SearchType string

const (
	SearchLocationBased            SearchType = "location-based"
	SearchLocationAndTimeBased     SearchType = "location-and-time-based"
	SearchLocationAndDistanceBased SearchType = "location-and-distance-based"
	SearchLocationTimeAndDistance  SearchType = "location-time-and-distance-based"
	SearchDistanceBased            SearchType = "distance-based"
	SearchTimeBased                SearchType = "time-based"
	SearchTimeAndDistanceBased     SearchType = "time-and-distance-based"
	SearchRouteMidpoint            SearchType = "route-midpoint"
)

// Anchor is the point a place search centers on, with the strategy that
// selected it. Computed fresh per request, never cached.
type Anchor struct {
	Point      geo.Point
	SearchType SearchType
}

// resolveFunc resolves a named location to its nearest route point. ok is
// false when the name is unknown or too far from the route corridor.
type resolveFunc func(ctx context.Context, name string) (point geo.Point, ok bool, err error)

// SelectAnchor applies the anchoring decision table, in precedence order:
//
//  1. A resolved named location wins outright; distance and timing present
//     alongside it are descriptive only (they refine the label, not the
//     point).
//  2. Without a location (or when resolution fails), a distance constraint
//     anchors via path walking.
//  3. Without a distance, a timing constraint anchors via the average-speed
//     conversion.
//  4. Otherwise the route midpoint.
//
// When both distance and timing are present without a location, distance
// drives the anchor. This is an explicit policy, not incidental branch
// order.
func SelectAnchor(ctx context.Context, c *models.Constraint, origin geo.Point, routePoints []geo.Point, resolve resolveFunc) (Anchor, error) {
	if c.HasLocation() {
		point, ok, err := resolve(ctx, *c.Location)
		if err != nil {
			return Anchor{}, err
		}
		if ok {
			return Anchor{Point: point, SearchType: locationSearchType(c)}, nil
		}
		// Unresolvable location: fall through as if absent.
	}

	switch {
	case c.HasDistance() && c.HasTiming():
		return Anchor{
			Point:      geo.LocateByDistance(origin, routePoints, *c.Distance),
			SearchType: SearchTimeAndDistanceBased,
		}, nil
	case c.HasDistance():
		return Anchor{
			Point:      geo.LocateByDistance(origin, routePoints, *c.Distance),
			SearchType: SearchDistanceBased,
		}, nil
	case c.HasTiming():
		return Anchor{
			Point:      geo.LocateByTime(origin, routePoints, *c.Timing, geo.AverageSpeedKmh),
			SearchType: SearchTimeBased,
		}, nil
	default:
		return Anchor{
			Point:      geo.Midpoint(origin, routePoints),
			SearchType: SearchRouteMidpoint,
		}, nil
	}
}

func locationSearchType(c *models.Constraint) SearchType {
	switch {
	case c.HasTiming() && c.HasDistance():
		return SearchLocationTimeAndDistance
	case c.HasTiming():
		return SearchLocationAndTimeBased
	case c.HasDistance():
		return SearchLocationAndDistanceBased
	default:
		return SearchLocationBased
	}
}
