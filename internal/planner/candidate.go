package planner

import (
	"fmt"

	"pitstop.roadtripper.org/internal/geo"
	"pitstop.roadtripper.org/internal/maps"
)

// Candidate is a place record enriched with route-relative fields. Provider
// fields are never altered; enrichment only attaches derived data.
type Candidate struct {
	maps.Place

	DistanceFromRouteKm        float64 `json:"distanceFromRoute"`
	DistanceFromOriginKm       float64 `json:"distanceFromOrigin"`
	EstimatedTimeFromOriginMin int     `json:"estimatedTimeFromOrigin"`
	TimeDisplayFromOrigin      string  `json:"timeDisplayFromOrigin"`
	Suitable                   bool    `json:"suitable"`

	// Attached during detail enrichment.
	Website              string         `json:"website,omitempty"`
	FormattedPhoneNumber string         `json:"formatted_phone_number,omitempty"`
	Reviews              []maps.Review  `json:"reviews,omitempty"`
	DistanceFromStartKm  float64        `json:"distanceFromStart,omitempty"`
	TimeFromStart        string         `json:"timeFromStart,omitempty"`
	FeatureMatchScore    float64        `json:"featureMatchScore,omitempty"`
	MatchedFeatures      []string       `json:"matchedFeatures,omitempty"`
	OverviewReview       string         `json:"overviewReview,omitempty"`
	SentimentScore       *float64       `json:"sentimentScore,omitempty"`

	Ranking *RankingBreakdown `json:"_ranking,omitempty"`
}

// newCandidate derives the route-relative fields for a place. Estimated
// travel time is formatted at the display speed, which intentionally
// differs from the anchoring speed.
func newCandidate(place maps.Place, origin geo.Point, routePoints []geo.Point) *Candidate {
	location := place.Geometry.Location.Point()
	fromRoute, _ := geo.MinDistanceToPathKm(location, routePoints)
	fromOrigin := geo.HaversineKm(origin, location)
	minutes := int(fromOrigin/geo.DisplaySpeedKmh*60 + 0.5)

	return &Candidate{
		Place:                      place,
		DistanceFromRouteKm:        fromRoute,
		DistanceFromOriginKm:       fromOrigin,
		EstimatedTimeFromOriginMin: minutes,
		TimeDisplayFromOrigin:      formatMinutes(minutes),
		Suitable:                   fromRoute < SuitableCorridorKm,
	}
}

func formatMinutes(totalMinutes int) string {
	hours := totalMinutes / 60
	minutes := totalMinutes % 60
	switch {
	case hours > 0 && minutes > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}
