package planner

import (
	"math"
	"sort"

	"pitstop.roadtripper.org/internal/geo"
)

// RankingWeights defines how much each component contributes to a
// candidate's composite score. Two named variants exist; callers select a
// strategy instead of re-deriving weights inline.
type RankingWeights struct {
	Distance    float64
	Rating      float64
	ReviewCount float64
	Sentiment   float64
}

// StandardWeights ranks on distance, rating and review count only.
var StandardWeights = RankingWeights{Distance: 0.4, Rating: 0.4, ReviewCount: 0.2}

// SentimentWeights shifts weight toward review sentiment when summarization
// has run.
var SentimentWeights = RankingWeights{Distance: 0.3, Rating: 0.3, ReviewCount: 0.15, Sentiment: 0.25}

// RankingBreakdown records the component scores (each 0-100) behind a
// candidate's composite, for client display and debugging.
type RankingBreakdown struct {
	TotalScore       float64 `json:"totalScore"`
	DistanceScore    float64 `json:"distanceScore"`
	RatingScore      float64 `json:"ratingScore"`
	ReviewCountScore float64 `json:"reviewCountScore"`
	SentimentScore   float64 `json:"sentimentScore,omitempty"`
	DistanceKm       float64 `json:"distance"`
}

// neutralSentiment is used when no review summary is available.
const neutralSentiment = 50.0

// scoreCandidate computes the composite score for a place at distanceKm
// from the search location. sentiment is a 0-100 value, or nil when review
// summarization did not run.
func scoreCandidate(distanceKm, rating float64, reviewCount int, sentiment *float64, w RankingWeights) RankingBreakdown {
	distanceScore := math.Max(0, 100-distanceKm*10)

	ratingScore := 0.0
	if rating > 0 {
		ratingScore = rating / 5 * 100
	}

	reviewCountScore := math.Min(100, float64(reviewCount))

	sentimentScore := neutralSentiment
	if sentiment != nil {
		sentimentScore = *sentiment
	}

	total := distanceScore*w.Distance +
		ratingScore*w.Rating +
		reviewCountScore*w.ReviewCount +
		sentimentScore*w.Sentiment

	return RankingBreakdown{
		TotalScore:       round2(total),
		DistanceScore:    round2(distanceScore),
		RatingScore:      round2(ratingScore),
		ReviewCountScore: round2(reviewCountScore),
		SentimentScore:   round2(sentimentScore),
		DistanceKm:       round2(distanceKm),
	}
}

// RankByComposite scores every candidate against the search location and
// sorts descending by composite score; ties break toward the smaller raw
// distance.
func RankByComposite(candidates []*Candidate, searchLocation geo.Point, w RankingWeights) {
	for _, c := range candidates {
		distanceKm := geo.HaversineKm(searchLocation, c.Geometry.Location.Point())
		breakdown := scoreCandidate(distanceKm, c.Rating, c.UserRatingsTotal, c.SentimentScore, w)
		c.Ranking = &breakdown
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i].Ranking, candidates[j].Ranking
		if a.TotalScore != b.TotalScore {
			return a.TotalScore > b.TotalScore
		}
		return a.DistanceKm < b.DistanceKm
	})
}

// SortByRouteProximity orders suitable candidates first, then by ascending
// distance from the route. This is the simpler ranking used for the
// search-along-route flow; it is deliberately distinct from the composite
// score.
func SortByRouteProximity(candidates []*Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Suitable != b.Suitable {
			return a.Suitable
		}
		return a.DistanceFromRouteKm < b.DistanceFromRouteKm
	})
}

// SortByFeatureMatch orders candidates by descending feature-match score,
// breaking ties by route proximity. Applied after enrichment when the
// constraint requested features.
func SortByFeatureMatch(candidates []*Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.FeatureMatchScore != b.FeatureMatchScore {
			return a.FeatureMatchScore > b.FeatureMatchScore
		}
		return a.DistanceFromRouteKm < b.DistanceFromRouteKm
	})
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
