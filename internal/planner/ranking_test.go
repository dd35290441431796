package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pitstop.roadtripper.org/internal/geo"
	"pitstop.roadtripper.org/internal/maps"
)

func TestScoreCandidateStandard(t *testing.T) {
	// 2 km away, 4.0 stars, 50 reviews:
	// distance 80*0.4 + rating 80*0.4 + reviews 50*0.2 = 74.
	got := scoreCandidate(2, 4.0, 50, nil, StandardWeights)
	assert.Equal(t, 74.0, got.TotalScore)
	assert.Equal(t, 80.0, got.DistanceScore)
	assert.Equal(t, 80.0, got.RatingScore)
	assert.Equal(t, 50.0, got.ReviewCountScore)
	assert.Equal(t, 2.0, got.DistanceKm)
}

func TestScoreCandidateClamps(t *testing.T) {
	// Beyond 10 km the distance component bottoms out; review counts cap
	// at 100.
	got := scoreCandidate(25, 5.0, 4000, nil, StandardWeights)
	assert.Equal(t, 0.0, got.DistanceScore)
	assert.Equal(t, 100.0, got.ReviewCountScore)

	zero := scoreCandidate(1, 0, 0, nil, StandardWeights)
	assert.Equal(t, 0.0, zero.RatingScore)
}

func TestScoreCandidateSentiment(t *testing.T) {
	positive := 90.0
	withSentiment := scoreCandidate(2, 4.0, 50, &positive, SentimentWeights)
	withoutSentiment := scoreCandidate(2, 4.0, 50, nil, SentimentWeights)

	// 80*0.3 + 80*0.3 + 50*0.15 + 90*0.25 = 78.
	assert.Equal(t, 78.0, withSentiment.TotalScore)
	assert.Equal(t, 90.0, withSentiment.SentimentScore)

	// Missing sentiment is neutral, not zero.
	assert.Equal(t, neutralSentiment, withoutSentiment.SentimentScore)
	assert.Greater(t, withSentiment.TotalScore, withoutSentiment.TotalScore)
}

func rankedCandidate(name string, p geo.Point, rating float64, reviews int, sentiment *float64) *Candidate {
	return &Candidate{
		Place: maps.Place{
			Name:             name,
			Geometry:         maps.Geometry{Location: maps.LatLng{Lat: p.Lat, Lng: p.Lng}},
			Rating:           rating,
			UserRatingsTotal: reviews,
		},
		SentimentScore: sentiment,
	}
}

func TestRankByCompositeOrdersByTotal(t *testing.T) {
	center := geo.Point{Lat: 1.35, Lng: 103.82}
	glowing := 95.0
	scathing := 5.0
	loved := rankedCandidate("Loved", geo.Point{Lat: 1.351, Lng: 103.821}, 4.5, 200, &glowing)
	panned := rankedCandidate("Panned", geo.Point{Lat: 1.351, Lng: 103.821}, 4.5, 200, &scathing)

	candidates := []*Candidate{panned, loved}
	RankByComposite(candidates, center, SentimentWeights)

	assert.Equal(t, "Loved", candidates[0].Name)
	require.NotNil(t, candidates[0].Ranking)
	require.NotNil(t, candidates[1].Ranking)
	assert.Greater(t, candidates[0].Ranking.TotalScore, candidates[1].Ranking.TotalScore)
}

func TestSortByRouteProximitySuitableFirst(t *testing.T) {
	suitableFar := &Candidate{Suitable: true, DistanceFromRouteKm: 1.9}
	suitableNear := &Candidate{Suitable: true, DistanceFromRouteKm: 0.3}
	unsuitableNear := &Candidate{Suitable: false, DistanceFromRouteKm: 2.5}

	candidates := []*Candidate{unsuitableNear, suitableFar, suitableNear}
	SortByRouteProximity(candidates)

	assert.Equal(t, 0.3, candidates[0].DistanceFromRouteKm)
	assert.Equal(t, 1.9, candidates[1].DistanceFromRouteKm)
	assert.False(t, candidates[2].Suitable)
}

func TestSortByFeatureMatchScoreThenProximity(t *testing.T) {
	high := &Candidate{FeatureMatchScore: 3, DistanceFromRouteKm: 4}
	lowNear := &Candidate{FeatureMatchScore: 1, DistanceFromRouteKm: 0.5}
	lowFar := &Candidate{FeatureMatchScore: 1, DistanceFromRouteKm: 3}

	candidates := []*Candidate{lowFar, high, lowNear}
	SortByFeatureMatch(candidates)

	assert.Equal(t, high, candidates[0])
	assert.Equal(t, lowNear, candidates[1])
	assert.Equal(t, lowFar, candidates[2])
}
