package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pitstop.roadtripper.org/internal/geo"
)

func TestNewCandidateDerivedFields(t *testing.T) {
	place := placeAt("p", "On Route", testRoute[1], 4.0, 10)
	c := newCandidate(place, testOrigin, testRoute)

	assert.InDelta(t, 0, c.DistanceFromRouteKm, 1e-9, "sits exactly on a route point")
	assert.True(t, c.Suitable)
	assert.InDelta(t, geo.HaversineKm(testOrigin, testRoute[1]), c.DistanceFromOriginKm, 1e-9)
	assert.NotEmpty(t, c.TimeDisplayFromOrigin)
}

func TestNewCandidateUnsuitableBeyondCorridor(t *testing.T) {
	off := placeAt("p", "Off Route", geo.Point{Lat: 22.60, Lng: 88.00}, 4.0, 10)
	c := newCandidate(off, testOrigin, testRoute)
	assert.False(t, c.Suitable)
	assert.Greater(t, c.DistanceFromRouteKm, SuitableCorridorKm)
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h"},
		{65, "1h 5m"},
		{120, "2h"},
		{135, "2h 15m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatMinutes(tt.minutes))
	}
}
