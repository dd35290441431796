package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKmIdentity(t *testing.T) {
	points := []Point{
		{Lat: 0, Lng: 0},
		{Lat: 1.3521, Lng: 103.8198},
		{Lat: -33.8688, Lng: 151.2093},
		{Lat: 47.6062, Lng: -122.3321},
	}

	for _, p := range points {
		assert.Zero(t, HaversineKm(p, p))
	}
}

func TestHaversineKmSymmetry(t *testing.T) {
	a := Point{Lat: 1.3521, Lng: 103.8198}
	b := Point{Lat: 3.139, Lng: 101.6869}

	assert.Equal(t, HaversineKm(a, b), HaversineKm(b, a))
}

func TestHaversineKmKnownDistance(t *testing.T) {
	// Singapore to Kuala Lumpur is roughly 316 km.
	singapore := Point{Lat: 1.3521, Lng: 103.8198}
	kualaLumpur := Point{Lat: 3.139, Lng: 101.6869}

	d := HaversineKm(singapore, kualaLumpur)
	assert.InDelta(t, 316, d, 5)
}

func TestHaversineKmShortDistance(t *testing.T) {
	// Two points ~1.57km apart (0.01 degrees of latitude ~= 1.11km,
	// combined with 0.01 degrees of longitude near the equator).
	a := Point{Lat: 1.30, Lng: 103.80}
	b := Point{Lat: 1.31, Lng: 103.81}

	d := HaversineKm(a, b)
	assert.InDelta(t, 1.57, d, 0.05)
}

func TestMinDistanceToPathKm(t *testing.T) {
	path := []Point{
		{Lat: 1.30, Lng: 103.80},
		{Lat: 1.35, Lng: 103.85},
		{Lat: 1.40, Lng: 103.90},
	}

	tests := []struct {
		name        string
		p           Point
		wantNearest int
	}{
		{"closest to first", Point{Lat: 1.301, Lng: 103.801}, 0},
		{"closest to middle", Point{Lat: 1.351, Lng: 103.849}, 1},
		{"closest to last", Point{Lat: 1.41, Lng: 103.91}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, idx := MinDistanceToPathKm(tt.p, path)
			assert.Equal(t, tt.wantNearest, idx)
			assert.Less(t, d, 1.0)
		})
	}
}

func TestMinDistanceToPathKmEmptyPath(t *testing.T) {
	d, idx := MinDistanceToPathKm(Point{Lat: 1.3, Lng: 103.8}, nil)
	assert.True(t, math.IsInf(d, 1))
	assert.Equal(t, -1, idx)
}
