package planner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pitstop.roadtripper.org/internal/geo"
	"pitstop.roadtripper.org/internal/maps"
)

func TestResolveNamedLocationReturnsRoutePoint(t *testing.T) {
	// Geocoded town sits just off the second route point; the resolver
	// must hand back the route point, not the town.
	town := geo.Point{Lat: 22.405, Lng: 88.005}
	searcher := &fakeSearcher{
		textResults: map[string][]maps.Place{
			"Kolaghat": {placeAt("t", "Kolaghat", town, 0, 0)},
		},
	}

	got, ok, err := ResolveNamedLocation(context.Background(), searcher, "Kolaghat", testRoute)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, testRoute[1], got)
}

func TestResolveNamedLocationOutsideCorridor(t *testing.T) {
	// ~550 km off the route.
	faraway := geo.Point{Lat: 27.0, Lng: 85.0}
	searcher := &fakeSearcher{
		textResults: map[string][]maps.Place{
			"Kathmandu": {placeAt("k", "Kathmandu", faraway, 0, 0)},
		},
	}

	_, ok, err := ResolveNamedLocation(context.Background(), searcher, "Kathmandu", testRoute)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResolveNamedLocationNoResults(t *testing.T) {
	_, ok, err := ResolveNamedLocation(context.Background(), &fakeSearcher{}, "Atlantis", testRoute)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResolveNamedLocationEmptyRoute(t *testing.T) {
	searcher := &fakeSearcher{
		textResults: map[string][]maps.Place{
			"Kolaghat": {placeAt("t", "Kolaghat", geo.Point{Lat: 22.4, Lng: 88.0}, 0, 0)},
		},
	}
	_, ok, err := ResolveNamedLocation(context.Background(), searcher, "Kolaghat", nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResolveNamedLocationPicksNearestOfSeveral(t *testing.T) {
	near := geo.Point{Lat: 22.44, Lng: 87.86}   // by the last route point
	farther := geo.Point{Lat: 22.30, Lng: 88.25} // within corridor but worse
	searcher := &fakeSearcher{
		textResults: map[string][]maps.Place{
			"Ambiguous": {
				placeAt("a", "Ambiguous Town", farther, 0, 0),
				placeAt("b", "Ambiguous Village", near, 0, 0),
			},
		},
	}

	got, ok, err := ResolveNamedLocation(context.Background(), searcher, "Ambiguous", testRoute)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, testRoute[3], got)
}
