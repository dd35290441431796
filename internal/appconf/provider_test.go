package appconf

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pitstop.roadtripper.org/internal/clock"
)

func TestProviderCachesWithinTTL(t *testing.T) {
	clk := clock.NewFixedClock(time.Unix(1_700_000_000, 0))
	calls := 0
	p := NewProvider(func(context.Context) (Secrets, error) {
		calls++
		return Secrets{JWTSecret: "v1"}, nil
	}, clk, ConfigCacheTTL)

	first, err := p.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v1", first.JWTSecret)

	clk.Advance(ConfigCacheTTL - time.Second)
	_, err = p.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "fresh value must not refetch")
}

func TestProviderRefreshesAfterTTL(t *testing.T) {
	clk := clock.NewFixedClock(time.Unix(1_700_000_000, 0))
	calls := 0
	p := NewProvider(func(context.Context) (Secrets, error) {
		calls++
		if calls > 1 {
			return Secrets{JWTSecret: "v2"}, nil
		}
		return Secrets{JWTSecret: "v1"}, nil
	}, clk, ConfigCacheTTL)

	_, err := p.Get(context.Background())
	require.NoError(t, err)

	clk.Advance(ConfigCacheTTL + time.Second)
	refreshed, err := p.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v2", refreshed.JWTSecret)
	assert.Equal(t, 2, calls)
}

func TestProviderServesStaleOnRefreshFailure(t *testing.T) {
	clk := clock.NewFixedClock(time.Unix(1_700_000_000, 0))
	calls := 0
	p := NewProvider(func(context.Context) (Secrets, error) {
		calls++
		if calls > 1 {
			return Secrets{}, errors.New("config store down")
		}
		return Secrets{JWTSecret: "v1"}, nil
	}, clk, ConfigCacheTTL)

	_, err := p.Get(context.Background())
	require.NoError(t, err)

	clk.Advance(ConfigCacheTTL + time.Second)
	stale, err := p.Get(context.Background())
	require.NoError(t, err, "stale value beats an error")
	assert.Equal(t, "v1", stale.JWTSecret)
}

func TestProviderErrorsWhenNeverPrimed(t *testing.T) {
	clk := clock.NewFixedClock(time.Unix(1_700_000_000, 0))
	p := NewProvider(func(context.Context) (Secrets, error) {
		return Secrets{}, errors.New("config store down")
	}, clk, ConfigCacheTTL)

	_, err := p.Get(context.Background())
	assert.Error(t, err)
}

func TestStaticProvider(t *testing.T) {
	clk := clock.NewFixedClock(time.Unix(1_700_000_000, 0))
	p := StaticProvider(Secrets{AdminUsername: "admin"}, clk)

	got, err := p.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "admin", got.AdminUsername)
}
