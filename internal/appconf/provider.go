package appconf

import (
	"context"
	"sync"
	"time"

	"pitstop.roadtripper.org/internal/clock"
)

// ConfigCacheTTL is how long a fetched secret set stays fresh.
const ConfigCacheTTL = 5 * time.Minute

// FetchFunc retrieves the current secret set from its source.
type FetchFunc func(ctx context.Context) (Secrets, error)

// Provider caches a fetched secret set and refreshes it after the TTL
// expires. When a refresh fails, the stale value is served rather than
// failing the request. Safe for concurrent use.
type Provider struct {
	fetch FetchFunc
	clk   clock.Clock
	ttl   time.Duration

	mu        sync.Mutex
	cached    Secrets
	fetchedAt time.Time
	primed    bool
}

func NewProvider(fetch FetchFunc, clk clock.Clock, ttl time.Duration) *Provider {
	if ttl <= 0 {
		ttl = ConfigCacheTTL
	}
	return &Provider{fetch: fetch, clk: clk, ttl: ttl}
}

// StaticProvider wraps a fixed secret set, for tests and for deployments
// that only use environment variables.
func StaticProvider(s Secrets, clk clock.Clock) *Provider {
	return NewProvider(func(context.Context) (Secrets, error) {
		return s, nil
	}, clk, ConfigCacheTTL)
}

// Get returns the current secret set, refetching when the cached value has
// expired.
func (p *Provider) Get(ctx context.Context) (Secrets, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.clk.Now()
	if p.primed && now.Sub(p.fetchedAt) < p.ttl {
		return p.cached, nil
	}

	fresh, err := p.fetch(ctx)
	if err != nil {
		if p.primed {
			return p.cached, nil
		}
		return Secrets{}, err
	}

	p.cached = fresh
	p.fetchedAt = now
	p.primed = true
	return fresh, nil
}
