package restapi

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"pitstop.roadtripper.org/internal/models"
)

// clientLimiterIdleTTL is how long an unused per-client limiter survives
// before the cleanup loop drops it.
const clientLimiterIdleTTL = 3 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware enforces a per-client request rate, keyed by the
// Authorization header (falling back to the remote address). A background
// loop evicts idle clients; Stop shuts it down.
type RateLimitMiddleware struct {
	limit  rate.Limit
	burst  int
	window time.Duration

	mu      sync.Mutex
	clients map[string]*clientLimiter

	stopOnce sync.Once
	done     chan struct{}
	clock    func() time.Time
}

// NewRateLimitMiddleware allows n requests per window per client.
func NewRateLimitMiddleware(n int, window time.Duration) *RateLimitMiddleware {
	if n <= 0 {
		n = 1
	}
	if window <= 0 {
		window = time.Second
	}
	m := &RateLimitMiddleware{
		limit:   rate.Every(window / time.Duration(n)),
		burst:   n,
		window:  window,
		clients: make(map[string]*clientLimiter),
		done:    make(chan struct{}),
		clock:   time.Now,
	}
	go m.cleanupLoop()
	return m
}

// Handler returns the middleware function to wrap routes with.
func (m *RateLimitMiddleware) Handler() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !m.allow(clientKey(r)) {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", "1")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(models.ResponseModel{
					Code:        http.StatusTooManyRequests,
					CurrentTime: m.clock().UnixMilli(),
					Text:        "rate limit exceeded",
					Version:     2,
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Stop terminates the cleanup loop. Safe to call more than once.
func (m *RateLimitMiddleware) Stop() {
	m.stopOnce.Do(func() {
		close(m.done)
	})
}

func (m *RateLimitMiddleware) allow(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.clients[key]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(m.limit, m.burst)}
		m.clients[key] = c
	}
	c.lastSeen = m.clock()
	return c.limiter.Allow()
}

func (m *RateLimitMiddleware) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.evictIdle()
		}
	}
}

func (m *RateLimitMiddleware) evictIdle() {
	m.mu.Lock()
	defer m.mu.Unlock()
	cutoff := m.clock().Add(-clientLimiterIdleTTL)
	for key, c := range m.clients {
		if c.lastSeen.Before(cutoff) {
			delete(m.clients, key)
		}
	}
}

func clientKey(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); auth != "" {
		return auth
	}
	return r.RemoteAddr
}
