package restapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rateLimitedProbe(middleware *RateLimitMiddleware) http.Handler {
	return middleware.Handler()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestRateLimitAllowsWithinBudget(t *testing.T) {
	middleware := NewRateLimitMiddleware(3, time.Minute)
	defer middleware.Stop()
	handler := rateLimitedProbe(middleware)

	for i := 0; i < 3; i++ {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/search", nil))
		require.Equal(t, http.StatusOK, rr.Code, "request %d", i)
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/search", nil))
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("Retry-After"))
	assert.Contains(t, rr.Body.String(), "rate limit")
}

func TestRateLimitSeparatesClients(t *testing.T) {
	middleware := NewRateLimitMiddleware(1, time.Minute)
	defer middleware.Stop()
	handler := rateLimitedProbe(middleware)

	first := httptest.NewRequest(http.MethodGet, "/search", nil)
	first.Header.Set("Authorization", "Bearer token-a")
	second := httptest.NewRequest(http.MethodGet, "/search", nil)
	second.Header.Set("Authorization", "Bearer token-b")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, first)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, first)
	require.Equal(t, http.StatusTooManyRequests, rr.Code)

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, second)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRateLimitStopIdempotent(t *testing.T) {
	middleware := NewRateLimitMiddleware(10, time.Second)
	middleware.Stop()
	middleware.Stop()
}

func TestRestAPIShutdownIdempotent(t *testing.T) {
	api := createTestApi(testApiOptions{})
	api.Shutdown()
	api.Shutdown()
}
