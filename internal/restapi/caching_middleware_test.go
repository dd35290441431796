package restapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheControlMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	t.Run("zero max-age disables caching", func(t *testing.T) {
		rr := httptest.NewRecorder()
		CacheControlMiddleware(0, next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/search", nil))
		assert.Equal(t, "no-cache, no-store, must-revalidate", rr.Header().Get("Cache-Control"))
	})

	t.Run("positive max-age allows caching", func(t *testing.T) {
		rr := httptest.NewRecorder()
		CacheControlMiddleware(300, next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/assets/app.js", nil))
		assert.Equal(t, "public, max-age=300", rr.Header().Get("Cache-Control"))
	})
}

func TestSetupAPIRoutesAppliesGlobalMiddleware(t *testing.T) {
	api := createTestApi(testApiOptions{})
	defer api.Shutdown()

	mux := http.NewServeMux()
	api.SetRoutes(mux)
	handler := api.SetupAPIRoutes(mux)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "no-cache, no-store, must-revalidate", rr.Header().Get("Cache-Control"))
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, rr.Header().Get(requestIDHeader))
}
