package restapi

import (
	"net/http"

	"pitstop.roadtripper.org/internal/metrics"
)

// protected wraps a handler with the per-route chain: auth, then rate
// limiting, then compression.
func protected(api *RestAPI, handler http.HandlerFunc) http.Handler {
	compressed := CompressionMiddleware(http.HandlerFunc(handler))

	var rateLimited http.Handler = compressed
	if api.rateLimiter != nil {
		rateLimited = api.rateLimiter.Handler()(compressed)
	}

	return api.requireAuth(func(w http.ResponseWriter, r *http.Request) {
		rateLimited.ServeHTTP(w, r)
	})
}

// SetRoutes registers all API endpoints.
func (api *RestAPI) SetRoutes(mux *http.ServeMux) {
	// No authentication on liveness, metrics, or login.
	mux.HandleFunc("GET /healthz", api.healthHandler)
	mux.Handle("GET /metrics", metrics.Handler())
	mux.Handle("POST /login", CompressionMiddleware(http.HandlerFunc(api.loginHandler)))

	mux.Handle("POST /search", protected(api, api.searchHandler))
	mux.Handle("POST /autocomplete", protected(api, api.autocompleteHandler))
	mux.Handle("POST /directions", protected(api, api.directionsHandler))
	mux.Handle("POST /add-stop", protected(api, api.addStopHandler))
	mux.Handle("POST /add-stop-to-route", protected(api, api.addStopToRouteHandler))
	mux.Handle("POST /recalculate-route", protected(api, api.recalculateRouteHandler))
}

// SetupAPIRoutes wraps a fully-registered mux with the global middleware:
// security headers, request IDs, and an uncacheable-response policy.
func (api *RestAPI) SetupAPIRoutes(mux *http.ServeMux) http.Handler {
	// API responses are per-request; never cache them.
	return api.WithSecurityHeaders(RequestIDMiddleware(CacheControlMiddleware(0, mux)))
}
