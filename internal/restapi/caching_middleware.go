package restapi

import (
	"fmt"
	"net/http"
)

// CacheControlMiddleware sets the response cache policy. A zero max-age
// marks responses uncacheable, which is what every endpoint here wants;
// static assets may pass a positive max-age.
func CacheControlMiddleware(maxAgeSeconds int, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if maxAgeSeconds > 0 {
			w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", maxAgeSeconds))
		} else {
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		}

		next.ServeHTTP(w, r)
	})
}
