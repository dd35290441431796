package restapi

import (
	"sync"
	"time"

	"pitstop.roadtripper.org/internal/app"
)

type RestAPI struct {
	*app.Application
	rateLimiter *RateLimitMiddleware

	shutdownOnce sync.Once
}

// NewRestAPI creates a new RestAPI instance with an initialized rate
// limiter.
func NewRestAPI(application *app.Application) *RestAPI {
	return &RestAPI{
		Application: application,
		rateLimiter: NewRateLimitMiddleware(application.Config.RateLimit, time.Second),
	}
}

// Shutdown releases background resources. Safe to call more than once.
func (api *RestAPI) Shutdown() {
	api.shutdownOnce.Do(func() {
		if api.rateLimiter != nil {
			api.rateLimiter.Stop()
		}
	})
}
