package restapi

import (
	"log/slog"
	"time"

	"pitstop.roadtripper.org/internal/app"
	"pitstop.roadtripper.org/internal/appconf"
	"pitstop.roadtripper.org/internal/clock"
	"pitstop.roadtripper.org/internal/maps"
	"pitstop.roadtripper.org/internal/oracle"
	"pitstop.roadtripper.org/internal/planner"
)

var testSecrets = appconf.Secrets{
	OpenAIAPIKey:     "openai-test-key",
	GoogleMapsAPIKey: "maps-test-key",
	JWTSecret:        "jwt-test-secret",
	AdminUsername:    "admin",
	AdminPassword:    "hunter2",
}

// testApiOptions points the upstream clients at fake servers.
type testApiOptions struct {
	mapsBaseURL   string
	oracleBaseURL string
}

// createTestApi builds a RestAPI on a fixed clock with static secrets.
func createTestApi(opts testApiOptions) *RestAPI {
	logger := slog.New(slog.DiscardHandler)
	clk := clock.NewFixedClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	var mapsOpts []maps.Option
	if opts.mapsBaseURL != "" {
		mapsOpts = append(mapsOpts, maps.WithBaseURL(opts.mapsBaseURL))
	}
	mapsOpts = append(mapsOpts, maps.WithLogger(logger))
	mapsClient := maps.NewClient(testSecrets.GoogleMapsAPIKey, mapsOpts...)

	var oracleOpts []oracle.Option
	if opts.oracleBaseURL != "" {
		oracleOpts = append(oracleOpts, oracle.WithBaseURL(opts.oracleBaseURL))
	}
	oracleOpts = append(oracleOpts, oracle.WithLogger(logger))
	oracleClient := oracle.NewClient(testSecrets.OpenAIAPIKey, "gpt-4o", oracleOpts...)

	coreApp := &app.Application{
		Config:  appconf.Config{Port: 4001, Env: appconf.Test, RateLimit: 100},
		Secrets: appconf.StaticProvider(testSecrets, clk),
		Logger:  logger,
		Clock:   clk,
		Maps:    mapsClient,
		Oracle:  oracleClient,
		Planner: planner.New(mapsClient, oracleClient, logger),
	}
	return NewRestAPI(coreApp)
}

func (api *RestAPI) testClock() *clock.FixedClock {
	return api.Clock.(*clock.FixedClock)
}
