package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pitstop.roadtripper.org/internal/app"
	"pitstop.roadtripper.org/internal/appconf"
	"pitstop.roadtripper.org/internal/clock"
	"pitstop.roadtripper.org/internal/logging"
	"pitstop.roadtripper.org/internal/maps"
	"pitstop.roadtripper.org/internal/oracle"
	"pitstop.roadtripper.org/internal/planner"
	"pitstop.roadtripper.org/internal/restapi"
	"pitstop.roadtripper.org/internal/webui"
)

// BuildApplication creates and initializes the Application with all
// dependencies: the secret provider, the maps and oracle clients, and the
// planner wired on top of them.
func BuildApplication(cfg appconf.Config) (*app.Application, error) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	clk := clock.SystemClock{}

	secrets := appconf.NewProvider(func(context.Context) (appconf.Secrets, error) {
		return appconf.SecretsFromEnv(), nil
	}, clk, appconf.ConfigCacheTTL)

	initial, err := secrets.Get(context.Background())
	if err != nil {
		return nil, fmt.Errorf("loading secrets: %w", err)
	}
	if initial.GoogleMapsAPIKey == "" {
		return nil, fmt.Errorf("GOOGLE_MAPS_API_KEY must be set")
	}
	if initial.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY must be set")
	}
	if initial.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}

	mapsClient := maps.NewClient(initial.GoogleMapsAPIKey, maps.WithLogger(logger))
	oracleClient := oracle.NewClient(initial.OpenAIAPIKey, cfg.OpenAIModel, oracle.WithLogger(logger))

	coreApp := &app.Application{
		Config:  cfg,
		Secrets: secrets,
		Logger:  logger,
		Clock:   clk,
		Maps:    mapsClient,
		Oracle:  oracleClient,
		Planner: planner.New(mapsClient, oracleClient, logger),
	}

	return coreApp, nil
}

// CreateServer creates and configures the HTTP server with API routes, web
// UI routes, and the global middleware chain.
func CreateServer(coreApp *app.Application, cfg appconf.Config) (*http.Server, *restapi.RestAPI) {
	api := restapi.NewRestAPI(coreApp)

	webUI := &webui.WebUI{
		Application: coreApp,
		PublicDir:   cfg.WebUIPath,
	}

	mux := http.NewServeMux()
	api.SetRoutes(mux)
	webUI.SetWebUIRoutes(mux)

	secureHandler := api.SetupAPIRoutes(mux)

	// Request logging sits outermost so its latency covers the chain.
	requestLogger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)
	handler := restapi.NewRequestLoggingMiddleware(requestLogger)(secureHandler)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 2 * time.Minute,
		ErrorLog:     slog.NewLogLogger(coreApp.Logger.Handler(), slog.LevelError),
	}

	return srv, api
}

// Run manages the server lifecycle with graceful shutdown on SIGINT and
// SIGTERM.
func Run(srv *http.Server, logger *slog.Logger) error {
	logger.Info("starting server", "addr", srv.Addr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErrors := make(chan error, 1)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server failed to start: %w", err)
	case <-ctx.Done():
		logger.Info("shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info("server exited")
	return nil
}
