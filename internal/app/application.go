package app

import (
	"log/slog"

	"pitstop.roadtripper.org/internal/appconf"
	"pitstop.roadtripper.org/internal/clock"
	"pitstop.roadtripper.org/internal/maps"
	"pitstop.roadtripper.org/internal/oracle"
	"pitstop.roadtripper.org/internal/planner"
)

// Application holds the core application dependencies shared across
// handlers.
type Application struct {
	Config  appconf.Config
	Secrets *appconf.Provider
	Logger  *slog.Logger
	Clock   clock.Clock
	Maps    *maps.Client
	Oracle  *oracle.Client
	Planner *planner.Planner
}
