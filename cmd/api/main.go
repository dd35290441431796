package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"pitstop.roadtripper.org/internal/appconf"
)

func main() {
	// Load .env if present so local development picks up secrets without
	// exporting them.
	_ = godotenv.Load()

	var cfg appconf.Config
	var envFlag string

	flag.IntVar(&cfg.Port, "port", 4001, "API server port")
	flag.StringVar(&envFlag, "env", "development", "Environment (development|test|production)")
	flag.IntVar(&cfg.RateLimit, "rate-limit", 100, "Requests per second per client for rate limiting")
	flag.StringVar(&cfg.OpenAIModel, "openai-model", defaultOpenAIModel(), "Chat-completions model for constraint parsing and review summaries")
	flag.StringVar(&cfg.WebUIPath, "webui-path", "./public", "Path to the built frontend bundle")
	flag.Parse()

	cfg.Verbose = true
	cfg.Env = appconf.EnvFlagToEnvironment(envFlag)

	coreApp, err := BuildApplication(cfg)
	if err != nil {
		logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
		logger.Error("failed to build application", "error", err)
		os.Exit(1)
	}

	srv, api := CreateServer(coreApp, cfg)
	defer api.Shutdown()

	if err := Run(srv, coreApp.Logger); err != nil {
		coreApp.Logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

func defaultOpenAIModel() string {
	if model := os.Getenv("OPENAI_MODEL"); model != "" {
		return model
	}
	return "gpt-4o-mini"
}
