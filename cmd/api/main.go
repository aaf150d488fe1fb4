package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"household-relay/config"
	_ "household-relay/docs" // Swagger docs
	"household-relay/internal/httpserver"
	"household-relay/internal/middleware"
	"household-relay/internal/pending"
	"household-relay/internal/store"
	"household-relay/internal/trace"
	"household-relay/internal/voice"
	voiceHTTP "household-relay/internal/voice/delivery/http"
	voiceUC "household-relay/internal/voice/usecase"
	"household-relay/pkg/datemath"
	"household-relay/pkg/log"
)

// @title       Household Relay API
// @description Rule-based voice command interpretation and execution for the shared household assistant.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Household Relay...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Voice pipeline
	dateMathParser, dtErr := datemath.NewParser(cfg.Voice.Timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Voice.Timezone, dtErr)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// Process-lifetime state, created once and passed by handle.
	householdStore := store.New()
	if cfg.Voice.SeedFixtures {
		seedHousehold(householdStore)
		logger.Info(ctx, "Seeded demo household fixtures")
	}
	pendingQueue := pending.New()
	traceStore := trace.New(cfg.Voice.TraceCapacity, cfg.Voice.TraceEnabled)

	deps := voice.Dependencies{
		Tasks:     householdStore,
		Events:    householdStore,
		Household: householdStore,
		Navigate: func(route string) {
			logger.Debugf(ctx, "navigate: %s", route)
		},
	}

	uc := voiceUC.New(logger, deps, pendingQueue, traceStore, dateMathParser)
	voiceHandler := voiceHTTP.New(logger, uc, pendingQueue, traceStore)
	mw := middleware.New(logger, cfg.RateLimit)

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		VoiceHandler: voiceHandler,
		Middleware:   mw,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
