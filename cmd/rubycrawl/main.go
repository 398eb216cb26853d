// Package main is the entry point for RubyCrawl.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/samdwyer/rubycrawl/internal/config"
	"github.com/samdwyer/rubycrawl/internal/game"
	"github.com/samdwyer/rubycrawl/internal/logger"
	"github.com/samdwyer/rubycrawl/internal/narrative"
	"github.com/samdwyer/rubycrawl/internal/telemetry"
	"github.com/samdwyer/rubycrawl/internal/ui"
	"github.com/samdwyer/rubycrawl/internal/ui/plain"
)

func main() {
	configPath := flag.String("config", "rubycrawl.yaml", "path to the YAML config file")
	seed := flag.Int64("seed", 0, "dungeon and dice seed (0 picks one from the clock)")
	uiName := flag.String("ui", "", "presenter: tcell or plain (overrides the config file)")
	flag.Parse()

	// Load .env file for local development
	// This makes HONEYCOMB_RUBYCRAWL_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		log.Fatalf("Invalid environment: %v", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *uiName != "" {
		cfg.UI = *uiName
		if err := cfg.Validate(); err != nil {
			log.Fatalf("Invalid flags: %v", err)
		}
	}

	if err := logger.Initialize(cfg.Logging); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Close()

	setupOTelEnv(cfg.Telemetry)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sessionID := uuid.NewString()

	shutdown, err := telemetry.Setup(ctx, telemetry.Options{
		Enabled:   cfg.Telemetry.Enabled,
		SessionID: sessionID,
	})
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	if err := run(ctx, cfg, sessionID); err != nil {
		logger.Error("Game error", "error", err)
		logger.Close()
		log.Fatalf("Game error: %v", err)
	}
}

func run(ctx context.Context, cfg *config.Config, sessionID string) error {
	presenter, closePresenter, err := openPresenter(cfg)
	if err != nil {
		return err
	}
	defer closePresenter()

	story := narrative.NewEmbedded()
	if cfg.NarrativeDir != "" {
		story = narrative.NewDir(cfg.NarrativeDir)
	}

	gameCfg := game.DefaultConfig()
	gameCfg.Seed = cfg.Seed
	gameCfg.PlayerName = cfg.PlayerName
	gameCfg.StarterItemPicks = cfg.StarterItemPicks
	gameCfg.AskTextSpeed = cfg.TextSpeed == config.SpeedUnset
	gameCfg.SessionID = sessionID

	g, err := game.New(gameCfg, presenter, story)
	if err != nil {
		return fmt.Errorf("failed to initialize game: %w", err)
	}

	state, err := g.Run(ctx)
	switch {
	case errors.Is(err, game.ErrQuit), errors.Is(err, context.Canceled):
		logger.Info("Session abandoned", "session", g.SessionID(), "state", state.String())
		return nil
	case err != nil:
		return err
	}

	logger.Info("Session finished", "session", g.SessionID(), "seed", g.Seed(), "state", state.String())
	return nil
}

// openPresenter starts the configured front end and returns a function that
// restores the terminal.
func openPresenter(cfg *config.Config) (game.Presenter, func(), error) {
	delay := cfg.TextSpeed.WordDelay()

	if cfg.UI == config.UIPlain {
		t, err := plain.OpenTerminal(delay)
		if err != nil {
			return nil, nil, err
		}
		return t, func() { t.Close() }, nil
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize screen: %w", err)
	}
	return ui.NewPresenter(screen, delay), screen.Close, nil
}

// setupOTelEnv configures OTEL environment variables from the telemetry settings.
func setupOTelEnv(t config.TelemetryConfig) {
	if !t.Enabled {
		return
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", t.Endpoint)

	// The .env file may hold an unexpanded header reference, so build it here
	if headers := t.OTLPHeaders(); headers != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS", headers)
	}
}
