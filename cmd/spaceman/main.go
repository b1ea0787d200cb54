// Package main is the entry point for spaceman.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/samdwyer/spaceman/internal/config"
	"github.com/samdwyer/spaceman/internal/game"
	"github.com/samdwyer/spaceman/internal/gamedata"
	"github.com/samdwyer/spaceman/internal/logger"
	"github.com/samdwyer/spaceman/internal/telemetry"
	"github.com/samdwyer/spaceman/internal/ui"
	"github.com/samdwyer/spaceman/internal/words"
)

func main() {
	if err := run(); err != nil {
		zlog.Fatal().Err(err).Msg("spaceman")
	}
}

// run wires the game together. Everything deferred here, the terminal
// included, is restored before main reports an error.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, closeLog, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx := context.Background()

	if cfg.TracingEnabled() {
		setupOTelEnv(cfg)
		shutdown, err := telemetry.Setup(ctx, log)
		if err != nil {
			// Game still works without observability
			log.Warn().Err(err).Msg("telemetry setup failed")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Warn().Err(err).Msg("telemetry shutdown")
				}
			}()
		}
	}

	art, err := gamedata.LoadArt()
	if err != nil {
		log.Warn().Err(err).Msg("spaceman drawing unavailable")
	} else {
		log.Debug().Int("stages", art.Count()).Msg("spaceman drawing loaded")
	}

	console, closeConsole, err := newConsole(cfg.Console, log)
	if err != nil {
		return fmt.Errorf("open console: %w", err)
	}
	defer closeConsole()

	dict := words.New(cfg.WordsFile, cfg.Rand(), log)
	log.Info().Str("words", dict.Path()).Str("console", cfg.Console).Msg("session started")

	return game.New(console, dict, art, log).Run(ctx)
}

// newConsole picks the full-screen console when both ends are a terminal,
// unless the mode forces one or the other.
func newConsole(mode string, log zerolog.Logger) (game.Console, func(), error) {
	interactive := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))

	if mode == config.ConsoleLine || (mode == config.ConsoleAuto && !interactive) {
		return ui.NewLineConsole(os.Stdin, os.Stdout), func() {}, nil
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, nil, err
	}
	log.Debug().Bool("interactive", interactive).Msg("screen console")
	c := ui.NewScreenConsole(screen)
	return c, c.Close, nil
}

// setupOTelEnv exports the OTEL_* variables derived from our own settings
// so the OTLP exporter picks them up.
func setupOTelEnv(cfg *config.Config) {
	for k, v := range cfg.OTelEnv() {
		os.Setenv(k, v)
	}
}
