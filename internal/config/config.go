// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Console modes.
const (
	ConsoleAuto   = "auto"
	ConsoleLine   = "line"
	ConsoleScreen = "screen"
)

const defaultWordsFile = "words.txt"

// Config holds everything cmd/spaceman needs to wire the game together.
// None of it changes the rules of play.
type Config struct {
	WordsFile string // Path of the single-line word list
	Seed      int64  // 0 means seed from the clock
	Console   string // auto, line or screen

	LogLevel string
	LogFile  string // Empty discards logs

	// Tracing is enabled when either is set.
	OTLPEndpoint     string
	HoneycombAPIKey  string
	HoneycombDataset string
}

// Load reads a .env file if present, then the process environment.
func Load() (*Config, error) {
	// Not fatal - env vars might be set directly
	_ = godotenv.Load()

	cfg := &Config{
		WordsFile:        getEnv("SPACEMAN_WORDS_FILE", defaultWordsFile),
		Console:          strings.ToLower(getEnv("SPACEMAN_CONSOLE", ConsoleAuto)),
		LogLevel:         getEnv("SPACEMAN_LOG_LEVEL", "info"),
		LogFile:          os.Getenv("SPACEMAN_LOG_FILE"),
		OTLPEndpoint:     os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		HoneycombAPIKey:  os.Getenv("HONEYCOMB_SPACEMAN_API_KEY"),
		HoneycombDataset: getEnv("HONEYCOMB_SPACEMAN_DATASET", "spaceman"),
	}

	if v := os.Getenv("SPACEMAN_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid SPACEMAN_SEED %q: %w", v, err)
		}
		cfg.Seed = seed
	}

	switch cfg.Console {
	case ConsoleAuto, ConsoleLine, ConsoleScreen:
	default:
		return nil, fmt.Errorf("invalid SPACEMAN_CONSOLE %q: want auto, line or screen", cfg.Console)
	}

	return cfg, nil
}

// Rand returns the random source for word selection. A zero seed draws one
// from the clock; any other seed makes word choices reproducible.
func (c *Config) Rand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// TracingEnabled reports whether an exporter destination is configured.
func (c *Config) TracingEnabled() bool {
	return c.OTLPEndpoint != "" || c.HoneycombAPIKey != ""
}

// OTelEnv returns the OTEL_* variables the exporter should see. A Honeycomb
// key selects the Honeycomb endpoint unless an endpoint was set explicitly.
func (c *Config) OTelEnv() map[string]string {
	env := map[string]string{}
	if c.HoneycombAPIKey != "" {
		env["OTEL_EXPORTER_OTLP_HEADERS"] = fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s",
			c.HoneycombAPIKey, c.HoneycombDataset)
		if c.OTLPEndpoint == "" {
			env["OTEL_EXPORTER_OTLP_ENDPOINT"] = "https://api.honeycomb.io"
		}
	}
	return env
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
