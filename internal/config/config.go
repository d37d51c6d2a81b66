// Package config loads runtime settings for the compose binary from the
// environment, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvMetricsAddr    = "COMPOSE_METRICS_ADDR"
	EnvTranscriptSize = "COMPOSE_TRANSCRIPT_SIZE"
	EnvCharLimit      = "COMPOSE_CHAR_LIMIT"
	EnvLogFile        = "COMPOSE_LOG_FILE"
)

// Config holds tunable parameters for the composer app.
type Config struct {
	MetricsAddr    string // metrics listen address; empty disables the listener
	TranscriptSize int    // number of sent messages kept on screen
	CharLimit      int    // max characters accepted by the message field
	LogFile        string // log destination in TUI mode; empty discards logs
}

// Default returns a Config with the built-in defaults.
func Default() Config {
	return Config{
		TranscriptSize: 5,
		CharLimit:      500,
	}
}

// LoadDotEnv loads variables from the given .env files (".env" when none
// are given) without overriding variables already set. A missing file is
// not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: load %s: %w", f, err)
		}
		log.Printf("[config] loaded %s", f)
	}
	return nil
}

// Load builds a Config from Default overridden by environment variables.
func Load() (Config, error) {
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config using lookup to read variables.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvMetricsAddr); ok {
		cfg.MetricsAddr = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.LogFile = strings.TrimSpace(v)
	}

	n, err := positiveInt(lookup, EnvTranscriptSize)
	if err != nil {
		return Config{}, err
	}
	if n > 0 {
		cfg.TranscriptSize = n
	}

	n, err = positiveInt(lookup, EnvCharLimit)
	if err != nil {
		return Config{}, err
	}
	if n > 0 {
		cfg.CharLimit = n
	}

	return cfg, nil
}

// positiveInt returns 0 when the variable is unset or blank.
func positiveInt(lookup func(string) (string, bool), key string) (int, error) {
	v, ok := lookup(key)
	if !ok || strings.TrimSpace(v) == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s value %q: %w", key, v, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("config: %s must be positive, got %d", key, n)
	}
	return n, nil
}
