// Package config loads simulator settings from flags and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Layout names accepted by the simulator. Any other name is looked up in the
// embedded layout registry.
const (
	LayoutBeginner = "beginner"
	LayoutRandom   = "random"
)

// Config holds simulator configuration.
type Config struct {
	Layout    string
	Seed      int64
	Players   int
	MaxRounds int
	DBPath    string // Empty disables result storage
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Layout:    LayoutBeginner,
		Seed:      1,
		Players:   4,
		MaxRounds: 500,
	}
}

// Load returns base with any CATAN_* environment variables applied on top.
func Load(base Config) (Config, error) {
	cfg := base
	cfg.Layout = envOrDefault("CATAN_LAYOUT", base.Layout)
	cfg.DBPath = envOrDefault("CATAN_DB", base.DBPath)

	seed, err := strconv.ParseInt(envOrDefault("CATAN_SEED", strconv.FormatInt(base.Seed, 10)), 10, 64)
	if err != nil {
		return cfg, fmt.Errorf("CATAN_SEED: %w", err)
	}
	cfg.Seed = seed

	if cfg.Players, err = envInt("CATAN_PLAYERS", base.Players); err != nil {
		return cfg, err
	}
	if cfg.MaxRounds, err = envInt("CATAN_MAX_ROUNDS", base.MaxRounds); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	n, err := strconv.Atoi(envOrDefault(key, strconv.Itoa(fallback)))
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
