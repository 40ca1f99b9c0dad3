// Package config loads the game settings from the environment.
//
// Variables (all optional):
//
//	WORDS_FILE     path of the word list; empty uses the embedded list
//	WORD_LENGTH    letters per word (default 5)
//	MAX_ATTEMPTS   guesses per round; 0 picks the mode default (6, legacy 5)
//	LEGACY_MODE    match-only scoring without per-letter feedback
//	DAILY          draw the target of the day instead of a random one
//	DAILY_SALT     salt for the daily target
//	STATS_BACKEND  "sqlite" or "memory" for the session history
//	NO_COLOR       disable coloured output
//	LOG_LEVEL      zerolog level (default warn)
//
// A `.env` file is loaded by main before Load is called.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"

	"github.com/robalobadob/wordle/apps/go-cli/internal/daily"
	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

const (
	StatsSQLite = "sqlite"
	StatsMemory = "memory"
)

type Config struct {
	WordsFile    string `env:"WORDS_FILE"`
	WordLength   int    `env:"WORD_LENGTH" envDefault:"5" validate:"min=1,max=32"`
	MaxAttempts  int    `env:"MAX_ATTEMPTS" envDefault:"0" validate:"min=0,max=100"`
	Legacy       bool   `env:"LEGACY_MODE"`
	Daily        bool   `env:"DAILY"`
	DailySalt    string `env:"DAILY_SALT"`
	StatsBackend string `env:"STATS_BACKEND" envDefault:"sqlite" validate:"oneof=sqlite memory"`
	NoColor      bool   `env:"NO_COLOR"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"warn" validate:"oneof=trace debug info warn error fatal panic disabled"`
}

// Load parses the environment into a Config and validates it.
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.DailySalt == "" {
		cfg.DailySalt = daily.DefaultSalt
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field ranges. Call it again after applying flag overrides.
func (c *Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Mode returns the scoring mode.
func (c *Config) Mode() game.Mode {
	if c.Legacy {
		return game.ModeMatch
	}
	return game.ModeFeedback
}

// Attempts resolves MaxAttempts, falling back to the mode default.
func (c *Config) Attempts() int {
	if c.MaxAttempts > 0 {
		return c.MaxAttempts
	}
	if c.Legacy {
		return game.LegacyMaxAttempts
	}
	return game.DefaultMaxAttempts
}

// GameOptions returns the round options for this configuration.
func (c *Config) GameOptions() game.Options {
	return game.Options{WordLength: c.WordLength, MaxAttempts: c.Attempts(), Mode: c.Mode()}
}
