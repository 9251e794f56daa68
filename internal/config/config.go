// Package config reads process configuration from the environment.
//
// None of these settings change gameplay: the attempt budget and word length
// bounds are fixed in the game and words packages.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Config holds the settings shared by the hangman and lexicon-server binaries.
type Config struct {
	LogLevel      string // LOG_LEVEL; empty means the binary's own default
	LexiconPath   string // LEXICON_DB
	LexiconURL    string // LEXICON_URL; set to use a remote lexicon server
	LexiconSecret string // LEXICON_SECRET; empty disables bearer auth
	Addr          string // LEXICON_ADDR
	DailySalt     string // DAILY_SALT; set to play the word of the day
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		LogLevel:      getEnv("LOG_LEVEL", ""),
		LexiconPath:   getEnv("LEXICON_DB", "./data/lexicon.db"),
		LexiconURL:    strings.TrimRight(getEnv("LEXICON_URL", ""), "/"),
		LexiconSecret: getEnv("LEXICON_SECRET", ""),
		Addr:          getEnv("LEXICON_ADDR", ":5176"),
		DailySalt:     getEnv("DAILY_SALT", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that the loaded values are usable.
func (c *Config) Validate() error {
	if c.LexiconURL == "" && c.LexiconPath == "" {
		return fmt.Errorf("LEXICON_DB cannot be empty")
	}
	if c.LexiconURL != "" {
		u, err := url.Parse(c.LexiconURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("LEXICON_URL must be an http(s) URL, got %q", c.LexiconURL)
		}
	}
	if c.Addr == "" {
		return fmt.Errorf("LEXICON_ADDR cannot be empty")
	}
	if c.LogLevel != "" {
		if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("LOG_LEVEL: %w", err)
		}
	}
	return nil
}

// Level returns the configured log level, or fallback when LOG_LEVEL is unset.
func (c *Config) Level(fallback zerolog.Level) zerolog.Level {
	if c.LogLevel == "" {
		return fallback
	}
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return fallback
	}
	return lvl
}

// Daily reports whether the word of the day is played instead of a random one.
func (c *Config) Daily() bool {
	return c.DailySalt != ""
}

// Remote reports whether the lexicon should be reached over HTTP.
func (c *Config) Remote() bool {
	return c.LexiconURL != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(value)
	}
	return fallback
}
