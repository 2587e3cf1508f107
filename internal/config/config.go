// Package config loads the immutable settings the leaderboard is built from: where the
// sheet lives, how to fetch it, how to serve it, and the group roster.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/pfrederiksen/league-leaderboard/internal/leaderboard"
	"github.com/pfrederiksen/league-leaderboard/internal/sheet"
)

const (
	DefaultSheetURL  = "https://docs.google.com/spreadsheets/d/e/2PACX-1vSdlDXqcBxu_SOx23N658q0REWTXmJBqx9lJAqYWpi5O-xznu2Iolx2Iix_RTrBFYexfpqOawJNcKIW/pub?output=csv"
	DefaultUserAgent = "league-leaderboard/1.0 (github.com/pfrederiksen/league-leaderboard)"
	DefaultTimeout   = 30 * time.Second
	DefaultAddr      = ":8080"

	// EnvFile is read from the working directory when present.
	EnvFile = ".env"
)

// Config holds all settings.
type Config struct {
	Sheet  SheetConfig        `yaml:"sheet"`
	Server ServerConfig       `yaml:"server"`
	Log    LogConfig          `yaml:"log"`
	Groups leaderboard.Roster `yaml:"groups"`
}

// SheetConfig describes the published export and how politely to fetch it.
type SheetConfig struct {
	URL       string        `yaml:"url"`
	Format    sheet.Format  `yaml:"format"` // empty: csv for the URL, guessed from the extension for local files
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
	RateLimit float64       `yaml:"rate_limit"` // fetches per second
	Burst     int           `yaml:"burst"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr           string        `yaml:"addr"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration for the league sheet.
func Default() *Config {
	return &Config{
		Sheet: SheetConfig{
			URL:       DefaultSheetURL,
			Timeout:   DefaultTimeout,
			UserAgent: DefaultUserAgent,
			RateLimit: 1,
			Burst:     3,
		},
		Server: ServerConfig{
			Addr:           DefaultAddr,
			RequestTimeout: 60 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
		Groups: leaderboard.DefaultRoster(),
	}
}

// Load builds the configuration. Precedence, lowest first: defaults, the optional YAML
// file, then LEADERBOARD_* variables from the environment or an optional .env file.
// Variables already set in the environment win over the same names in .env.
// An empty path skips the YAML file; a non-empty path that does not exist is an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading %s: %w", EnvFile, err)
	}

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("LEADERBOARD_SHEET_URL"); v != "" {
		c.Sheet.URL = v
	}
	if v := os.Getenv("LEADERBOARD_SHEET_FORMAT"); v != "" {
		c.Sheet.Format = sheet.Format(v)
	}
	if v := os.Getenv("LEADERBOARD_SHEET_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid LEADERBOARD_SHEET_TIMEOUT value: %w", err)
		}
		c.Sheet.Timeout = d
	}
	if v := os.Getenv("LEADERBOARD_RATE_LIMIT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid LEADERBOARD_RATE_LIMIT value: %w", err)
		}
		c.Sheet.RateLimit = f
	}
	if v := os.Getenv("LEADERBOARD_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("LEADERBOARD_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	return nil
}

// Validate checks that the configuration can be used as-is. It normalizes the sheet
// format in place.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Sheet.URL)
	if err != nil {
		return fmt.Errorf("invalid sheet url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid sheet url: %q (must be an absolute http(s) URL)", c.Sheet.URL)
	}

	if c.Sheet.Format != "" {
		format, err := sheet.ParseFormat(string(c.Sheet.Format))
		if err != nil {
			return err
		}
		c.Sheet.Format = format
	}

	if c.Sheet.Timeout <= 0 {
		return fmt.Errorf("sheet timeout must be positive, got %s", c.Sheet.Timeout)
	}
	if c.Sheet.RateLimit < 0 {
		return fmt.Errorf("rate limit must not be negative, got %v", c.Sheet.RateLimit)
	}

	if len(c.Groups) == 0 {
		return fmt.Errorf("at least one group is required")
	}
	seen := make(map[leaderboard.Group]bool)
	for _, g := range c.Groups {
		if g.ID == "" {
			return fmt.Errorf("group id is required")
		}
		if seen[g.ID] {
			return fmt.Errorf("duplicate group id: %s", g.ID)
		}
		seen[g.ID] = true
		if len(g.Members) == 0 {
			return fmt.Errorf("group %s has no members", g.ID)
		}
	}

	return nil
}

// Roster returns a copy of the configured groups, safe to hand to an extractor.
func (c *Config) Roster() leaderboard.Roster {
	roster := make(leaderboard.Roster, len(c.Groups))
	for i, g := range c.Groups {
		g.Members = append([]string(nil), g.Members...)
		roster[i] = g
	}
	return roster
}
