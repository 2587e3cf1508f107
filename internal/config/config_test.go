package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfrederiksen/league-leaderboard/internal/leaderboard"
	"github.com/pfrederiksen/league-leaderboard/internal/sheet"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// chdir moves into an empty directory so a developer's .env does not leak into tests.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultSheetURL, cfg.Sheet.URL)
	assert.Empty(t, cfg.Sheet.Format, "unset format leaves the choice to the source")
	assert.Equal(t, DefaultTimeout, cfg.Sheet.Timeout)
	assert.Equal(t, 16, cfg.Roster().Capacity())
}

func TestLoad_NoFile(t *testing.T) {
	chdir(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingFile(t *testing.T) {
	dir := chdir(t)

	_, err := Load(filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_YAML(t *testing.T) {
	dir := chdir(t)
	path := writeFile(t, dir, "config.yaml", `
sheet:
  url: https://example.com/pub?output=html
  format: HTML
  timeout: 5s
server:
  addr: 127.0.0.1:9000
groups:
  - id: A
    name: Morning
    members: [Chad, Carp]
  - id: B
    name: Evening
    members: [Jake]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/pub?output=html", cfg.Sheet.URL)
	assert.Equal(t, sheet.FormatHTML, cfg.Sheet.Format, "format is normalized")
	assert.Equal(t, 5*time.Second, cfg.Sheet.Timeout)
	assert.Equal(t, DefaultUserAgent, cfg.Sheet.UserAgent, "unset keys keep defaults")
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, 3, cfg.Roster().Capacity())
	assert.Equal(t, "Morning", cfg.Roster().DisplayName(leaderboard.GroupA))
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := chdir(t)
	path := writeFile(t, dir, "config.yaml", "sheet:\n  url: https://example.com/a.csv\n")

	t.Setenv("LEADERBOARD_SHEET_URL", "https://example.com/b.csv")
	t.Setenv("LEADERBOARD_SHEET_TIMEOUT", "2s")
	t.Setenv("LEADERBOARD_ADDR", ":9999")
	t.Setenv("LEADERBOARD_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/b.csv", cfg.Sheet.URL)
	assert.Equal(t, 2*time.Second, cfg.Sheet.Timeout)
	assert.Equal(t, ":9999", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := chdir(t)
	writeFile(t, dir, EnvFile, "LEADERBOARD_SHEET_URL=https://example.com/dotenv.csv\n")
	t.Setenv("LEADERBOARD_SHEET_URL", "")
	os.Unsetenv("LEADERBOARD_SHEET_URL")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/dotenv.csv", cfg.Sheet.URL)
}

func TestLoad_DotEnvOverridesYAML(t *testing.T) {
	dir := chdir(t)
	path := writeFile(t, dir, "config.yaml", "sheet:\n  url: https://example.com/yaml.csv\n  format: csv\n")
	writeFile(t, dir, EnvFile, "LEADERBOARD_SHEET_URL=https://example.com/dotenv.csv\nLEADERBOARD_SHEET_FORMAT=XLSX\n")
	t.Setenv("LEADERBOARD_SHEET_URL", "")
	os.Unsetenv("LEADERBOARD_SHEET_URL")
	t.Setenv("LEADERBOARD_SHEET_FORMAT", "")
	os.Unsetenv("LEADERBOARD_SHEET_FORMAT")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/dotenv.csv", cfg.Sheet.URL)
	assert.Equal(t, sheet.FormatXLSX, cfg.Sheet.Format)
}

func TestValidate_Format(t *testing.T) {
	tests := []struct {
		in   sheet.Format
		want sheet.Format
	}{
		{"", ""},
		{"CSV", sheet.FormatCSV},
		{" Html ", sheet.FormatHTML},
		{"xlsx", sheet.FormatXLSX},
	}

	for _, tt := range tests {
		cfg := Default()
		cfg.Sheet.Format = tt.in
		require.NoError(t, cfg.Validate())
		assert.Equal(t, tt.want, cfg.Sheet.Format, "input %q", tt.in)
	}
}

func TestLoad_BadEnv(t *testing.T) {
	chdir(t)
	t.Setenv("LEADERBOARD_SHEET_TIMEOUT", "soon")

	_, err := Load("")
	assert.ErrorContains(t, err, "LEADERBOARD_SHEET_TIMEOUT")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"relative url", func(c *Config) { c.Sheet.URL = "/pub?output=csv" }, "invalid sheet url"},
		{"ftp url", func(c *Config) { c.Sheet.URL = "ftp://example.com/x" }, "invalid sheet url"},
		{"unknown format", func(c *Config) { c.Sheet.Format = "ods" }, "invalid format"},
		{"zero timeout", func(c *Config) { c.Sheet.Timeout = 0 }, "timeout"},
		{"negative rate", func(c *Config) { c.Sheet.RateLimit = -1 }, "rate limit"},
		{"no groups", func(c *Config) { c.Groups = nil }, "at least one group"},
		{"duplicate group", func(c *Config) { c.Groups = append(c.Groups, c.Groups[0]) }, "duplicate group id"},
		{"empty group", func(c *Config) { c.Groups[1].Members = nil }, "has no members"},
		{"missing id", func(c *Config) { c.Groups[2].ID = "" }, "group id is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestRoster_IsCopy(t *testing.T) {
	cfg := Default()
	roster := cfg.Roster()
	roster[0].Members[0] = "Changed"

	assert.Equal(t, "Chad", cfg.Groups[0].Members[0])
}
