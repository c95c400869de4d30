package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rps.hcl")
	src := `
player {
  name = "Ana"
}

game {
  locale = "id"
  seed   = 42
}

ui {
  theme    = "mono"
  log_file = "game.log"
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "Ana", cfg.Player.Name)
	assert.Equal(t, "id", cfg.Game.Locale)
	assert.Equal(t, int64(42), cfg.Game.Seed)
	assert.Equal(t, "mono", cfg.UI.Theme)
	assert.Equal(t, "game.log", cfg.UI.LogFile)
	assert.Equal(t, "info", cfg.UI.LogLevel, "unset fields fall back to defaults")
	assert.Equal(t, Default().Simulate, cfg.Simulate, "missing blocks fall back to defaults")
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte(`player {`), "broken.hcl")
	assert.Error(t, err)

	_, err = Parse([]byte(`player { colour = "red" }`), "unknown.hcl")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "locale", mutate: func(c *Config) { c.Game.Locale = "fr" }},
		{name: "log level", mutate: func(c *Config) { c.UI.LogLevel = "trace" }},
		{name: "theme", mutate: func(c *Config) { c.UI.Theme = "neon" }},
		{name: "sessions", mutate: func(c *Config) { c.Simulate.Sessions = -1 }},
		{name: "rounds", mutate: func(c *Config) { c.Simulate.Rounds = -1 }},
		{name: "workers", mutate: func(c *Config) { c.Simulate.Workers = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			require.NoError(t, cfg.Validate())
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
