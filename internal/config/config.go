// Package config loads the game's HCL configuration file.
package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete game configuration
type Config struct {
	Player   *PlayerSettings   `hcl:"player,block"`
	Game     *GameSettings     `hcl:"game,block"`
	UI       *UISettings       `hcl:"ui,block"`
	Simulate *SimulateSettings `hcl:"simulate,block"`
}

// PlayerSettings contains player-specific settings
type PlayerSettings struct {
	Name string `hcl:"name,optional"`
}

// GameSettings controls how sessions are created
type GameSettings struct {
	Locale string `hcl:"locale,optional"`
	Seed   int64  `hcl:"seed,optional"` // 0 picks a random seed
}

// UISettings contains user interface settings
type UISettings struct {
	LogLevel string `hcl:"log_level,optional"`
	LogFile  string `hcl:"log_file,optional"`
	Theme    string `hcl:"theme,optional"`
	NoColor  bool   `hcl:"no_color,optional"`
}

// SimulateSettings holds defaults for the simulate command
type SimulateSettings struct {
	Sessions int `hcl:"sessions,optional"`
	Rounds   int `hcl:"rounds,optional"`
	Workers  int `hcl:"workers,optional"`
}

var (
	validLogLevels = []string{"debug", "info", "warn", "error"}
	validThemes    = []string{"default", "dark", "light", "mono"}
	validLocales   = []string{"en", "id"}
)

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Player: &PlayerSettings{},
		Game: &GameSettings{
			Locale: "en",
		},
		UI: &UISettings{
			LogLevel: "info",
			LogFile:  "rps.log",
			Theme:    "default",
		},
		Simulate: &SimulateSettings{
			Sessions: 100,
			Rounds:   1000,
			Workers:  4,
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Parse decodes configuration from in-memory HCL source
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}

	var cfg Config
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := Default()

	if c.Player == nil {
		c.Player = defaults.Player
	}
	if c.Game == nil {
		c.Game = defaults.Game
	}
	if c.UI == nil {
		c.UI = defaults.UI
	}
	if c.Simulate == nil {
		c.Simulate = defaults.Simulate
	}

	if c.Game.Locale == "" {
		c.Game.Locale = defaults.Game.Locale
	}
	if c.UI.LogLevel == "" {
		c.UI.LogLevel = defaults.UI.LogLevel
	}
	if c.UI.LogFile == "" {
		c.UI.LogFile = defaults.UI.LogFile
	}
	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
	if c.Simulate.Sessions == 0 {
		c.Simulate.Sessions = defaults.Simulate.Sessions
	}
	if c.Simulate.Rounds == 0 {
		c.Simulate.Rounds = defaults.Simulate.Rounds
	}
	if c.Simulate.Workers == 0 {
		c.Simulate.Workers = defaults.Simulate.Workers
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if !slices.Contains(validLocales, c.Game.Locale) {
		return fmt.Errorf("invalid locale: %s", c.Game.Locale)
	}

	if !slices.Contains(validLogLevels, c.UI.LogLevel) {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}

	if !slices.Contains(validThemes, c.UI.Theme) {
		return fmt.Errorf("invalid theme: %s", c.UI.Theme)
	}

	if c.Simulate.Sessions <= 0 {
		return fmt.Errorf("simulate sessions must be positive")
	}

	if c.Simulate.Rounds <= 0 {
		return fmt.Errorf("simulate rounds must be positive")
	}

	if c.Simulate.Workers <= 0 {
		return fmt.Errorf("simulate workers must be positive")
	}

	return nil
}
