package main

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/lox/rps/internal/config"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Config   string `short:"c" default:"rps.hcl" type:"path" help:"HCL configuration file"`
	LogLevel string `help:"Override the configured log level"`
	NoColor  bool   `help:"Disable colour output"`
}

// loadConfig reads the configuration file and applies global flag overrides
func (g *Globals) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", g.Config, err)
	}
	if g.LogLevel != "" {
		cfg.UI.LogLevel = g.LogLevel
	}
	if g.NoColor {
		cfg.UI.NoColor = true
	}
	return cfg, nil
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"withargs" help:"Play against the computer (default)"`
	Simulate SimulateCmd      `cmd:"" help:"Play many random sessions and report the statistics"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("rps"),
		kong.Description("Paper, rock, scissors against a random opponent"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
