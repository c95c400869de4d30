package main

import (
	"fmt"

	"github.com/lox/rps/cmd/rps/shared"
	"github.com/lox/rps/internal/game"
	"github.com/lox/rps/internal/randutil"
	"github.com/lox/rps/internal/tui"
)

// PlayCmd runs the interactive game
type PlayCmd struct {
	Name   string `short:"n" help:"Player name (pre-fills the name prompt)"`
	Locale string `short:"l" help:"Text locale: en or id"`
	Theme  string `help:"Colour theme: default, dark, light or mono"`
	Seed   int64  `help:"RNG seed for the computer's moves (0 for random)"`
}

func (c *PlayCmd) Run(globals *Globals) error {
	cfg, err := globals.loadConfig()
	if err != nil {
		return err
	}
	if c.Name != "" {
		cfg.Player.Name = c.Name
	}
	if c.Locale != "" {
		cfg.Game.Locale = c.Locale
	}
	if c.Theme != "" {
		cfg.UI.Theme = c.Theme
	}
	if c.Seed != 0 {
		cfg.Game.Seed = c.Seed
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, closer, err := shared.SetupFileLogger(cfg.UI.LogFile, cfg.UI.LogLevel)
	if err != nil {
		return err
	}
	defer func() {
		if err := closer.Close(); err != nil {
			fmt.Printf("failed to close log file: %v\n", err)
		}
	}()

	if cfg.UI.NoColor || cfg.UI.Theme == "mono" {
		tui.DisableColor()
	}

	catalog, err := game.CatalogFor(cfg.Game.Locale)
	if err != nil {
		return err
	}

	rng, seed := randutil.FromSeed(cfg.Game.Seed)
	session := game.NewSession(game.RandomMoves(rng),
		game.WithCatalog(catalog),
		game.WithLogger(logger.WithPrefix("game")))
	logger.Info("Starting session", "session", session.ID(), "seed", seed, "locale", catalog.Locale)

	model, err := tui.New(session, tui.Options{
		PlayerName: cfg.Player.Name,
		Theme:      cfg.UI.Theme,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create interface: %w", err)
	}

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	if err := tui.Run(ctx, model); err != nil {
		return err
	}

	if session.Rounds() > 0 {
		fmt.Println(catalog.FormatScore(model.PlayerName(), session.PlayerScore(), session.ComputerScore()))
	}
	return nil
}
