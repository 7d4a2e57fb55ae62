// cmd/root.go
//
// Command-line entry point.
//   - serve: run the HTTP API.
//   - daily: print the answer for a day (and the day before).
//   - guess: compare two names and print the result as JSON.
//   - catalog: list the names in a generation pool.
//
// Every command loads configuration from the environment (and .env), sets up
// logging and loads the catalog before running.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robalobadob/pokedle/internal/catalog"
	"github.com/robalobadob/pokedle/internal/config"
	"github.com/robalobadob/pokedle/internal/game"
	"github.com/robalobadob/pokedle/internal/logging"
)

// app carries what PersistentPreRunE prepared for the subcommands.
type app struct {
	cfg *config.Config
	svc *game.Service
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "pokedle",
		Short:         "Daily Pokémon guessing game",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	root.AddCommand(
		serveCommand(a),
		dailyCommand(a),
		guessCommand(a),
		catalogCommand(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := logging.Setup(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr()); err != nil {
		return err
	}
	if err := catalog.Init(cfg.PokedexFile); err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	svc, err := game.NewService(&game.ServiceConfig{
		Catalog:    catalog.Default(),
		SpriteHost: cfg.SpriteHost,
		Salt:       cfg.DailySalt,
		MaxGuesses: cfg.MaxGuesses,
	})
	if err != nil {
		return err
	}
	a.cfg, a.svc = cfg, svc
	return nil
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}
