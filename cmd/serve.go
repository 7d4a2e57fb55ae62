package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/pokedle/assets"
	"github.com/robalobadob/pokedle/internal/config"
	"github.com/robalobadob/pokedle/internal/daily"
	"github.com/robalobadob/pokedle/internal/db"
	"github.com/robalobadob/pokedle/internal/httpserver"
	"github.com/robalobadob/pokedle/internal/player"
	"github.com/robalobadob/pokedle/internal/store"
)

func serveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	cfg := a.cfg

	migrations, err := assets.Migrations()
	if err != nil {
		return err
	}
	conn, err := db.OpenMigrated(cfg.DBPath, migrations)
	if err != nil {
		return fmt.Errorf("open results db: %w", err)
	}
	defer conn.Close()

	sessions, closeSessions, err := openSessions(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSessions()

	players, err := player.NewIssuer(cfg.PlayerSecret, cfg.PlayerTokenTTL())
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	srv, err := httpserver.New(&httpserver.Config{
		Service:            a.svc,
		Sessions:           sessions,
		Results:            daily.NewStore(conn),
		Players:            players,
		Calendar:           daily.NewCalendar(nil, loc),
		ClientOrigin:       cfg.ClientOrigin,
		SecureCookies:      cfg.Production,
		DefaultGenerations: cfg.DefaultGenerations,
	})
	if err != nil {
		return err
	}

	log.Info().
		Str("addr", cfg.Addr()).
		Str("store", cfg.StoreBackend).
		Str("tz", loc.String()).
		Int("pokemon", a.svc.Catalog().Len()).
		Msg("starting pokedle server")
	if err := srv.Serve(ctx, cfg.Addr()); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}

// openSessions builds the configured session store.
func openSessions(ctx context.Context, cfg *config.Config) (store.Store, func(), error) {
	if cfg.StoreBackend != config.BackendRedis {
		return store.NewMemoryStore(cfg.SessionTTL), func() {}, nil
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("connect redis %s: %w", cfg.RedisAddr, err)
	}
	st, err := store.NewRedisStore(&store.RedisConfig{Client: client, TTL: cfg.SessionTTL})
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	return st, func() { _ = client.Close() }, nil
}
