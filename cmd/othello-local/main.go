package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"othello/internal/engine"
	"othello/internal/server/game"
	httpserver "othello/internal/server/http"
)

func main() {
	addr := flag.String("addr", ":2888", "listen address")
	depth := flag.Int("depth", 6, "default search depth for /api/ai_move")
	ttSize := flag.Uint64("tt-size", 1<<20, "transposition table buckets per game")
	ttBudgetMB := flag.Uint64("tt-budget-mb", 0, "per-game table memory budget in MiB (0 = unlimited)")
	webDir := flag.String("web", "", "optional directory with a board UI, served under /web/")
	logLevel := flag.String("log-level", "info", "zerolog level (debug, info, warn, error)")
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).With().Timestamp().Logger()

	cfg := engine.DefaultConfig()
	cfg.MaxDepth = *depth
	cfg.TableSize = *ttSize
	cfg.TableBudget = *ttBudgetMB << 20
	cfg.Logger = log.Logger

	games := game.NewManager(cfg, log.Logger)
	api := httpserver.NewServer(games, *depth)
	if *webDir != "" {
		if err := api.ServeStatic(*webDir); err != nil {
			log.Fatal().Err(err).Msg("static files")
		}
	}
	srv := &http.Server{
		Addr:              *addr,
		Handler:           api,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", *addr).Int("depth", *depth).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
	log.Info().Msg("bye")
}
