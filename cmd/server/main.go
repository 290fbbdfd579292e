package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/turfwars/api/internal/config"
	"github.com/turfwars/api/internal/geocode"
	"github.com/turfwars/api/internal/journal"
	"github.com/turfwars/api/internal/overlay"
	"github.com/turfwars/api/internal/server"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// --- Journal (in-memory SQLite) ---
	jr, err := journal.Open(ctx)
	if err != nil {
		return fmt.Errorf("opening journal: %w", err)
	}
	defer jr.Close()
	logger.Info("journal ready")

	// --- External collaborators ---
	geo := geocode.NewHTTPClient(cfg.GeocodeBaseURL, cfg.GeocodeToken)
	predictor := overlay.NewHTTPClient(cfg.OverlayURL, cfg.OverlayTimeout)

	// --- HTTP Server ---
	sessions := server.NewRegistry()
	srv := server.New(cfg.HTTPAddr, logger, sessions, jr, geo, predictor, cfg.SPADir)

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}
