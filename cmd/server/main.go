// Cinelog - Movie Catalog Search & CRUD API
// Copyright 2026 Cinelog contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelog/cinelog

// Command server runs the Cinelog HTTP API.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/cinelog/cinelog/internal/api"
	"github.com/cinelog/cinelog/internal/chunkfile"
	"github.com/cinelog/cinelog/internal/config"
	"github.com/cinelog/cinelog/internal/logging"
	"github.com/cinelog/cinelog/internal/store"
	"github.com/cinelog/cinelog/internal/supervisor"
)

func main() {
	if err := run(); err != nil {
		logging.Error().Err(err).Msg("Server exited with error")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", api.Version).
		Str("host", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Bool("chunk_mode", cfg.UseChunks()).
		Msg("Starting Cinelog")

	st := store.New(newSource(cfg))

	handler := api.NewHandler(st, cfg)
	mw := api.NewChiMiddleware(cfg)
	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddAPIService(supervisor.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := tree.ServeBackground(ctx)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("supervisor: %w", err)
		}
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received")
		if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("supervisor: %w", err)
		}
	}

	if report, err := tree.UnstoppedServiceReport(); err == nil && len(report) > 0 {
		for _, svc := range report {
			logging.Warn().Str("service", svc.Name).Msg("Service did not stop in time")
		}
	}

	logging.Info().Msg("Cinelog stopped")
	return nil
}

// newSource picks the catalog source from configuration: a single CSV read
// in pages, or a directory of pre-split chunks.
func newSource(cfg *config.Config) store.Source {
	if cfg.UseChunks() {
		return &chunkfile.DirSource{Dir: cfg.Data.ChunkDir}
	}
	return &chunkfile.FileSource{
		Path:     cfg.Data.CSVPath,
		PageSize: cfg.Data.LoadPageSize,
	}
}
