package cmd

import (
	"context"
	"log/slog"

	"github.com/lepinkainen/marquee/internal/config"
)

var listenAndServe = func(ctx context.Context) error {
	return newServer(newCatalog()).ListenAndServe(ctx)
}

// Run starts the HTTP server and blocks until ctx is cancelled.
func (s *ServeCmd) Run(ctx context.Context) error {
	if err := requireAPIKey(); err != nil {
		return err
	}
	slog.Info("Starting marquee", "addr", config.ListenAddr, "guard_stale", config.GuardStale)
	return listenAndServe(ctx)
}
