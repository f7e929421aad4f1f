package cmd

import (
	"log/slog"

	"github.com/lepinkainen/marquee/internal/config"
	"github.com/lepinkainen/marquee/internal/detail"
	"github.com/lepinkainen/marquee/internal/ratelimit"
	"github.com/lepinkainen/marquee/internal/server"
	"github.com/lepinkainen/marquee/internal/subview"
	"github.com/lepinkainen/marquee/internal/tmdb"
)

// newCatalog builds the TMDB client from the global config.
func newCatalog() *tmdb.Client {
	return tmdb.NewClient(config.TMDBAPIKey,
		tmdb.WithBaseURL(config.TMDBBaseURL),
		tmdb.WithImageBaseURL(config.ImageBaseURL),
		tmdb.WithProfileBaseURL(config.ProfileBaseURL),
		tmdb.WithLanguage(config.TMDBLanguage),
		tmdb.WithRateLimiter(ratelimit.New("TMDB", config.CatalogRatePerSecond)),
	)
}

func newRegistry(client *tmdb.Client) *subview.Registry {
	registry := subview.NewRegistry()
	registry.Register(subview.Cast, subview.CastLoader(client))
	registry.Register(subview.Reviews, subview.ReviewsLoader(client))
	return registry
}

func newServer(client *tmdb.Client) *server.Server {
	cfg := server.Config{
		Addr:               config.ListenAddr,
		RateLimitPerMinute: config.RateLimitPerMinute,
		GuardStale:         config.GuardStale,
	}
	return server.New(cfg, client, detail.NewRenderer(client), newRegistry(client), slog.Default())
}
