package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"
	"github.com/lepinkainen/marquee/internal/config"
	"github.com/spf13/viper"
)

// CLI represents the complete command structure for the marquee application
type CLI struct {
	// Global flags
	LogLevel     string `help:"Log level (debug, info, warn, error); overrides log.level in config"`
	NoStaleGuard bool   `help:"Let late responses for a previous item overwrite the page (unguarded behaviour)"`

	Serve ServeCmd `cmd:"" help:"Serve movie and TV detail pages over HTTP"`
	Show  ShowCmd  `cmd:"" help:"Render a single detail page without starting a server"`
}

// ServeCmd represents the serve command
type ServeCmd struct {
	Addr string `help:"Address to listen on; overrides server.addr in config"`
}

// ShowCmd represents the show command
type ShowCmd struct {
	Path      string `arg:"" help:"Page path, e.g. /movies/550 or /tv/1396/cast"`
	Format    string `short:"f" help:"Output format" enum:"html,yaml,json" default:"html"`
	Output    string `short:"o" help:"Write to this file instead of stdout"`
	Overwrite bool   `help:"Replace the output file if it already exists"`
}

func kongOptions() []kong.Option {
	return []kong.Option{
		kong.Name("marquee"),
		kong.Description("Movie and TV detail pages backed by TheMovieDB."),
		kong.UsageOnError(),
	}
}

// Execute runs the Kong-based CLI
func Execute() {
	initLogging(slog.LevelInfo)
	initConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cli CLI
	opts := append(kongOptions(), kong.BindTo(ctx, (*context.Context)(nil)))
	kctx := kong.Parse(&cli, opts...)

	// Update global config based on parsed flags
	updateGlobalConfig(&cli)
	initLogging(parseLevel(config.LogLevel))

	if err := kctx.Run(); err != nil {
		slog.Error("Command failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func initConfig() {
	config.SetDefaults()

	// Enable environment variable support
	viper.AutomaticEnv()
	// Bind specific environment variables to config keys
	if err := viper.BindEnv("TMDBAPIKey", "TMDB_API_KEY"); err != nil {
		slog.Error("Failed to bind environment variable", "error", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			slog.Debug("Config file not found, using defaults and environment")
		} else {
			slog.Error("Fatal error config file", "error", err)
			os.Exit(1)
		}
	}

	// Initialize global config
	config.InitConfig()
}

func updateGlobalConfig(cli *CLI) {
	if cli.LogLevel != "" {
		config.LogLevel = cli.LogLevel
	}
	if cli.NoStaleGuard {
		config.SetGuardStale(false)
	}
	config.SetListenAddr(cli.Serve.Addr)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func initLogging(level slog.Level) {
	// Logs go to stderr so `show` can write pages to stdout
	handler := humanlog.NewHandler(os.Stderr, &humanlog.Options{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))
}

func requireAPIKey() error {
	if config.TMDBAPIKey == "" {
		return fmt.Errorf("TMDB API key is required (set TMDB_API_KEY or TMDBAPIKey in config.yaml)")
	}
	return nil
}
