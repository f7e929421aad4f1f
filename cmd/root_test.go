package cmd

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/marquee/internal/config"
	"github.com/lepinkainen/marquee/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseCLI(t *testing.T, args ...string) (*CLI, *kong.Context) {
	t.Helper()

	originalArgs := os.Args
	os.Args = append([]string{"marquee"}, args...)
	t.Cleanup(func() { os.Args = originalArgs })

	cli := &CLI{}
	opts := append(kongOptions(),
		kong.BindTo(context.Background(), (*context.Context)(nil)),
		kong.Exit(func(code int) {
			t.Fatalf("unexpected Kong exit %d", code)
		}),
	)
	ctx := kong.Parse(cli, opts...)

	return cli, ctx
}

func TestUpdateGlobalConfig(t *testing.T) {
	testutil.ResetConfig(t)
	config.InitConfig()

	cli := &CLI{
		LogLevel:     "debug",
		NoStaleGuard: true,
		Serve:        ServeCmd{Addr: "127.0.0.1:9090"},
	}

	updateGlobalConfig(cli)

	assert.Equal(t, "debug", config.LogLevel)
	assert.False(t, config.GuardStale)
	assert.Equal(t, "127.0.0.1:9090", config.ListenAddr)
}

func TestUpdateGlobalConfigKeepsDefaults(t *testing.T) {
	testutil.ResetConfig(t)
	config.InitConfig()

	updateGlobalConfig(&CLI{})

	assert.Equal(t, "info", config.LogLevel)
	assert.True(t, config.GuardStale)
	assert.Equal(t, ":8080", config.ListenAddr)
}

func TestServeCommandParsing(t *testing.T) {
	testutil.ResetConfig(t)

	cli, ctx := parseCLI(t, "--no-stale-guard", "serve", "--addr", ":7070")

	assert.Equal(t, "serve", ctx.Command())
	assert.Equal(t, ":7070", cli.Serve.Addr)
	assert.True(t, cli.NoStaleGuard)
}

func TestShowCommandParsing(t *testing.T) {
	testutil.ResetConfig(t)

	cli, ctx := parseCLI(t, "show", "/tv/1396/cast", "-f", "yaml", "-o", "out.yaml")

	assert.Equal(t, "show <path>", ctx.Command())
	assert.Equal(t, "/tv/1396/cast", cli.Show.Path)
	assert.Equal(t, "yaml", cli.Show.Format)
	assert.Equal(t, "out.yaml", cli.Show.Output)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
}

func TestServeRequiresAPIKey(t *testing.T) {
	testutil.ResetConfig(t)
	config.InitConfig()
	config.TMDBAPIKey = ""

	err := (&ServeCmd{}).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TMDB API key is required")
}

func TestServeRunsServer(t *testing.T) {
	testutil.SetTestConfig(t, "http://catalog.test")

	called := false
	orig := listenAndServe
	listenAndServe = func(ctx context.Context) error {
		called = true
		return nil
	}
	t.Cleanup(func() { listenAndServe = orig })

	require.NoError(t, (&ServeCmd{}).Run(context.Background()))
	assert.True(t, called)
}

func TestNewCatalogUsesConfiguredImageBases(t *testing.T) {
	testutil.SetTestConfig(t, "http://catalog.test")
	config.ImageBaseURL = "https://img.example/original"
	config.ProfileBaseURL = "https://img.example/w45"

	client := newCatalog()

	assert.Equal(t, "https://img.example/original/poster.jpg", client.PosterURL("/poster.jpg"))
	assert.Equal(t, "https://img.example/w45/face.jpg", client.ProfileURL("/face.jpg"))
}
