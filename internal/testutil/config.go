package testutil

import (
	"testing"

	"github.com/lepinkainen/marquee/internal/config"
	"github.com/spf13/viper"
)

// ConfigState holds the state of the config package variables.
type ConfigState struct {
	TMDBAPIKey           string
	TMDBLanguage         string
	TMDBBaseURL          string
	ImageBaseURL         string
	ProfileBaseURL       string
	CatalogRatePerSecond int
	ListenAddr           string
	RateLimitPerMinute   int
	GuardStale           bool
	LogLevel             string
}

// SaveConfigState captures the current state of config package variables.
func SaveConfigState() ConfigState {
	return ConfigState{
		TMDBAPIKey:           config.TMDBAPIKey,
		TMDBLanguage:         config.TMDBLanguage,
		TMDBBaseURL:          config.TMDBBaseURL,
		ImageBaseURL:         config.ImageBaseURL,
		ProfileBaseURL:       config.ProfileBaseURL,
		CatalogRatePerSecond: config.CatalogRatePerSecond,
		ListenAddr:           config.ListenAddr,
		RateLimitPerMinute:   config.RateLimitPerMinute,
		GuardStale:           config.GuardStale,
		LogLevel:             config.LogLevel,
	}
}

// RestoreConfigState restores the config package variables to a saved state.
func RestoreConfigState(state ConfigState) {
	config.TMDBAPIKey = state.TMDBAPIKey
	config.TMDBLanguage = state.TMDBLanguage
	config.TMDBBaseURL = state.TMDBBaseURL
	config.ImageBaseURL = state.ImageBaseURL
	config.ProfileBaseURL = state.ProfileBaseURL
	config.CatalogRatePerSecond = state.CatalogRatePerSecond
	config.ListenAddr = state.ListenAddr
	config.RateLimitPerMinute = state.RateLimitPerMinute
	config.GuardStale = state.GuardStale
	config.LogLevel = state.LogLevel
}

// ResetConfig saves the current config state and schedules restoration
// when the test completes. It also resets viper.
func ResetConfig(t *testing.T) {
	t.Helper()

	state := SaveConfigState()
	viper.Reset()

	t.Cleanup(func() {
		RestoreConfigState(state)
		viper.Reset()
	})
}

// SetTestConfig loads the defaults, points the catalog at catalogURL and
// restores everything when the test completes.
func SetTestConfig(t *testing.T, catalogURL string) {
	t.Helper()

	ResetConfig(t)
	config.InitConfig()

	config.TMDBAPIKey = "test-tmdb-key"
	config.TMDBBaseURL = catalogURL
	config.CatalogRatePerSecond = 0
	config.RateLimitPerMinute = 0
}
