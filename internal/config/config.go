package config

import (
	"github.com/spf13/viper"
)

// Global configuration variables
var (
	// TMDBAPIKey is the API key for TheMovieDB
	TMDBAPIKey string
	// TMDBLanguage is sent as the language parameter on catalog requests
	TMDBLanguage string
	// TMDBBaseURL overrides the catalog API endpoint (used against mirrors and in tests)
	TMDBBaseURL string
	// ImageBaseURL is the prefix for poster images
	ImageBaseURL string
	// ProfileBaseURL is the prefix for cast profile photos
	ProfileBaseURL string
	// CatalogRatePerSecond limits outbound catalog requests; 0 disables the limit
	CatalogRatePerSecond int
	// ListenAddr is the address the HTTP server binds to
	ListenAddr string
	// RateLimitPerMinute is the per-IP page request limit; 0 disables it
	RateLimitPerMinute int
	// GuardStale discards fetch results that belong to a superseded page cycle
	GuardStale bool
	// LogLevel is one of debug, info, warn, error
	LogLevel string
)

// SetDefaults registers the default value of every key.
func SetDefaults() {
	viper.SetDefault("tmdb.language", "en-US")
	viper.SetDefault("tmdb.baseurl", "")
	viper.SetDefault("tmdb.imagebaseurl", "https://image.tmdb.org/t/p/original")
	viper.SetDefault("tmdb.profilebaseurl", "https://image.tmdb.org/t/p/w185")
	viper.SetDefault("tmdb.ratepersecond", 4)
	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("server.ratelimitperminute", 120)
	viper.SetDefault("detail.guardstale", true)
	viper.SetDefault("log.level", "info")
}

// InitConfig initializes the global configuration
func InitConfig() {
	SetDefaults()

	// Get values from viper
	TMDBAPIKey = viper.GetString("TMDBAPIKey")
	TMDBLanguage = viper.GetString("tmdb.language")
	TMDBBaseURL = viper.GetString("tmdb.baseurl")
	ImageBaseURL = viper.GetString("tmdb.imagebaseurl")
	ProfileBaseURL = viper.GetString("tmdb.profilebaseurl")
	CatalogRatePerSecond = viper.GetInt("tmdb.ratepersecond")
	ListenAddr = viper.GetString("server.addr")
	RateLimitPerMinute = viper.GetInt("server.ratelimitperminute")
	GuardStale = viper.GetBool("detail.guardstale")
	LogLevel = viper.GetString("log.level")
}

// SetListenAddr overrides the listen address when non-empty
func SetListenAddr(addr string) {
	if addr != "" {
		ListenAddr = addr
	}
}

// SetGuardStale sets the GuardStale flag
func SetGuardStale(enabled bool) {
	GuardStale = enabled
}
