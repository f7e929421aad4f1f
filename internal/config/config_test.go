package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestInitConfigDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	InitConfig()

	assert.Equal(t, "en-US", TMDBLanguage)
	assert.Equal(t, "https://image.tmdb.org/t/p/original", ImageBaseURL)
	assert.Equal(t, "https://image.tmdb.org/t/p/w185", ProfileBaseURL)
	assert.Equal(t, 4, CatalogRatePerSecond)
	assert.Equal(t, ":8080", ListenAddr)
	assert.Equal(t, 120, RateLimitPerMinute)
	assert.True(t, GuardStale)
	assert.Equal(t, "info", LogLevel)
}

func TestInitConfigReadsViper(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("TMDBAPIKey", "abc123")
	viper.Set("server.addr", "127.0.0.1:9000")
	viper.Set("detail.guardstale", false)
	viper.Set("tmdb.profilebaseurl", "https://img.example/w45")

	InitConfig()

	assert.Equal(t, "abc123", TMDBAPIKey)
	assert.Equal(t, "127.0.0.1:9000", ListenAddr)
	assert.False(t, GuardStale)
	assert.Equal(t, "https://img.example/w45", ProfileBaseURL)
}

func TestSetListenAddr(t *testing.T) {
	original := ListenAddr
	t.Cleanup(func() { ListenAddr = original })

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "override", input: ":9999", expected: ":9999"},
		{name: "empty keeps previous", input: "", expected: ":9999"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			SetListenAddr(tc.input)
			assert.Equal(t, tc.expected, ListenAddr)
		})
	}
}

func TestSetGuardStale(t *testing.T) {
	original := GuardStale
	t.Cleanup(func() { GuardStale = original })

	SetGuardStale(false)
	assert.False(t, GuardStale)
	SetGuardStale(true)
	assert.True(t, GuardStale)
}
