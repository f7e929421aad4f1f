package testutil

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/lepinkainen/marquee/internal/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestEnv_Path(t *testing.T) {
	env := NewTestEnv(t)

	path := env.Path("subdir", "file.txt")
	assert.True(t, filepath.IsAbs(path))
	assert.Contains(t, path, "subdir")
	assert.Equal(t, env.RootDir(), env.Path())
}

func TestTestEnv_WriteAndRead(t *testing.T) {
	env := NewTestEnv(t)

	env.WriteFileString("nested/page.html", "<p>hi</p>")
	assert.Equal(t, "<p>hi</p>", env.ReadFileString("nested/page.html"))
}

func TestSetTestConfig(t *testing.T) {
	state := SaveConfigState()

	t.Run("inner", func(t *testing.T) {
		SetTestConfig(t, "http://catalog.test")
		viper.Set("server.addr", ":1")

		assert.Equal(t, "test-tmdb-key", config.TMDBAPIKey)
		assert.Equal(t, "http://catalog.test", config.TMDBBaseURL)
		assert.Equal(t, 0, config.CatalogRatePerSecond)
		assert.True(t, config.GuardStale)
	})

	assert.Equal(t, state, SaveConfigState())
	assert.False(t, viper.IsSet("server.addr"))
}

func TestCatalogServer(t *testing.T) {
	cs := NewCatalogServer(t)
	cs.Respond("/movie/550", map[string]any{"title": "Fight Club"})
	cs.Fail("/movie/550/videos", http.StatusBadGateway)

	resp, err := http.Get(cs.URL + "/movie/550?api_key=x")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "Fight Club", payload["title"])

	failed, err := http.Get(cs.URL + "/movie/550/videos")
	require.NoError(t, err)
	defer failed.Body.Close()
	assert.Equal(t, http.StatusBadGateway, failed.StatusCode)

	missing, err := http.Get(cs.URL + "/tv/1")
	require.NoError(t, err)
	defer missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)

	assert.Equal(t, []string{"/movie/550", "/movie/550/videos", "/tv/1"}, cs.Hits())
}
