package tmdb

import (
	"net/http"
	"testing"

	"github.com/lepinkainen/marquee/internal/ratelimit"
	"github.com/stretchr/testify/require"
)

func TestClientOptionsApply(t *testing.T) {
	customHTTP := &http.Client{}
	limiter := ratelimit.New("TMDB", 2)

	client := NewClient(
		"key",
		WithBaseURL("https://example.test/"),
		WithImageBaseURL("https://images.test/"),
		WithProfileBaseURL("https://profiles.test/"),
		WithHTTPClient(customHTTP),
		WithLanguage("fi-FI"),
		WithRateLimiter(limiter),
	)

	require.Equal(t, "https://example.test", client.baseURL)
	require.Equal(t, "https://images.test", client.imageBaseURL)
	require.Equal(t, "https://profiles.test", client.profileBaseURL)
	require.Equal(t, customHTTP, client.httpClient)
	require.Equal(t, "fi-FI", client.language)
	require.Equal(t, limiter, client.rateLimiter)
}

func TestClientOptionsIgnoreEmptyValues(t *testing.T) {
	client := NewClient("key", WithBaseURL(""), WithImageBaseURL(""), WithHTTPClient(nil))

	require.Equal(t, defaultBaseURL, client.baseURL)
	require.Equal(t, defaultImageBaseURL, client.imageBaseURL)
	require.NotNil(t, client.httpClient)
}

func TestImageURLs(t *testing.T) {
	client := NewClient("key", WithImageBaseURL("https://images.test"), WithProfileBaseURL("https://profiles.test"))

	require.Equal(t, "https://images.test/abc.jpg", client.PosterURL("/abc.jpg"))
	require.Equal(t, "", client.PosterURL(""))
	require.Equal(t, "https://profiles.test/p.jpg", client.ProfileURL("/p.jpg"))
	require.Equal(t, "", client.ProfileURL(""))
}
