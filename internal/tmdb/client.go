// Package tmdb provides a client for TheMovieDB API.
package tmdb

import (
	"net/http"
	"strings"
	"time"

	"github.com/lepinkainen/marquee/internal/ratelimit"
)

const (
	defaultBaseURL        = "https://api.themoviedb.org/3"
	defaultImageBaseURL   = "https://image.tmdb.org/t/p/original"
	defaultProfileBaseURL = "https://image.tmdb.org/t/p/w185"
	defaultRatePerSecond  = 4 // TMDB allows ~40 requests per 10 seconds
)

// HTTPDoer is an interface for making HTTP requests.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client is a TMDB API client.
type Client struct {
	apiKey         string
	baseURL        string
	imageBaseURL   string
	profileBaseURL string
	language       string
	httpClient     HTTPDoer
	rateLimiter    *ratelimit.Limiter
}

// NewClient creates a new TMDB API client.
func NewClient(apiKey string, opts ...Option) *Client {
	client := &Client{
		apiKey:         apiKey,
		baseURL:        defaultBaseURL,
		imageBaseURL:   defaultImageBaseURL,
		profileBaseURL: defaultProfileBaseURL,
		httpClient:     &http.Client{Timeout: 10 * time.Second},
		rateLimiter:    ratelimit.New("TMDB", defaultRatePerSecond),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c HTTPDoer) Option {
	return func(client *Client) {
		if c != nil {
			client.httpClient = c
		}
	}
}

// WithBaseURL sets a custom base URL for the TMDB API.
func WithBaseURL(base string) Option {
	return func(client *Client) {
		if base != "" {
			client.baseURL = strings.TrimSuffix(base, "/")
		}
	}
}

// WithImageBaseURL sets a custom base URL for poster images.
func WithImageBaseURL(base string) Option {
	return func(client *Client) {
		if base != "" {
			client.imageBaseURL = strings.TrimSuffix(base, "/")
		}
	}
}

// WithProfileBaseURL sets a custom base URL for cast profile images.
func WithProfileBaseURL(base string) Option {
	return func(client *Client) {
		if base != "" {
			client.profileBaseURL = strings.TrimSuffix(base, "/")
		}
	}
}

// WithLanguage sets the language parameter sent with every request.
func WithLanguage(lang string) Option {
	return func(client *Client) {
		client.language = lang
	}
}

// WithRateLimiter replaces the default limiter. Passing nil disables
// throttling.
func WithRateLimiter(limiter *ratelimit.Limiter) Option {
	return func(client *Client) {
		client.rateLimiter = limiter
	}
}
