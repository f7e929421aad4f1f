package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lepinkainen/marquee/internal/errors"
	"github.com/lepinkainen/marquee/internal/metrics"
)

// endpoint builds an API URL for path with the api key and language set.
func (c *Client) endpoint(path string) string {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	if c.language != "" {
		params.Set("language", c.language)
	}
	return fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())
}

// getJSON performs a single GET and decodes the body into target. Every
// failure comes back as *errors.RequestError; there is no retry.
func (c *Client) getJSON(ctx context.Context, op, endpoint string, target any) error {
	start := time.Now()
	err := c.doJSONRequest(ctx, op, endpoint, target)
	metrics.CatalogDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())

	outcome := metrics.OutcomeOK
	if err != nil {
		outcome = metrics.OutcomeError
	}
	metrics.CatalogRequests.WithLabelValues(op, outcome).Inc()
	return err
}

func (c *Client) doJSONRequest(ctx context.Context, op, endpoint string, target any) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return errors.NewRequestError(op, 0, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.NewRequestError(op, 0, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.NewRequestError(op, 0, redactKey(err, c.apiKey))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errors.NewRequestError(op, resp.StatusCode,
			fmt.Errorf("tmdb: unexpected status %d: %s", resp.StatusCode, statusMessage(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return errors.NewRequestError(op, resp.StatusCode, fmt.Errorf("tmdb: decode %s: %w", op, err))
	}
	return nil
}

// statusMessage prefers TMDB's status_message over the raw body.
func statusMessage(body []byte) string {
	var payload struct {
		StatusMessage string `json:"status_message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.StatusMessage != "" {
		return payload.StatusMessage
	}
	return strings.TrimSpace(string(body))
}

// redactKey strips the api key from transport errors, which embed the URL.
func redactKey(err error, apiKey string) error {
	if apiKey == "" || !strings.Contains(err.Error(), apiKey) {
		return err
	}
	return fmt.Errorf("%s", strings.ReplaceAll(err.Error(), apiKey, "REDACTED"))
}
