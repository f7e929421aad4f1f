package tmdb

import (
	"context"
	stdErrors "errors"
	"fmt"

	"github.com/lepinkainen/marquee/internal/errors"
	"github.com/lepinkainen/marquee/internal/media"
)

// ErrInvalidMediaType is returned when an unsupported media kind is provided.
var ErrInvalidMediaType = stdErrors.New("invalid media type")

// itemPath builds the catalog path for an item. The id must be numeric so
// nothing from the caller ends up in the query string.
func (c *Client) itemPath(op, id string, kind media.Kind, suffix string) (string, error) {
	segment := kind.CatalogPath()
	if segment == "" {
		return "", errors.NewRequestError(op, 0, ErrInvalidMediaType)
	}
	n, err := media.ParseID(id)
	if err != nil {
		return "", errors.NewRequestError(op, 0, fmt.Errorf("tmdb: %s %w", kind, err))
	}
	return fmt.Sprintf("/%s/%d%s", segment, n, suffix), nil
}

// Details fetches the metadata record for a movie or show.
func (c *Client) Details(ctx context.Context, id string, kind media.Kind) (media.Record, error) {
	path, err := c.itemPath("details", id, kind, "")
	if err != nil {
		return nil, err
	}

	var payload detailsResponse
	if err := c.getJSON(ctx, "details", c.endpoint(path), &payload); err != nil {
		return nil, err
	}
	return payload.record(kind), nil
}

// Videos fetches the video list for a movie or show, in API order.
func (c *Client) Videos(ctx context.Context, id string, kind media.Kind) ([]media.VideoCandidate, error) {
	path, err := c.itemPath("videos", id, kind, "/videos")
	if err != nil {
		return nil, err
	}

	var payload videosResponse
	if err := c.getJSON(ctx, "videos", c.endpoint(path), &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// Credits fetches the cast list for a movie or show, billing order preserved.
func (c *Client) Credits(ctx context.Context, id string, kind media.Kind) ([]CastMember, error) {
	path, err := c.itemPath("credits", id, kind, "/credits")
	if err != nil {
		return nil, err
	}

	var payload creditsResponse
	if err := c.getJSON(ctx, "credits", c.endpoint(path), &payload); err != nil {
		return nil, err
	}
	return payload.Cast, nil
}

// Reviews fetches the first page of reviews for a movie or show.
func (c *Client) Reviews(ctx context.Context, id string, kind media.Kind) ([]Review, error) {
	path, err := c.itemPath("reviews", id, kind, "/reviews")
	if err != nil {
		return nil, err
	}

	var payload reviewsResponse
	if err := c.getJSON(ctx, "reviews", c.endpoint(path), &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}
