// Package detail implements the movie/show detail page: it loads a catalog
// record and its video list for one (id, kind) pair and renders the card.
package detail

import (
	"fmt"
	"strings"

	"github.com/lepinkainen/marquee/internal/media"
)

// Params identify the item a View shows. They are passed in explicitly by
// whoever routes the request.
type Params struct {
	ID   string
	Kind media.Kind
	// BasePath is the item's own path, e.g. /tv/1396; sub-view links hang off it.
	BasePath string
}

// NewParams builds Params for id and kind with the canonical base path.
func NewParams(id string, kind media.Kind) Params {
	return Params{
		ID:       id,
		Kind:     kind,
		BasePath: "/" + kind.Segment() + "/" + id,
	}
}

// ParamsFromPath splits a page path such as /movies/550/cast into Params
// and the remaining sub-view segment ("cast"), which may be empty.
func ParamsFromPath(path string) (Params, string, error) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 2 || parts[1] == "" {
		return Params{}, "", fmt.Errorf("path %q: expected /<kind>/<id>[/<view>]", path)
	}
	if len(parts) > 3 {
		return Params{}, "", fmt.Errorf("path %q: too many segments", path)
	}

	kind, err := media.KindFromSegment(parts[0])
	if err != nil {
		return Params{}, "", fmt.Errorf("path %q: %w", path, err)
	}

	if _, err := media.ParseID(parts[1]); err != nil {
		return Params{}, "", fmt.Errorf("path %q: %w", path, err)
	}

	rest := ""
	if len(parts) == 3 {
		rest = parts[2]
	}
	return NewParams(parts[1], kind), rest, nil
}

func (p Params) key() (string, media.Kind) {
	return p.ID, p.Kind
}
