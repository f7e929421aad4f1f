// Package media holds the catalog data model shared by the client, the
// detail view and the sub-views.
package media

import (
	"errors"
	"fmt"
)

// Kind discriminates between the movie and show variants of a catalog entry.
type Kind int

const (
	// Movie is a feature film, routed under /movies.
	Movie Kind = iota + 1
	// Show is a TV series, routed under /tv.
	Show
)

// ErrUnknownKind is returned when a route segment names no known kind.
var ErrUnknownKind = errors.New("unknown media kind")

// KindFromSegment maps the leading route segment to a Kind.
func KindFromSegment(segment string) (Kind, error) {
	switch segment {
	case "movies":
		return Movie, nil
	case "tv":
		return Show, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, segment)
	}
}

// Segment returns the route segment for k.
func (k Kind) Segment() string {
	switch k {
	case Movie:
		return "movies"
	case Show:
		return "tv"
	default:
		return ""
	}
}

// CatalogPath returns the path element TMDB uses for k.
func (k Kind) CatalogPath() string {
	switch k {
	case Movie:
		return "movie"
	case Show:
		return "tv"
	default:
		return ""
	}
}

func (k Kind) String() string {
	switch k {
	case Movie:
		return "movie"
	case Show:
		return "show"
	default:
		return "unknown"
	}
}
