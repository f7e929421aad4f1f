package subview

import (
	"context"
	"errors"
	"testing"

	"github.com/lepinkainen/marquee/internal/media"
	"github.com/lepinkainen/marquee/internal/tmdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	cast    []tmdb.CastMember
	reviews []tmdb.Review
	err     error
	gotID   string
	gotKind media.Kind
}

func (f *fakeSource) Credits(_ context.Context, id string, kind media.Kind) ([]tmdb.CastMember, error) {
	f.gotID, f.gotKind = id, kind
	return f.cast, f.err
}

func (f *fakeSource) Reviews(_ context.Context, id string, kind media.Kind) ([]tmdb.Review, error) {
	f.gotID, f.gotKind = id, kind
	return f.reviews, f.err
}

func (f *fakeSource) ProfileURL(path string) string {
	if path == "" {
		return ""
	}
	return "https://img.test" + path
}

func TestCastLoader(t *testing.T) {
	src := &fakeSource{cast: []tmdb.CastMember{
		{Name: "Bryan Cranston", Character: "Walter White", ProfilePath: "/w.jpg"},
		{Name: "Aaron Paul"},
	}}

	html, err := CastLoader(src)(context.Background(), "1396", media.Show)
	require.NoError(t, err)

	assert.Equal(t, "1396", src.gotID)
	assert.Equal(t, media.Show, src.gotKind)
	assert.Contains(t, string(html), `<img src="https://img.test/w.jpg" alt="Bryan Cranston">`)
	assert.Contains(t, string(html), "Character: Walter White")
	assert.Contains(t, string(html), `<p class="cast-name">Aaron Paul</p>`)
	assert.Contains(t, string(html), `alt="no photo"`)
}

func TestCastLoaderEmpty(t *testing.T) {
	html, err := CastLoader(&fakeSource{})(context.Background(), "1", media.Movie)
	require.NoError(t, err)
	assert.Contains(t, string(html), "any cast information")
}

func TestReviewsLoader(t *testing.T) {
	src := &fakeSource{reviews: []tmdb.Review{
		{Author: "Goddard", Content: "First paragraph.\r\n\r\nSecond <i>paragraph</i>."},
	}}

	html, err := ReviewsLoader(src)(context.Background(), "550", media.Movie)
	require.NoError(t, err)

	assert.Contains(t, string(html), "Author: Goddard")
	assert.Contains(t, string(html), "<p>First paragraph.</p>")
	assert.Contains(t, string(html), "<p>Second &lt;i&gt;paragraph&lt;/i&gt;.</p>")
}

func TestReviewsLoaderPropagatesError(t *testing.T) {
	_, err := ReviewsLoader(&fakeSource{err: errors.New("network error")})(context.Background(), "550", media.Movie)
	require.EqualError(t, err, "network error")
}
