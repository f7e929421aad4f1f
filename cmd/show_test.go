package cmd

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/lepinkainen/marquee/internal/testutil"
	"gopkg.in/yaml.v3"
)

func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = orig })
	return &buf
}

func fightClub(cs *testutil.CatalogServer) {
	cs.Respond("/movie/550", map[string]any{
		"id":             550,
		"title":          "Fight Club",
		"original_title": "Fight Club",
		"release_date":   "1999-10-15",
		"runtime":        139,
		"genres":         []map[string]any{{"id": 18, "name": "Drama"}},
	})
	cs.Respond("/movie/550/videos", map[string]any{
		"results": []map[string]any{{"name": "Fight Club | #TBT Trailer", "key": "qtRKdVHc-cE"}},
	})
}

func TestShowHTMLToStdout(t *testing.T) {
	cs := testutil.NewCatalogServer(t)
	fightClub(cs)
	testutil.SetTestConfig(t, cs.URL)
	out := captureStdout(t)

	err := (&ShowCmd{Path: "/movies/550", Format: "html"}).Run(context.Background())
	assert.NoError(t, err)

	html := out.String()
	assert.Contains(t, html, "Fight Club")
	assert.Contains(t, html, "139 minutes")
	assert.Contains(t, html, "https://www.youtube.com/embed/qtRKdVHc-cE")
}

func TestShowYAMLToFile(t *testing.T) {
	cs := testutil.NewCatalogServer(t)
	fightClub(cs)
	cs.Fail("/movie/550/credits", http.StatusInternalServerError)
	testutil.SetTestConfig(t, cs.URL)
	env := testutil.NewTestEnv(t)

	err := (&ShowCmd{Path: "/movies/550/cast", Format: "yaml", Output: env.Path("page.yaml")}).Run(context.Background())
	assert.NoError(t, err)

	var got map[string]any
	assert.NoError(t, yaml.Unmarshal([]byte(env.ReadFileString("page.yaml")), &got))
	assert.Equal(t, "movie", got["kind"])
	assert.Equal(t, "550", got["id"])
	assert.Equal(t, "qtRKdVHc-cE", got["trailer_key"])
	assert.Equal(t, "cast", got["subview"])
	assert.Equal(t, "failed", got["subview_status"])

	record, ok := got["record"].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "Fight Club", record["title"])
	assert.Equal(t, 139, record["runtime"])
}

func TestShowJSONCarriesError(t *testing.T) {
	cs := testutil.NewCatalogServer(t)
	testutil.SetTestConfig(t, cs.URL)
	out := captureStdout(t)

	err := (&ShowCmd{Path: "/tv/42", Format: "json"}).Run(context.Background())
	assert.NoError(t, err)

	assert.Contains(t, out.String(), `"kind": "show"`)
	assert.Contains(t, out.String(), `"error": "tmdb: unexpected status 404: The resource you requested could not be found."`)
	assert.NotContains(t, out.String(), `"record"`)
}

func TestShowRejectsUnknownKind(t *testing.T) {
	testutil.SetTestConfig(t, "http://catalog.test")

	err := (&ShowCmd{Path: "/people/1", Format: "html"}).Run(context.Background())
	assert.Error(t, err)
}

func TestShowKeepsExistingOutput(t *testing.T) {
	cs := testutil.NewCatalogServer(t)
	fightClub(cs)
	testutil.SetTestConfig(t, cs.URL)
	env := testutil.NewTestEnv(t)
	env.WriteFileString("page.html", "keep me")

	cmd := &ShowCmd{Path: "/movies/550", Format: "html", Output: env.Path("page.html")}
	assert.NoError(t, cmd.Run(context.Background()))
	assert.Equal(t, "keep me", env.ReadFileString("page.html"))

	cmd.Overwrite = true
	assert.NoError(t, cmd.Run(context.Background()))
	assert.Contains(t, env.ReadFileString("page.html"), "Fight Club")
}
