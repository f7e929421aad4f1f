package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// CatalogServer is a fake TMDB API. Responses are keyed by request path
// (e.g. /movie/550/videos); unknown paths answer 404 the way TMDB does.
type CatalogServer struct {
	*httptest.Server
	responses map[string]any
	failures  map[string]int

	mu   sync.Mutex
	hits []string
}

// NewCatalogServer starts a fake catalog that is closed when the test ends.
func NewCatalogServer(t *testing.T) *CatalogServer {
	t.Helper()

	cs := &CatalogServer{
		responses: make(map[string]any),
		failures:  make(map[string]int),
	}
	cs.Server = httptest.NewServer(http.HandlerFunc(cs.serve))
	t.Cleanup(cs.Close)
	return cs
}

// Respond registers a JSON payload for path.
func (cs *CatalogServer) Respond(path string, payload any) {
	cs.responses[path] = payload
}

// Fail makes path answer with status.
func (cs *CatalogServer) Fail(path string, status int) {
	cs.failures[path] = status
}

// Hits returns the request paths seen so far, in arrival order.
func (cs *CatalogServer) Hits() []string {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return append([]string(nil), cs.hits...)
}

func (cs *CatalogServer) serve(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimSuffix(r.URL.Path, "/")
	cs.mu.Lock()
	cs.hits = append(cs.hits, path)
	cs.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")

	if status, ok := cs.failures[path]; ok {
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]any{"status_code": status, "status_message": http.StatusText(status)})
		return
	}

	payload, ok := cs.responses[path]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status_code":    34,
			"status_message": "The resource you requested could not be found.",
		})
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}
