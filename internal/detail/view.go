package detail

import (
	"context"
	"log/slog"
	"sync"

	"github.com/lepinkainen/marquee/internal/media"
	"github.com/lepinkainen/marquee/internal/metrics"
	"github.com/sourcegraph/conc"
)

// Catalog is the subset of the catalog client a View needs.
type Catalog interface {
	Details(ctx context.Context, id string, kind media.Kind) (media.Record, error)
	Videos(ctx context.Context, id string, kind media.Kind) ([]media.VideoCandidate, error)
}

// State is what the page renders from. The fields are set independently:
// an error can sit next to a record that loaded fine.
type State struct {
	Record     media.Record
	TrailerKey string
	HasTrailer bool
	LastError  error
}

// cycle tags the fetches issued for one (id, kind) pair.
type cycle struct {
	gen  uint64
	id   string
	kind media.Kind
}

// View owns the State for one mounted detail page.
type View struct {
	catalog    Catalog
	guardStale bool
	logger     *slog.Logger

	mu      sync.Mutex
	state   State
	current cycle
	cancels []context.CancelFunc

	wg conc.WaitGroup
}

// Option configures a View.
type Option func(*View)

// WithStaleGuard controls whether completions from a superseded cycle are
// discarded. It is on by default; turning it off lets a late response from
// an earlier id overwrite the current state.
func WithStaleGuard(enabled bool) Option {
	return func(v *View) {
		v.guardStale = enabled
	}
}

// WithLogger sets the logger used for fetch failures and stale discards.
func WithLogger(logger *slog.Logger) Option {
	return func(v *View) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// NewView creates a View backed by catalog.
func NewView(catalog Catalog, opts ...Option) *View {
	v := &View{
		catalog:    catalog,
		guardStale: true,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Navigate points the view at p. When the (id, kind) pair differs from the
// current one a new cycle starts: the state is reset and the metadata and
// video fetches are issued concurrently. Navigate does not wait for them.
func (v *View) Navigate(ctx context.Context, p Params) {
	id, kind := p.key()

	v.mu.Lock()
	if v.current.gen != 0 && v.current.id == id && v.current.kind == kind {
		v.mu.Unlock()
		return
	}

	if v.guardStale {
		v.cancelAll()
	}
	cycleCtx, cancel := context.WithCancel(ctx)
	v.cancels = append(v.cancels, cancel)

	c := cycle{gen: v.current.gen + 1, id: id, kind: kind}
	v.current = c
	v.state = State{}
	v.mu.Unlock()

	v.logger.Debug("Starting detail fetch cycle", "id", id, "kind", kind, "cycle", c.gen)

	v.wg.Go(func() { v.fetchDetails(cycleCtx, c) })
	v.wg.Go(func() { v.fetchVideos(cycleCtx, c) })
}

// Load navigates to p and waits for both fetches to complete.
func (v *View) Load(ctx context.Context, p Params) State {
	v.Navigate(ctx, p)
	v.Wait()
	return v.Snapshot()
}

// Wait blocks until every fetch issued so far has completed.
func (v *View) Wait() {
	v.wg.Wait()
}

// Close cancels outstanding fetches and waits for them to return.
func (v *View) Close() {
	v.mu.Lock()
	v.cancelAll()
	v.mu.Unlock()
	v.wg.Wait()
}

// cancelAll must be called with mu held.
func (v *View) cancelAll() {
	for _, cancel := range v.cancels {
		cancel()
	}
	v.cancels = nil
}

// Snapshot returns a copy of the current state.
func (v *View) Snapshot() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *View) fetchDetails(ctx context.Context, c cycle) {
	rec, err := v.catalog.Details(ctx, c.id, c.kind)
	v.apply(c, "details", func(s *State) {
		if err != nil {
			s.LastError = err
			return
		}
		s.Record = rec
	}, err)
}

func (v *View) fetchVideos(ctx context.Context, c cycle) {
	videos, err := v.catalog.Videos(ctx, c.id, c.kind)
	v.apply(c, "videos", func(s *State) {
		if err != nil {
			s.LastError = err
			return
		}
		if s.HasTrailer {
			return
		}
		if key, ok := media.SelectTrailer(videos); ok {
			s.TrailerKey = key
			s.HasTrailer = true
		}
	}, err)
}

// apply runs update against the state unless c has been superseded and the
// stale guard is on.
func (v *View) apply(c cycle, fetch string, update func(*State), fetchErr error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if c != v.current && v.guardStale {
		metrics.StaleDiscards.WithLabelValues(fetch).Inc()
		v.logger.Debug("Discarding stale fetch result", "fetch", fetch, "id", c.id, "cycle", c.gen, "current", v.current.gen)
		return
	}

	if fetchErr != nil {
		v.logger.Warn("Catalog fetch failed", "fetch", fetch, "id", c.id, "kind", c.kind, "error", fetchErr)
	}
	update(&v.state)
}
