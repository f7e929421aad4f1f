package subview

import (
	"context"
	"errors"
	"html/template"
	"sync"
)

// ErrUnknownView is returned for a sub-view name with no registered loader.
var ErrUnknownView = errors.New("unknown sub-view")

// Status is the lifecycle of a sub-view region.
type Status int

const (
	// Idle means no sub-view path is active.
	Idle Status = iota
	// Loading means the loader has not finished; a placeholder is shown.
	Loading
	// Ready means Content holds the rendered sub-view.
	Ready
	// Failed means the loader returned Err.
	Failed
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Region is the sub-view area of a detail page. Its state never affects the
// rest of the page.
type Region struct {
	Name    Name
	Status  Status
	Content template.HTML
	Err     error
}

const placeholderHTML = template.HTML(`<div class="loader" role="status" aria-label="Loading"><span class="puff"></span></div>`)

// HTML returns the markup for the region in its current state.
func (r Region) HTML() template.HTML {
	switch r.Status {
	case Loading:
		return placeholderHTML
	case Ready:
		return r.Content
	case Failed:
		return template.HTML(`<p class="subview-error">` + template.HTMLEscapeString(string(r.Name)) +
			` unavailable: ` + template.HTMLEscapeString(r.Err.Error()) + `</p>`)
	default:
		return ""
	}
}

// Pending is a sub-view load in flight.
type Pending struct {
	mu     sync.Mutex
	done   chan struct{}
	region Region
}

func idle() *Pending {
	p := &Pending{done: make(chan struct{})}
	close(p.done)
	return p
}

// Region returns the region as it stands now.
func (p *Pending) Region() Region {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.region
}

// Done is closed once the loader has returned.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Await waits for the loader or ctx, whichever comes first.
func (p *Pending) Await(ctx context.Context) Region {
	select {
	case <-p.done:
	case <-ctx.Done():
	}
	return p.Region()
}
