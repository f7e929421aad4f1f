// Package subview resolves the nested views of a detail page (cast,
// reviews). Loaders are registered up front and only run when their path
// is requested.
package subview

import (
	"context"
	"fmt"
	"html/template"
	"sync"

	"github.com/lepinkainen/marquee/internal/media"
)

// Name identifies a sub-view by its path segment.
type Name string

const (
	// Cast lists the credited cast.
	Cast Name = "cast"
	// Reviews lists user reviews.
	Reviews Name = "reviews"
)

// Loader produces the HTML of one sub-view for an item.
type Loader func(ctx context.Context, id string, kind media.Kind) (template.HTML, error)

// Registry maps sub-view names to loaders.
type Registry struct {
	mu      sync.RWMutex
	loaders map[Name]Loader
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{loaders: make(map[Name]Loader)}
}

// Register binds name to loader, replacing any earlier binding.
func (r *Registry) Register(name Name, loader Loader) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loaders[name] = loader
}

// Has reports whether name has a loader.
func (r *Registry) Has(name Name) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.loaders[name]
	return ok
}

// Start begins loading name in the background. An empty name yields an idle
// region that never loads anything.
func (r *Registry) Start(ctx context.Context, name Name, id string, kind media.Kind) (*Pending, error) {
	if name == "" {
		return idle(), nil
	}

	r.mu.RLock()
	loader, ok := r.loaders[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownView, name)
	}

	p := &Pending{
		done:   make(chan struct{}),
		region: Region{Name: name, Status: Loading},
	}
	go func() {
		defer close(p.done)
		content, err := loader(ctx, id, kind)

		p.mu.Lock()
		defer p.mu.Unlock()
		if err != nil {
			p.region.Status = Failed
			p.region.Err = err
			return
		}
		p.region.Status = Ready
		p.region.Content = content
	}()
	return p, nil
}

// Resolve loads name and waits for it, or until ctx is done, in which case
// the region is returned still loading.
func (r *Registry) Resolve(ctx context.Context, name Name, id string, kind media.Kind) (Region, error) {
	p, err := r.Start(ctx, name, id, kind)
	if err != nil {
		return Region{}, err
	}
	return p.Await(ctx), nil
}
