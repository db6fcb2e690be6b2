package host

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/atik-theme/atik-assistant/internal/widget"
)

// Registry holds the widget types available to sidebars.
type Registry struct {
	mu      sync.RWMutex
	hooks   *Hooks
	widgets map[string]widget.Widget
}

// NewRegistry returns an empty registry whose widgets flush their cache on
// every event emitted by hooks.
func NewRegistry(hooks *Hooks) *Registry {
	if hooks == nil {
		hooks = NewHooks()
	}

	return &Registry{
		hooks:   hooks,
		widgets: make(map[string]widget.Widget),
	}
}

// Hooks returns the dispatcher the registry subscribes to.
func (r *Registry) Hooks() *Hooks {
	return r.hooks
}

// Register makes w available and subscribes its cache flush to the
// lifecycle events.
func (r *Registry) Register(w widget.Widget) error {
	meta := w.Meta()

	r.mu.Lock()
	if _, exists := r.widgets[meta.ID]; exists {
		r.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrDuplicateWidget, meta.ID)
	}

	r.widgets[meta.ID] = w
	r.mu.Unlock()

	for _, event := range Events() {
		r.hooks.On(event, func(ctx context.Context) {
			w.Flush(ctx)
		})
	}

	log.Info().
		Str("id", meta.ID).
		Str("name", meta.Name).
		Bool("selective_refresh", meta.SelectiveRefresh).
		Msg("widget registered")

	return nil
}

// Get returns the widget registered as id.
func (r *Registry) Get(id string) (widget.Widget, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.widgets[id]

	return w, ok
}

// All returns the registered widgets sorted by name.
func (r *Registry) All() []widget.Widget {
	r.mu.RLock()
	out := make([]widget.Widget, 0, len(r.widgets))
	for _, w := range r.widgets {
		out = append(out, w)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Meta(), out[j].Meta()
		if a.Name == b.Name {
			return a.ID < b.ID
		}

		return a.Name < b.Name
	})

	return out
}
