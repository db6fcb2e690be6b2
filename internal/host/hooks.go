package host

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

// Event is a site lifecycle event.
type Event string

// Events that invalidate rendered widget output.
const (
	EventContentSaved   Event = "content_saved"
	EventContentDeleted Event = "content_deleted"
	EventThemeSwitched  Event = "theme_switched"
)

// Events lists every lifecycle event.
func Events() []Event {
	return []Event{EventContentSaved, EventContentDeleted, EventThemeSwitched}
}

// Hook is a subscriber of an event.
type Hook func(ctx context.Context)

// Hooks dispatches lifecycle events to subscribers in subscription order.
type Hooks struct {
	mu    sync.RWMutex
	hooks map[Event][]Hook
}

// NewHooks returns a dispatcher without subscribers.
func NewHooks() *Hooks {
	return &Hooks{hooks: make(map[Event][]Hook)}
}

// On subscribes fn to event.
func (h *Hooks) On(event Event, fn Hook) {
	if fn == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.hooks[event] = append(h.hooks[event], fn)
}

// Emit calls the subscribers of event synchronously.
func (h *Hooks) Emit(ctx context.Context, event Event) {
	h.mu.RLock()
	subscribers := make([]Hook, len(h.hooks[event]))
	copy(subscribers, h.hooks[event])
	h.mu.RUnlock()

	log.Debug().Str("event", string(event)).Int("subscribers", len(subscribers)).Msg("emitting event")

	for _, fn := range subscribers {
		fn(ctx)
	}
}
