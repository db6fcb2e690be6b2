package widget

import (
	"fmt"
	"io"
	"sync"
)

// FieldContext is everything a field renderer needs to draw one control.
type FieldContext struct {
	Binding    Binding
	Key        string
	Descriptor Descriptor
	Instance   Instance
	// Value is the stored value or the descriptor default.
	Value any
}

// Name returns the form name of the control.
func (f FieldContext) Name() string { return f.Binding.FieldName(f.Key) }

// ID returns the element id of the control.
func (f FieldContext) ID() string { return f.Binding.FieldID(f.Key) }

// RenderFunc draws the admin control of an extension field.
type RenderFunc func(w io.Writer, field FieldContext) error

// UpdateFunc sanitizes the submitted value of an extension field. It never
// fails; anything it cannot use must be dropped.
type UpdateFunc func(submitted any, key string, d Descriptor) any

// FieldHandler is the pair registered for an extension type.
type FieldHandler struct {
	Render RenderFunc
	Update UpdateFunc
}

// Registry maps extension type names to their handlers.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]FieldHandler
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]FieldHandler)}
}

// Register adds an extension type. Both funcs are required.
func (r *Registry) Register(name string, h FieldHandler) error {
	if _, builtin := ParseKind(name); builtin {
		return fmt.Errorf("%w: %q", ErrReservedType, name)
	}

	if h.Update == nil {
		return fmt.Errorf("%w: %q", ErrMissingSanitizer, name)
	}

	if h.Render == nil {
		return fmt.Errorf("%w: %q", ErrMissingRenderer, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateType, name)
	}

	r.handlers[name] = h

	return nil
}

// Lookup returns the handler registered for name.
func (r *Registry) Lookup(name string) (FieldHandler, bool) {
	if r == nil {
		return FieldHandler{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.handlers[name]

	return h, ok
}
