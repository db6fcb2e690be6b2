package widget

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var descriptorValidator = validator.New() //nolint:gochecknoglobals

// Schema is the ordered set of descriptors of one widget.
type Schema struct {
	descriptors []Descriptor
	index       map[string]int
}

// NewSchema validates descriptors and keeps them in the given order.
func NewSchema(descriptors ...Descriptor) (*Schema, error) {
	s := &Schema{
		descriptors: make([]Descriptor, 0, len(descriptors)),
		index:       make(map[string]int, len(descriptors)),
	}

	for _, d := range descriptors {
		if err := validateDescriptor(d); err != nil {
			return nil, err
		}

		if _, exists := s.index[d.Key]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, d.Key)
		}

		s.index[d.Key] = len(s.descriptors)
		s.descriptors = append(s.descriptors, d)
	}

	return s, nil
}

// MustSchema is NewSchema for statically declared widgets.
func MustSchema(descriptors ...Descriptor) *Schema {
	s, err := NewSchema(descriptors...)
	if err != nil {
		panic(err)
	}

	return s
}

func validateDescriptor(d Descriptor) error {
	if err := descriptorValidator.Struct(d); err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidDescriptor, d.Key, err)
	}

	if !d.Kind.Valid() {
		return fmt.Errorf("%w %q: unknown kind %d", ErrInvalidDescriptor, d.Key, d.Kind)
	}

	if (d.Kind == KindExtension) != (d.Extension != "") {
		return fmt.Errorf("%w %q: extension name must be set only for extension kinds", ErrInvalidDescriptor, d.Key)
	}

	return nil
}

// Len returns the number of descriptors.
func (s *Schema) Len() int {
	if s == nil {
		return 0
	}

	return len(s.descriptors)
}

// Descriptors returns a copy of the descriptors in schema order.
func (s *Schema) Descriptors() []Descriptor {
	if s == nil {
		return nil
	}

	out := make([]Descriptor, len(s.descriptors))
	copy(out, s.descriptors)

	return out
}

// Lookup returns the descriptor stored under key.
func (s *Schema) Lookup(key string) (Descriptor, bool) {
	if s == nil {
		return Descriptor{}, false
	}

	i, ok := s.index[key]
	if !ok {
		return Descriptor{}, false
	}

	return s.descriptors[i], true
}

// Defaults builds the instance used for a fresh placement.
func (s *Schema) Defaults() Instance {
	inst := make(Instance, s.Len())

	for _, d := range s.Descriptors() {
		if d.Kind == KindDescription {
			continue
		}

		inst[d.Key] = d.Default
	}

	return inst
}
