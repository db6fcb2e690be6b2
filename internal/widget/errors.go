package widget

import "errors"

var (
	// ErrDuplicateKey is returned when two descriptors of one schema share a key.
	ErrDuplicateKey = errors.New("duplicate setting key")

	// ErrInvalidDescriptor is returned when a descriptor fails validation.
	ErrInvalidDescriptor = errors.New("invalid setting descriptor")

	// ErrMissingSanitizer is returned when an extension type is registered without an update func.
	ErrMissingSanitizer = errors.New("extension type has no sanitizer")

	// ErrMissingRenderer is returned when an extension type is registered without a render func.
	ErrMissingRenderer = errors.New("extension type has no renderer")

	// ErrReservedType is returned when an extension name collides with a built-in kind.
	ErrReservedType = errors.New("extension type name is reserved")

	// ErrDuplicateType is returned when an extension type is registered twice.
	ErrDuplicateType = errors.New("extension type already registered")
)
