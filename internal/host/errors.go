package host

import "errors"

var (
	// ErrDuplicateWidget is returned when a widget type id is registered twice.
	ErrDuplicateWidget = errors.New("widget type already registered")

	// ErrUnknownWidget is returned for a widget type id nobody registered.
	ErrUnknownWidget = errors.New("unknown widget type")

	// ErrUnknownSidebar is returned for a sidebar id missing from the config.
	ErrUnknownSidebar = errors.New("unknown sidebar")
)
