package daemon

import "errors"

// ErrNilConfig is returned when the daemon is created without configuration.
var ErrNilConfig = errors.New("config is nil")
