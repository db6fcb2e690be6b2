package cachestore

import "errors"

// ErrUnknownDriver is returned by Open for an unsupported cache driver.
var ErrUnknownDriver = errors.New("unknown cache driver")
