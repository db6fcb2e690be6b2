package cache

import "errors"

// DefaultGroup is the store namespace used for widget output.
const DefaultGroup = "widget"

// ErrNotFound is returned by a Store when key holds no value.
var ErrNotFound = errors.New("cache: entry not found")

// Store is the host cache contract.
type Store interface {
	Get(key, group string) ([]byte, error)
	Set(key string, value []byte, group string) error
	Delete(key, group string) error
}
