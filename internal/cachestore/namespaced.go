package cachestore

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/atik-theme/atik-assistant/internal/widget/cache"
)

// Namespaced adapts a fiber.Storage to cache.Store by prefixing every key
// with its group.
type Namespaced struct {
	storage fiber.Storage
	ttl     time.Duration
}

var _ cache.Store = (*Namespaced)(nil)

// NewNamespaced wraps storage. Entries never expire when ttl is 0.
func NewNamespaced(storage fiber.Storage, ttl time.Duration) *Namespaced {
	return &Namespaced{storage: storage, ttl: ttl}
}

// Get returns the value of key in group or cache.ErrNotFound.
func (n *Namespaced) Get(key, group string) ([]byte, error) {
	val, err := n.storage.Get(groupKey(key, group))
	if err != nil {
		return nil, err
	}

	// fiber storages answer a missing key with nil, nil
	if val == nil {
		return nil, cache.ErrNotFound
	}

	return val, nil
}

// Set stores value under key in group.
func (n *Namespaced) Set(key string, value []byte, group string) error {
	return n.storage.Set(groupKey(key, group), value, n.ttl)
}

// Delete removes key from group.
func (n *Namespaced) Delete(key, group string) error {
	return n.storage.Delete(groupKey(key, group))
}

// Storage returns the wrapped storage.
func (n *Namespaced) Storage() fiber.Storage {
	return n.storage
}

func groupKey(key, group string) string {
	if group == "" {
		return key
	}

	return group + ":" + key
}
