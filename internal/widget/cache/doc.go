// Package cache memoizes rendered widget markup in a host key-value store.
//
// Caching is fail-open: a disabled cache, a missing entry and an unreachable
// store all read as a Miss, and write failures are only logged.
package cache
