// Package uniuri generates random alphanumeric keys used where a cache entry
// needs a name nobody will look up again.
package uniuri
