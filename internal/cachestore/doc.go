// Package cachestore provides the key-value stores behind the widget output
// cache and the session store: any fiber.Storage, including a go-redis
// backed one, namespaced into groups.
package cachestore
