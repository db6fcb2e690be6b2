package cachestore

import (
	"testing"
	"time"

	"github.com/gofiber/storage/memory/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atik-theme/atik-assistant/internal/config"
	"github.com/atik-theme/atik-assistant/internal/widget/cache"
)

func TestNamespaced(t *testing.T) {
	t.Parallel()

	storage := memory.New()
	store := NewNamespaced(storage, 0)

	_, err := store.Get("w", "widget")
	require.ErrorIs(t, err, cache.ErrNotFound)

	require.NoError(t, store.Set("w", []byte("a"), "widget"))
	require.NoError(t, store.Set("w", []byte("b"), "other"))

	got, err := store.Get("w", "widget")
	require.NoError(t, err)
	assert.Equal(t, []byte("a"), got)

	raw, err := storage.Get("other:w")
	require.NoError(t, err)
	assert.Equal(t, []byte("b"), raw)

	require.NoError(t, store.Delete("w", "widget"))

	_, err = store.Get("w", "widget")
	require.ErrorIs(t, err, cache.ErrNotFound)

	got, err = store.Get("w", "other")
	require.NoError(t, err)
	assert.Equal(t, []byte("b"), got)
}

func TestNamespacedTTL(t *testing.T) {
	t.Parallel()

	store := NewNamespaced(memory.New(memory.Config{GCInterval: 100 * time.Millisecond}), time.Second)
	require.NoError(t, store.Set("w", []byte("a"), "widget"))

	assert.Eventually(t, func() bool {
		_, err := store.Get("w", "widget")
		return err != nil
	}, 4*time.Second, 50*time.Millisecond)
}

func TestOpen(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}

	s, err := Open(cfg)
	require.NoError(t, err)
	assert.IsType(t, &memory.Storage{}, s)

	cfg.Cache.Driver = DriverRedis
	cfg.Cache.Redis.Addr = "127.0.0.1:0"
	s, err = Open(cfg)
	require.NoError(t, err)
	assert.IsType(t, &RedisStorage{}, s)
	require.NoError(t, s.Close())

	cfg.Cache.Driver = DriverDB
	cfg.DB.GormEngine = config.EngineSQLite
	s, err = Open(cfg)
	require.NoError(t, err)
	assert.IsType(t, &memory.Storage{}, s)

	cfg.Cache.Driver = "etcd"
	_, err = Open(cfg)
	require.ErrorIs(t, err, ErrUnknownDriver)
}
