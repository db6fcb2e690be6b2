package session

import (
	"testing"
	"time"

	"github.com/gofiber/storage/memory/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atik-theme/atik-assistant/internal/db/models"
)

func TestSessionRoundTrip(t *testing.T) {
	Init(memory.New())

	id, err := GenerateSessionID()
	require.NoError(t, err)
	assert.Len(t, id, 64)

	in := Data{User: models.User{ID: 3, Username: "editor"}}
	require.NoError(t, in.Write(id, time.Minute))

	var out Data
	require.NoError(t, out.Read(id))
	assert.Equal(t, uint64(3), out.User.ID)
	assert.Equal(t, "editor", out.User.Username)

	assert.False(t, out.CreatedAt.IsZero())

	require.NoError(t, Delete(id))
	require.ErrorIs(t, new(Data).Read(id), ErrSessionNotFound)
}

func TestStartDropsPassword(t *testing.T) {
	storage := memory.New()
	Init(storage)

	id, err := Start(models.User{ID: 5, Username: "admin", Password: "$argon2id$hash"}, time.Minute)
	require.NoError(t, err)

	raw, err := storage.Get(KeyPrefix + id)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "argon2id")

	var out Data
	require.NoError(t, out.Read(id))
	assert.Equal(t, uint64(5), out.User.ID)
	assert.Empty(t, out.User.Password)
}

func TestReadRejectsForeignEntries(t *testing.T) {
	storage := memory.New()
	Init(storage)

	require.NoError(t, storage.Set(KeyPrefix+"junk", []byte("not json"), time.Minute))
	require.NoError(t, storage.Set(KeyPrefix+"anon", []byte(`{"User":{}}`), time.Minute))

	require.ErrorIs(t, new(Data).Read("junk"), ErrSessionNotFound)
	require.ErrorIs(t, new(Data).Read("anon"), ErrSessionNotFound)
}

func TestInitRejectsNilStorage(t *testing.T) {
	assert.Panics(t, func() { Init(nil) })
}
