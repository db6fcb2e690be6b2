// Package session keeps the login sessions of the admin area.
//
// Sessions live in the same kind of fiber.Storage as the widget cache, so
// every entry is stored under a KeyPrefix-ed key.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/atik-theme/atik-assistant/internal/db/models"
)

const (
	// CookieName is the name of the login cookie.
	CookieName = "session"

	// KeyPrefix namespaces session entries in the storage.
	KeyPrefix = "atik_session:"

	idBytes = 32
)

// Store is the global session store instance.
var Store *session.Store //nolint:gochecknoglobals

// Data is what a login session remembers about its user.
type Data struct {
	User      models.User
	CreatedAt time.Time
}

// Start opens a session for user and returns its id. The password hash is
// never written to the storage.
func Start(user models.User, exp time.Duration) (string, error) {
	id, err := GenerateSessionID()
	if err != nil {
		return "", err
	}

	user.Password = ""

	data := &Data{User: user}
	if err = data.Write(id, exp); err != nil {
		return "", err
	}

	return id, nil
}

// Write stores the session under sessionID for exp.
func (s *Data) Write(sessionID string, exp time.Duration) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}

	out, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	return Store.Storage.Set(key(sessionID), out, exp)
}

// Read loads the session stored under sessionID. Unknown, expired and
// unreadable sessions are ErrSessionNotFound.
func (s *Data) Read(sessionID string) error {
	raw, err := Store.Storage.Get(key(sessionID))
	if err != nil {
		return err
	}

	if len(raw) == 0 {
		return ErrSessionNotFound
	}

	if err = json.Unmarshal(raw, s); err != nil || s.User.ID == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// Delete ends the session with the given id.
func Delete(sessionID string) error {
	return Store.Storage.Delete(key(sessionID))
}

// Init sets the storage backing all sessions.
func Init(storage fiber.Storage) {
	if storage == nil {
		panic("storage is nil")
	}

	Store = session.New(session.Config{
		Storage: storage,
	})
}

// GenerateSessionID returns a random 256 bit id, hex encoded.
func GenerateSessionID() (string, error) {
	b := make([]byte, idBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}

func key(sessionID string) string {
	return KeyPrefix + sessionID
}
