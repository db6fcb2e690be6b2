package logout

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atik-theme/atik-assistant/internal/web/handler/handlertest"
	"github.com/atik-theme/atik-assistant/internal/web/handler/login"
	"github.com/atik-theme/atik-assistant/internal/web/session"
)

func TestLogoutDeletesSession(t *testing.T) {
	env := handlertest.New(t, &Service{})
	cookie := env.Login(t, env.Admin)

	resp := env.Do(t, fiber.MethodPost, Path, nil, cookie)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, login.Path, resp.Header.Get(fiber.HeaderLocation))

	assert.ErrorIs(t, new(session.Data).Read(cookie), session.ErrSessionNotFound)

	var cleared bool
	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName {
			cleared = c.Value == ""
		}
	}

	assert.True(t, cleared, "session cookie is cleared")
}

func TestLogoutWithoutSession(t *testing.T) {
	env := handlertest.New(t, &Service{})

	resp := env.Do(t, fiber.MethodGet, Path, nil, "")
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
}
