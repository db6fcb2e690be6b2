package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atik-theme/atik-assistant/internal/db/models"
	"github.com/atik-theme/atik-assistant/internal/web/session"
)

func login(t *testing.T, user *models.User) string {
	t.Helper()

	id, err := session.GenerateSessionID()
	require.NoError(t, err)
	require.NoError(t, (&session.Data{User: *user}).Write(id, time.Minute))

	return id
}

func get(t *testing.T, app *fiber.App, sessionID string) int {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: sessionID})
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	return resp.StatusCode
}

func TestRequirePermission(t *testing.T) {
	t.Parallel()

	s := newSeeded(t)

	app := fiber.New()
	app.Get("/", RequirePermission(s.svc, PermThemeSwitch), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	assert.Equal(t, fiber.StatusUnauthorized, get(t, app, ""))
	assert.Equal(t, fiber.StatusUnauthorized, get(t, app, "unknown-session"))
	assert.Equal(t, fiber.StatusForbidden, get(t, app, login(t, s.editor)))
	assert.Equal(t, fiber.StatusOK, get(t, app, login(t, s.admin)))
}

func TestAddActorToLocals(t *testing.T) {
	t.Parallel()

	s := newSeeded(t)

	var seen *Actor

	app := fiber.New()
	app.Use(AddActorToLocals(s.svc))
	app.Get("/", func(c *fiber.Ctx) error {
		seen = ActorFromContext(c)
		return c.SendStatus(fiber.StatusNoContent)
	})

	require.Equal(t, fiber.StatusNoContent, get(t, app, ""))
	assert.Nil(t, seen)

	require.Equal(t, fiber.StatusNoContent, get(t, app, login(t, s.editor)))
	require.NotNil(t, seen)
	assert.Equal(t, s.editor.ID, seen.UserID)
	assert.False(t, seen.Can(PermUnfilteredHTML))
}
