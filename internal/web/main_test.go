package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atik-theme/atik-assistant/internal/theme"
	"github.com/atik-theme/atik-assistant/internal/web/handler"
	"github.com/atik-theme/atik-assistant/internal/web/handler/handlertest"
	"github.com/atik-theme/atik-assistant/internal/web/session"
)

func newTestService(t *testing.T) (*Service, *handlertest.Env) {
	t.Helper()

	env := handlertest.New(t)

	s, err := New(env.Deps, theme.NewViews(false))
	require.NoError(t, err)

	return s, env
}

func get(t *testing.T, s *Service, target, cookie string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodGet, target, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: cookie})
	}

	resp, err := s.App.Test(req, -1)
	require.NoError(t, err)

	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func TestNewRejectsMissingDeps(t *testing.T) {
	_, err := New(handler.Deps{}, theme.NewViews(false))
	assert.ErrorIs(t, err, handler.ErrNilDeps)
}

func TestHealth(t *testing.T) {
	s, _ := newTestService(t)

	assert.Equal(t, fiber.StatusOK, get(t, s, HealthPath, "").StatusCode)

	s.alive.Store(false)
	assert.Equal(t, fiber.StatusServiceUnavailable, get(t, s, HealthPath, "").StatusCode)
}

func TestMetricsAndStatic(t *testing.T) {
	s, _ := newTestService(t)

	resp := get(t, s, MetricsPath, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "go_goroutines")

	resp = get(t, s, "/static/js/widget-features.js", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequestIDHeader(t *testing.T) {
	s, _ := newTestService(t)

	resp := get(t, s, HealthPath, "")
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
}

func TestAdminRedirects(t *testing.T) {
	s, env := newTestService(t)

	resp := get(t, s, "/admin/widgets", "")
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get(fiber.HeaderLocation))

	cookie := env.Login(t, env.Admin)

	resp = get(t, s, "/login", cookie)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, handler.AdminPath, resp.Header.Get(fiber.HeaderLocation))

	assert.Equal(t, fiber.StatusOK, get(t, s, "/admin/widgets", cookie).StatusCode)
	assert.Equal(t, fiber.StatusOK, get(t, s, "/", "").StatusCode)
}
