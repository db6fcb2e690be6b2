// Package handlertest builds a wired fiber app with seeded users for handler
// tests.
package handlertest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/storage/memory/v2"
	"github.com/stretchr/testify/require"

	"github.com/atik-theme/atik-assistant/internal/auth"
	"github.com/atik-theme/atik-assistant/internal/cachestore"
	"github.com/atik-theme/atik-assistant/internal/config"
	"github.com/atik-theme/atik-assistant/internal/db/dbtest"
	"github.com/atik-theme/atik-assistant/internal/db/models"
	"github.com/atik-theme/atik-assistant/internal/host"
	"github.com/atik-theme/atik-assistant/internal/theme"
	"github.com/atik-theme/atik-assistant/internal/web/handler"
	"github.com/atik-theme/atik-assistant/internal/web/session"
	"github.com/atik-theme/atik-assistant/internal/widget"
	"github.com/atik-theme/atik-assistant/internal/widget/cache"
	"github.com/atik-theme/atik-assistant/internal/widget/categoryboxes"
)

// Passwords of the seeded users.
const (
	AdminPassword  = "admin-password"
	EditorPassword = "editor-password"
)

// Sidebars are the sidebars of the test theme.
func Sidebars() []config.Sidebar {
	return []config.Sidebar{
		{
			ID:           "home-sections",
			Name:         "Home Sections",
			BeforeWidget: `<section id="%[1]s" class="widget %[2]s">`,
			AfterWidget:  `</section>`,
			BeforeTitle:  `<h2>`,
			AfterTitle:   `</h2>`,
		},
	}
}

// Config returns a valid configuration for tests.
func Config() *config.Config {
	return &config.Config{
		DevMode: true,
		Title:   "Atik Test",
		Webserver: config.Webserver{
			URL:     "http://localhost",
			Port:    3000,
			Session: config.Session{ExpiryTime: time.Hour},
		},
		Theme:    config.Theme{Active: "atik"},
		Sidebars: Sidebars(),
	}
}

// Env is a fiber app with every collaborator a handler needs.
type Env struct {
	App    *fiber.App
	Deps   handler.Deps
	Cache  *cache.Cache
	Boxes  *categoryboxes.Widget
	Admin  *models.User
	Editor *models.User
}

// New wires the given handlers onto a fresh app. It replaces the global
// session store, so tests using it must not run in parallel.
func New(t *testing.T, services ...handler.Service) *Env {
	t.Helper()

	session.Init(memory.New())

	db := dbtest.New(t)
	authService := auth.NewService(db)
	require.NoError(t, authService.SeedRoles())

	adminRole, err := authService.RoleByName(auth.RoleAdmin)
	require.NoError(t, err)

	editorRole, err := authService.RoleByName(auth.RoleEditor)
	require.NoError(t, err)

	local := auth.NewLocalProvider(db)

	admin, err := local.CreateUser("admin", "admin@example.com", AdminPassword, "Admin", adminRole.ID)
	require.NoError(t, err)

	editor, err := local.CreateUser("editor", "editor@example.com", EditorPassword, "Editor", editorRole.ID)
	require.NoError(t, err)

	cfg := Config()
	views := theme.NewViews(false)
	outputCache := cache.New(cachestore.NewNamespaced(memory.New(), 0))
	engine := widget.NewEngine(views, widget.NewRegistry(), host.NewCatalog(db))

	boxes, err := categoryboxes.New(engine, outputCache)
	require.NoError(t, err)

	hooks := host.NewHooks()
	registry := host.NewRegistry(hooks)
	require.NoError(t, registry.Register(boxes))

	deps := handler.Deps{
		Cfg:     cfg,
		DB:      db,
		Auth:    authService,
		Widgets: host.NewWidgets(db, registry, host.NewSidebars(cfg.Sidebars)),
		Hooks:   hooks,
	}

	app := fiber.New(fiber.Config{Views: views})
	app.Use(auth.AddActorToLocals(authService))

	for _, s := range services {
		require.NoError(t, s.Init(app, deps))
	}

	return &Env{
		App:    app,
		Deps:   deps,
		Cache:  outputCache,
		Boxes:  boxes,
		Admin:  admin,
		Editor: editor,
	}
}

// Login stores a session for user and returns its cookie value.
func (e *Env) Login(t *testing.T, user *models.User) string {
	t.Helper()

	id, err := session.Start(*user, time.Hour)
	require.NoError(t, err)

	return id
}

// Do performs a request. A non-nil form is sent url-encoded.
func (e *Env) Do(t *testing.T, method, target string, form url.Values, cookie string) *http.Response {
	t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	}

	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: cookie})
	}

	resp, err := e.App.Test(req, -1)
	require.NoError(t, err)

	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

// Body reads the response body.
func Body(t *testing.T, resp *http.Response) string {
	t.Helper()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return string(b)
}
