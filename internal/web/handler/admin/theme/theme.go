// Package theme switches the active theme. Switching flushes every widget
// cache.
package theme

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/atik-theme/atik-assistant/internal/auth"
	"github.com/atik-theme/atik-assistant/internal/db/controller/setting"
	"github.com/atik-theme/atik-assistant/internal/host"
	"github.com/atik-theme/atik-assistant/internal/sanitize"
	"github.com/atik-theme/atik-assistant/internal/web/handler"
	"github.com/atik-theme/atik-assistant/internal/web/handler/dashboard"
)

// Path is the route switching the theme.
const Path = handler.AdminPath + "/theme"

// Service is the theme handler service.
type Service struct {
	db    *gorm.DB
	hooks *host.Hooks
}

var _ handler.Service = (*Service)(nil)

// Handler is the theme handler.
var Handler = Service{} //nolint:gochecknoglobals

// Init initializes the theme handler.
func (s *Service) Init(app *fiber.App, deps handler.Deps) error {
	if app == nil || !deps.Valid() {
		return handler.ErrNilDeps
	}

	s.db = deps.DB
	s.hooks = deps.Hooks

	app.Post(Path, auth.RequirePermission(deps.Auth, auth.PermThemeSwitch), s.Post)

	return nil
}

// Post stores the submitted theme and emits the theme switch event.
func (s *Service) Post(c *fiber.Ctx) error {
	name := strings.TrimSpace(sanitize.Text(c.FormValue("theme")))
	if name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "theme name required")
	}

	if err := setting.SetString(s.db.WithContext(c.UserContext()), setting.ActiveTheme, name); err != nil {
		log.Error().Err(err).Str("theme", name).Msg("failed to switch theme")
		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}

	log.Info().Str("theme", name).Msg("theme switched")
	s.hooks.Emit(c.UserContext(), host.EventThemeSwitched)

	return c.Redirect(dashboard.Path)
}
