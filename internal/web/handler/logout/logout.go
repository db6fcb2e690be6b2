// Package logout ends admin sessions.
package logout

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/atik-theme/atik-assistant/internal/web/handler"
	"github.com/atik-theme/atik-assistant/internal/web/handler/login"
	"github.com/atik-theme/atik-assistant/internal/web/session"
)

// Path is the path of the logout route.
const Path = handler.RootPath + "logout"

// Service is the logout handler service.
type Service struct {
	devMode bool
}

var _ handler.Service = (*Service)(nil)

// Handler is the logout handler.
var Handler = Service{} //nolint:gochecknoglobals

// Init initializes the logout handler.
func (s *Service) Init(app *fiber.App, deps handler.Deps) error {
	if app == nil || deps.Cfg == nil {
		return handler.ErrNilDeps
	}

	s.devMode = deps.Cfg.DevMode

	app.Get(Path, s.Logout)
	app.Post(Path, s.Logout)

	return nil
}

// Logout handles user logout by clearing the session.
func (s *Service) Logout(c *fiber.Ctx) error {
	sessionID := c.Cookies(session.CookieName)
	if sessionID != "" {
		if err := session.Delete(sessionID); err != nil {
			log.Error().Err(err).Msg("failed to delete session")
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    "",
		MaxAge:   -1,
		Secure:   !s.devMode,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.Redirect(login.Path)
}
