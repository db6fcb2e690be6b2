package login

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/atik-theme/atik-assistant/internal/auth"
	"github.com/atik-theme/atik-assistant/internal/config"
	"github.com/atik-theme/atik-assistant/internal/web/handler"
	"github.com/atik-theme/atik-assistant/internal/web/session"
)

const (
	// Path is the path to the login page.
	Path = "/login"

	// TemplateName is the name of the login template.
	TemplateName = "pages/login"
)

// Form is the submitted login form.
type Form struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// Service is the login handler service.
type Service struct {
	cfg   *config.Config
	local *auth.LocalProvider
}

var _ handler.Service = (*Service)(nil)

// Handler is the login handler.
var Handler = Service{} //nolint:gochecknoglobals

// Init initializes the login handler.
func (s *Service) Init(app *fiber.App, deps handler.Deps) error {
	if app == nil || deps.Cfg == nil || deps.DB == nil {
		return handler.ErrNilDeps
	}

	s.cfg = deps.Cfg
	s.local = auth.NewLocalProvider(deps.DB)

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Post(handler.RouterRootPath, s.Post)
	})

	return nil
}

func (s *Service) render(c *fiber.Ctx, username string, err error) error {
	data := fiber.Map{
		"Title":    s.cfg.Title,
		"Username": username,
	}

	if err != nil {
		data["Error"] = err.Error()
	}

	return c.Render(TemplateName, data, handler.BaseLayout)
}

// Get handles the login page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	return s.render(c, "", nil)
}

// Post handles the login form submission.
func (s *Service) Post(c *fiber.Ctx) error {
	form := new(Form)

	if err := c.BodyParser(form); err != nil {
		return s.render(c, "", ErrInvalidFormData)
	}

	user, err := s.local.Authenticate(form.Username, form.Password)
	if err != nil {
		if !errors.Is(err, auth.ErrUserNotFound) && !errors.Is(err, auth.ErrInvalidPassword) &&
			!errors.Is(err, auth.ErrUserAccountDisabled) {
			log.Error().Err(err).Msg("failed to authenticate user")
			return s.render(c, form.Username, ErrInternalServerError)
		}

		log.Info().Str("username", form.Username).Err(err).Msg("login rejected")

		return s.render(c, form.Username, ErrInvalidCredentials)
	}

	sessionID, err := session.Start(*user, s.cfg.Webserver.Session.ExpiryTime)
	if err != nil {
		log.Error().Err(err).Msg("failed to start session")
		return s.render(c, form.Username, ErrInternalServerError)
	}

	cookieSettings := &fiber.Cookie{
		Name:     session.CookieName,
		Value:    sessionID,
		MaxAge:   int(s.cfg.Webserver.Session.ExpiryTime.Seconds()),
		Secure:   true,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	}

	if s.cfg.DevMode {
		cookieSettings.Secure = false
	}

	c.Cookie(cookieSettings)

	return c.Redirect(handler.AdminPath)
}
