// Package account lets a logged in user change their password.
package account

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/atik-theme/atik-assistant/internal/auth"
	"github.com/atik-theme/atik-assistant/internal/config"
	"github.com/atik-theme/atik-assistant/internal/web/handler"
	"github.com/atik-theme/atik-assistant/internal/web/navigation"
)

const (
	// Path is the account page.
	Path = handler.AdminPath + "/account"

	// TemplateName is the name of the account template.
	TemplateName = "admin/account"

	minPasswordLen = 8
)

// Form is the submitted password change.
type Form struct {
	OldPassword string `form:"old_password" validate:"required"`
	NewPassword string `form:"new_password" validate:"required,min=8,max=128"`
	Confirm     string `form:"confirm"      validate:"eqfield=NewPassword"`
}

// Service is the account handler service.
type Service struct {
	cfg      *config.Config
	local    *auth.LocalProvider
	validate *validator.Validate
}

var _ handler.Service = (*Service)(nil)

// Handler is the account handler.
var Handler = Service{} //nolint:gochecknoglobals

// Init initializes the account handler.
func (s *Service) Init(app *fiber.App, deps handler.Deps) error {
	if app == nil || !deps.Valid() {
		return handler.ErrNilDeps
	}

	s.cfg = deps.Cfg
	s.local = auth.NewLocalProvider(deps.DB)
	s.validate = validator.New(validator.WithRequiredStructEnabled())

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Post(handler.RouterRootPath, s.Post)
	})

	return nil
}

func (s *Service) render(c *fiber.Ctx, actor *auth.Actor, msg string, saved bool) error {
	return c.Render(TemplateName, fiber.Map{
		"Title":      s.cfg.Title,
		"Navigation": navigation.NewContext("Account", "account", actor.Permissions).AddBreadcrumb("Account", Path, true),
		"Error":      msg,
		"Saved":      saved,
		"MinLength":  minPasswordLen,
	}, handler.AdminLayout)
}

// Get shows the password form.
func (s *Service) Get(c *fiber.Ctx) error {
	actor := auth.ActorFromContext(c)
	if actor == nil {
		return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
	}

	return s.render(c, actor, "", false)
}

// Post changes the password of the current user.
func (s *Service) Post(c *fiber.Ctx) error {
	actor := auth.ActorFromContext(c)
	if actor == nil {
		return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
	}

	form := new(Form)
	if err := c.BodyParser(form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := s.validate.Struct(form); err != nil {
		c.Status(fiber.StatusUnprocessableEntity)
		return s.render(c, actor, "The new password needs at least 8 characters and must match its confirmation.", false)
	}

	err := s.local.ChangePassword(actor.UserID, form.OldPassword, form.NewPassword)
	switch {
	case errors.Is(err, auth.ErrInvalidOldPassword):
		c.Status(fiber.StatusUnprocessableEntity)
		return s.render(c, actor, err.Error(), false)
	case err != nil:
		log.Error().Err(err).Uint64("user_id", actor.UserID).Msg("failed to change password")
		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}

	log.Info().Uint64("user_id", actor.UserID).Msg("password changed")

	return s.render(c, actor, "", true)
}
