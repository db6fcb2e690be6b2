// Package dashboard provides the landing page of the admin area.
package dashboard

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/atik-theme/atik-assistant/internal/auth"
	"github.com/atik-theme/atik-assistant/internal/config"
	"github.com/atik-theme/atik-assistant/internal/db/controller/content"
	"github.com/atik-theme/atik-assistant/internal/db/controller/placement"
	"github.com/atik-theme/atik-assistant/internal/db/controller/setting"
	"github.com/atik-theme/atik-assistant/internal/host"
	"github.com/atik-theme/atik-assistant/internal/web/handler"
	"github.com/atik-theme/atik-assistant/internal/web/navigation"
)

const (
	// Path is the path to the dashboard page.
	Path = handler.AdminPath

	// TemplateName is the name of the dashboard template.
	TemplateName = "admin/dashboard"
)

// Data represents the dashboard data.
type Data struct {
	ActiveTheme string
	WidgetTypes int
	Placements  int
	Content     int
	CanSwitch   bool
}

// Service is the dashboard handler service.
type Service struct {
	cfg     *config.Config
	db      *gorm.DB
	widgets *host.Widgets
}

var _ handler.Service = (*Service)(nil)

// Handler is the dashboard handler.
var Handler = Service{} //nolint:gochecknoglobals

// Init initializes the dashboard handler.
func (s *Service) Init(app *fiber.App, deps handler.Deps) error {
	if app == nil || !deps.Valid() {
		return handler.ErrNilDeps
	}

	s.cfg = deps.Cfg
	s.db = deps.DB
	s.widgets = deps.Widgets

	app.Get(Path, s.Get)

	return nil
}

// ActiveTheme returns the stored theme name, or the configured one.
func ActiveTheme(db *gorm.DB, cfg *config.Config) string {
	name, err := setting.String(db, setting.ActiveTheme, cfg.Theme.Active)
	if err != nil {
		log.Error().Err(err).Msg("failed to read active theme")
		return cfg.Theme.Active
	}

	return name
}

// Get handles the dashboard page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	actor := auth.ActorFromContext(c)

	var permissions []string
	if actor != nil {
		permissions = actor.Permissions
	}

	nav := navigation.NewContext("Dashboard", "dashboard", permissions)
	db := s.db.WithContext(c.UserContext())

	placements, err := placement.List(db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list placements")
		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}

	items, err := content.List(db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list content")
		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}

	return c.Render(TemplateName, fiber.Map{
		"Title":      s.cfg.Title,
		"Navigation": nav,
		"Data": Data{
			ActiveTheme: ActiveTheme(db, s.cfg),
			WidgetTypes: len(s.widgets.Registry().All()),
			Placements:  len(placements),
			Content:     len(items),
			CanSwitch:   actor.Can(auth.PermThemeSwitch),
		},
	}, handler.AdminLayout)
}
