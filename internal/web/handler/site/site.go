// Package site serves the public pages with their widget sidebars.
package site

import (
	"errors"
	"html/template"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/atik-theme/atik-assistant/internal/auth"
	"github.com/atik-theme/atik-assistant/internal/config"
	"github.com/atik-theme/atik-assistant/internal/db/controller/content"
	"github.com/atik-theme/atik-assistant/internal/db/models"
	"github.com/atik-theme/atik-assistant/internal/host"
	"github.com/atik-theme/atik-assistant/internal/web/handler"
)

const (
	// ContentPath is the route of a single page or post.
	ContentPath = "/content/:id"

	// TemplateName is the name of the page template.
	TemplateName = "pages/home"

	// NoCacheQuery renders every widget fresh for users managing widgets.
	NoCacheQuery = "nocache"
)

// SidebarView is a rendered sidebar.
type SidebarView struct {
	ID     string
	Name   string
	Markup template.HTML
}

// ContentView is the viewed page or post.
type ContentView struct {
	ID    uint64
	Type  models.ContentType
	Title string
	Body  template.HTML
}

// Service is the public site handler service.
type Service struct {
	cfg     *config.Config
	db      *gorm.DB
	widgets *host.Widgets
}

var _ handler.Service = (*Service)(nil)

// Handler is the public site handler.
var Handler = Service{} //nolint:gochecknoglobals

// Init initializes the site handler.
func (s *Service) Init(app *fiber.App, deps handler.Deps) error {
	if app == nil || !deps.Valid() {
		return handler.ErrNilDeps
	}

	s.cfg = deps.Cfg
	s.db = deps.DB
	s.widgets = deps.Widgets

	app.Get(handler.RootPath, s.Home)
	app.Get(ContentPath, s.Content)

	return nil
}

// Home renders the front page.
func (s *Service) Home(c *fiber.Ctx) error {
	return s.render(c, nil)
}

// Content renders a published page or post.
func (s *Service) Content(c *fiber.Ctx) error {
	id, err := handler.ParamID(c, "id")
	if err != nil {
		return err
	}

	item, err := content.Get(s.db.WithContext(c.UserContext()), id)
	if errors.Is(err, content.ErrContentNotFound) {
		return fiber.ErrNotFound
	}

	if err != nil {
		log.Error().Err(err).Uint64("content_id", id).Msg("failed to load content")
		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}

	if item.Status != models.StatusPublish {
		return fiber.ErrNotFound
	}

	return s.render(c, item)
}

func (s *Service) render(c *fiber.Ctx, item *models.Content) error {
	opts := host.RenderOptions{}

	data := fiber.Map{
		"Title": s.cfg.Title,
	}

	if item != nil {
		opts.ContentID = item.ID
		// bodies are filtered on save unless the author holds unfiltered_html
		data["Content"] = ContentView{
			ID:    item.ID,
			Type:  item.Type,
			Title: item.Title,
			Body:  template.HTML(item.Body), //nolint:gosec
		}
	}

	if c.QueryBool(NoCacheQuery) && auth.ActorFromContext(c).Can(auth.PermWidgetsManage) {
		opts.SkipCache = true
	}

	sidebars := s.widgets.Sidebars().All()
	views := make([]SidebarView, 0, len(sidebars))

	for _, sb := range sidebars {
		markup, err := s.widgets.RenderSidebar(c.UserContext(), sb.ID, opts)
		if err != nil {
			log.Error().Err(err).Str("sidebar", sb.ID).Msg("failed to render sidebar")
			return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
		}

		views = append(views, SidebarView{ID: sb.ID, Name: sb.Name, Markup: markup})
	}

	data["Sidebars"] = views

	return c.Render(TemplateName, data, handler.BaseLayout)
}
