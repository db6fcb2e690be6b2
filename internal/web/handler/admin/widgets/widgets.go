// Package widgets provides the admin pages that place, configure and remove
// widgets.
package widgets

import (
	"errors"
	"html/template"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/atik-theme/atik-assistant/internal/auth"
	"github.com/atik-theme/atik-assistant/internal/config"
	"github.com/atik-theme/atik-assistant/internal/db/controller/placement"
	"github.com/atik-theme/atik-assistant/internal/host"
	"github.com/atik-theme/atik-assistant/internal/widget"
	"github.com/atik-theme/atik-assistant/internal/web/handler"
	"github.com/atik-theme/atik-assistant/internal/web/navigation"
)

const (
	// Path is the root of the widget admin.
	Path = handler.AdminPath + "/widgets"

	// ListTemplate lists sidebars and their placements.
	ListTemplate = "admin/widgets"

	// EditTemplate shows the settings form of a placement.
	EditTemplate = "admin/widget-edit"
)

// AddForm is the submitted "add widget" form.
type AddForm struct {
	WidgetType string `form:"widget_type" validate:"required,max=100"`
	Sidebar    string `form:"sidebar"     validate:"required,max=100"`
}

// PlacementView is a placement shown in the list.
type PlacementView struct {
	ID       uint64
	WidgetID string
	Name     string
	Known    bool
}

// SidebarView is a sidebar with its placements.
type SidebarView struct {
	ID         string
	Name       string
	Placements []PlacementView
}

// Service is the widget admin handler service.
type Service struct {
	cfg      *config.Config
	widgets  *host.Widgets
	validate *validator.Validate
}

var _ handler.Service = (*Service)(nil)

// Handler is the widget admin handler.
var Handler = Service{} //nolint:gochecknoglobals

// Init initializes the widget admin handler.
func (s *Service) Init(app *fiber.App, deps handler.Deps) error {
	if app == nil || !deps.Valid() {
		return handler.ErrNilDeps
	}

	s.cfg = deps.Cfg
	s.widgets = deps.Widgets
	s.validate = validator.New(validator.WithRequiredStructEnabled())

	app.Route(Path, func(router fiber.Router) {
		router.Use(auth.RequirePermission(deps.Auth, auth.PermWidgetsManage))
		router.Get(handler.RouterRootPath, s.List)
		router.Post(handler.RouterRootPath, s.Add)
		router.Get("/:id", s.Edit)
		router.Post("/:id", s.Update)
		router.Post("/:id/delete", s.Delete)
	})

	return nil
}

func itemPath(id uint64) string {
	return Path + "/" + strconv.FormatUint(id, 10)
}

func permissions(c *fiber.Ctx) []string {
	if actor := auth.ActorFromContext(c); actor != nil {
		return actor.Permissions
	}

	return nil
}

// statusOf maps service errors to responses.
func statusOf(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, placement.ErrPlacementNotFound):
		return fiber.ErrNotFound
	case errors.Is(err, host.ErrUnknownWidget), errors.Is(err, host.ErrUnknownSidebar):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("widget admin request failed")
		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}
}

// List shows every sidebar with its placements and the available widgets.
func (s *Service) List(c *fiber.Ctx) error {
	sidebars := s.widgets.Sidebars().All()
	views := make([]SidebarView, 0, len(sidebars))

	for _, sb := range sidebars {
		placements, err := s.widgets.List(c.UserContext(), sb.ID)
		if err != nil {
			return statusOf(c, err)
		}

		view := SidebarView{ID: sb.ID, Name: sb.Name}

		for _, p := range placements {
			pv := PlacementView{ID: p.ID, WidgetID: p.WidgetID(), Name: p.WidgetType}
			if w, ok := s.widgets.Registry().Get(p.WidgetType); ok {
				pv.Name = w.Meta().Name
				pv.Known = true
			}

			view.Placements = append(view.Placements, pv)
		}

		views = append(views, view)
	}

	available := make([]widget.Meta, 0)
	for _, w := range s.widgets.Registry().All() {
		available = append(available, w.Meta())
	}

	return c.Render(ListTemplate, fiber.Map{
		"Title":      s.cfg.Title,
		"Navigation": navigation.NewContext("Widgets", "widgets", permissions(c)).AddBreadcrumb("Widgets", Path, true),
		"Sidebars":   views,
		"Available":  available,
	}, handler.AdminLayout)
}

// Add places a new widget at the end of a sidebar.
func (s *Service) Add(c *fiber.Ctx) error {
	form := new(AddForm)
	if err := c.BodyParser(form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := s.validate.Struct(form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	p, err := s.widgets.Create(c.UserContext(), form.WidgetType, form.Sidebar)
	if err != nil {
		return statusOf(c, err)
	}

	return c.Redirect(itemPath(p.ID))
}

// Edit shows the settings form of a placement.
func (s *Service) Edit(c *fiber.Ctx) error {
	id, err := handler.ParamID(c, "id")
	if err != nil {
		return err
	}

	placed, form, err := s.widgets.Form(c.UserContext(), id)
	if err != nil {
		return statusOf(c, err)
	}

	return s.renderEdit(c, placed, form)
}

func (s *Service) renderEdit(c *fiber.Ctx, placed *host.Placed, form template.HTML) error {
	meta := placed.Widget.Meta()

	return c.Render(EditTemplate, fiber.Map{
		"Title": s.cfg.Title,
		"Navigation": navigation.NewContext(meta.Name, "widgets", permissions(c)).
			AddBreadcrumb("Widgets", Path, false).
			AddBreadcrumb(meta.Name, itemPath(placed.Placement.ID), true),
		"Placement": placed.Placement,
		"Meta":      meta,
		"Form":      form,
		"Action":    itemPath(placed.Placement.ID),
	}, handler.AdminLayout)
}

// Update applies the submitted settings of a placement.
func (s *Service) Update(c *fiber.Ctx) error {
	id, err := handler.ParamID(c, "id")
	if err != nil {
		return err
	}

	placed, err := s.widgets.Load(c.UserContext(), id)
	if err != nil {
		return statusOf(c, err)
	}

	submitted := widget.ParseSubmission(handler.FormValues(c), placed.Binding())

	var actor widget.Actor
	if a := auth.ActorFromContext(c); a != nil {
		actor = a
	}

	if _, err = s.widgets.Save(c.UserContext(), id, submitted, actor); err != nil {
		return statusOf(c, err)
	}

	return c.Redirect(itemPath(id))
}

// Delete removes a placement.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParamID(c, "id")
	if err != nil {
		return err
	}

	if err = s.widgets.Delete(c.UserContext(), id); err != nil {
		return statusOf(c, err)
	}

	return c.Redirect(Path)
}
