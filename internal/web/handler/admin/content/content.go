// Package content provides the admin pages editing pages, posts and
// categories. Every change flushes the widget caches through the host
// events.
package content

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/atik-theme/atik-assistant/internal/auth"
	"github.com/atik-theme/atik-assistant/internal/config"
	"github.com/atik-theme/atik-assistant/internal/db/controller/content"
	"github.com/atik-theme/atik-assistant/internal/db/models"
	"github.com/atik-theme/atik-assistant/internal/host"
	"github.com/atik-theme/atik-assistant/internal/sanitize"
	"github.com/atik-theme/atik-assistant/internal/web/handler"
	"github.com/atik-theme/atik-assistant/internal/web/navigation"
)

const (
	// Path is the root of the content admin.
	Path = handler.AdminPath + "/content"

	// CategoriesPath creates categories.
	CategoriesPath = Path + "/categories"

	// ListTemplate lists content and categories.
	ListTemplate = "admin/content"

	// EditTemplate edits one content item.
	EditTemplate = "admin/content-edit"
)

// Form is the submitted content form.
type Form struct {
	Title      string `form:"title"       validate:"required,max=255"`
	Type       string `form:"type"        validate:"required,oneof=page post"`
	Status     string `form:"status"      validate:"required,oneof=publish draft"`
	Body       string `form:"body"`
	CategoryID uint64 `form:"category_id"`
}

// CategoryForm is the submitted category form.
type CategoryForm struct {
	Name     string `form:"name"      validate:"required,max=200"`
	Slug     string `form:"slug"      validate:"max=191"`
	ParentID uint64 `form:"parent_id"`
}

// Service is the content admin handler service.
type Service struct {
	cfg      *config.Config
	db       *gorm.DB
	hooks    *host.Hooks
	validate *validator.Validate
}

var _ handler.Service = (*Service)(nil)

// Handler is the content admin handler.
var Handler = Service{} //nolint:gochecknoglobals

// Init initializes the content admin handler.
func (s *Service) Init(app *fiber.App, deps handler.Deps) error {
	if app == nil || !deps.Valid() {
		return handler.ErrNilDeps
	}

	s.cfg = deps.Cfg
	s.db = deps.DB
	s.hooks = deps.Hooks
	s.validate = validator.New(validator.WithRequiredStructEnabled())

	app.Route(Path, func(router fiber.Router) {
		router.Use(auth.RequirePermission(deps.Auth, auth.PermContentEdit))
		router.Get(handler.RouterRootPath, s.List)
		router.Post("/categories", s.AddCategory)
		router.Get("/:id", s.Edit)
		router.Post("/:id", s.Save)
		router.Post("/:id/delete", s.Delete)
	})

	return nil
}

func permissions(c *fiber.Ctx) []string {
	if actor := auth.ActorFromContext(c); actor != nil {
		return actor.Permissions
	}

	return nil
}

func internalError(c *fiber.Ctx, err error, msg string) error {
	log.Error().Err(err).Str("path", c.Path()).Msg(msg)
	return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
}

// List shows every content item and category.
func (s *Service) List(c *fiber.Ctx) error {
	db := s.db.WithContext(c.UserContext())

	items, err := content.List(db)
	if err != nil {
		return internalError(c, err, "failed to list content")
	}

	categories, err := content.Categories(db)
	if err != nil {
		return internalError(c, err, "failed to list categories")
	}

	return c.Render(ListTemplate, fiber.Map{
		"Title":      s.cfg.Title,
		"Navigation": navigation.NewContext("Content", "content", permissions(c)).AddBreadcrumb("Content", Path, true),
		"Items":      items,
		"Categories": categories,
	}, handler.AdminLayout)
}

// Edit shows the form of a content item. Id 0 shows an empty form.
func (s *Service) Edit(c *fiber.Ctx) error {
	id, err := handler.ParamID(c, "id")
	if err != nil {
		return err
	}

	db := s.db.WithContext(c.UserContext())

	item := &models.Content{Type: models.ContentPage, Status: models.StatusDraft}
	if id != 0 {
		if item, err = content.Get(db, id); err != nil {
			if errors.Is(err, content.ErrContentNotFound) {
				return fiber.ErrNotFound
			}

			return internalError(c, err, "failed to load content")
		}
	}

	return s.renderEdit(c, item, "")
}

func (s *Service) renderEdit(c *fiber.Ctx, item *models.Content, errMsg string) error {
	categories, err := content.Categories(s.db.WithContext(c.UserContext()))
	if err != nil {
		return internalError(c, err, "failed to list categories")
	}

	title := item.Title
	if item.ID == 0 {
		title = "New content"
	}

	return c.Render(EditTemplate, fiber.Map{
		"Title": s.cfg.Title,
		"Navigation": navigation.NewContext(title, "content", permissions(c)).
			AddBreadcrumb("Content", Path, false).
			AddBreadcrumb(title, Path+"/"+strconv.FormatUint(item.ID, 10), true),
		"Item":       item,
		"Categories": categories,
		"Error":      errMsg,
	}, handler.AdminLayout)
}

// Save creates or updates a content item and emits the content saved event.
func (s *Service) Save(c *fiber.Ctx) error {
	id, err := handler.ParamID(c, "id")
	if err != nil {
		return err
	}

	form := new(Form)
	if err = c.BodyParser(form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	item := &models.Content{
		ID:     id,
		Title:  strings.TrimSpace(sanitize.Text(form.Title)),
		Type:   models.ContentType(form.Type),
		Status: models.ContentStatus(form.Status),
		Body:   form.Body,
	}

	if !auth.ActorFromContext(c).Can(auth.PermUnfilteredHTML) {
		item.Body = sanitize.HTML(item.Body)
	}

	if form.CategoryID != 0 && item.Type == models.ContentPost {
		item.CategoryID = &form.CategoryID
	}

	if err = s.validate.Struct(form); err != nil {
		c.Status(fiber.StatusUnprocessableEntity)
		return s.renderEdit(c, item, "Please fill in a title, a type and a status.")
	}

	if err = content.Save(s.db.WithContext(c.UserContext()), item); err != nil {
		switch {
		case errors.Is(err, content.ErrContentNotFound):
			return fiber.ErrNotFound
		case errors.Is(err, content.ErrTitleEmpty):
			c.Status(fiber.StatusUnprocessableEntity)
			return s.renderEdit(c, item, err.Error())
		default:
			return internalError(c, err, "failed to save content")
		}
	}

	log.Info().Uint64("id", item.ID).Str("type", string(item.Type)).Msg("content saved")
	s.hooks.Emit(c.UserContext(), host.EventContentSaved)

	return c.Redirect(Path)
}

// Delete removes a content item and emits the content deleted event.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParamID(c, "id")
	if err != nil {
		return err
	}

	if err = content.Delete(s.db.WithContext(c.UserContext()), id); err != nil {
		if errors.Is(err, content.ErrContentNotFound) {
			return fiber.ErrNotFound
		}

		return internalError(c, err, "failed to delete content")
	}

	log.Info().Uint64("id", id).Msg("content deleted")
	s.hooks.Emit(c.UserContext(), host.EventContentDeleted)

	return c.Redirect(Path)
}

// AddCategory creates a category. Category counts show up in widget output
// so the content saved event is emitted as well.
func (s *Service) AddCategory(c *fiber.Ctx) error {
	form := new(CategoryForm)
	if err := c.BodyParser(form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := s.validate.Struct(form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	name := strings.TrimSpace(sanitize.Text(form.Name))

	slug := sanitize.Slug(form.Slug)
	if slug == "" {
		slug = sanitize.Slug(name)
	}

	if name == "" || slug == "" {
		return fiber.NewError(fiber.StatusBadRequest, "category name required")
	}

	category := &models.Category{Name: name, Slug: slug, ParentID: form.ParentID}
	if err := content.CreateCategory(s.db.WithContext(c.UserContext()), category); err != nil {
		return internalError(c, err, "failed to create category")
	}

	log.Info().Str("slug", slug).Msg("category created")
	s.hooks.Emit(c.UserContext(), host.EventContentSaved)

	return c.Redirect(Path)
}
