package host

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/atik-theme/atik-assistant/internal/db/controller/placement"
	"github.com/atik-theme/atik-assistant/internal/db/models"
	"github.com/atik-theme/atik-assistant/internal/widget"
)

// Widgets stores widget placements and renders sidebars.
type Widgets struct {
	db       *gorm.DB
	registry *Registry
	sidebars *Sidebars
}

// NewWidgets creates the placement service.
func NewWidgets(db *gorm.DB, registry *Registry, sidebars *Sidebars) *Widgets {
	return &Widgets{
		db:       db,
		registry: registry,
		sidebars: sidebars,
	}
}

// Registry returns the widget registry.
func (s *Widgets) Registry() *Registry { return s.registry }

// Sidebars returns the configured sidebars.
func (s *Widgets) Sidebars() *Sidebars { return s.sidebars }

// Placed is a placement with its widget and decoded instance.
type Placed struct {
	Placement models.Placement
	Widget    widget.Widget
	Instance  widget.Instance
}

// Binding returns the form binding of the placement.
func (p Placed) Binding() widget.Binding {
	return widget.Binding{IDBase: p.Placement.WidgetType, Number: p.Placement.Number}
}

// Create appends a new placement of widgetType to sidebarID. The stored
// instance starts with the schema defaults.
func (s *Widgets) Create(ctx context.Context, widgetType, sidebarID string) (*models.Placement, error) {
	w, ok := s.registry.Get(widgetType)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWidget, widgetType)
	}

	if _, ok = s.sidebars.Get(sidebarID); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSidebar, sidebarID)
	}

	settings, err := w.Schema().Defaults().Marshal()
	if err != nil {
		return nil, err
	}

	p, err := placement.Create(s.db.WithContext(ctx), widgetType, sidebarID, settings)
	if err != nil {
		return nil, err
	}

	log.Info().Str("widget", p.WidgetID()).Str("sidebar", sidebarID).Msg("widget placed")

	return p, nil
}

// Load returns a placement with its widget and stored instance.
func (s *Widgets) Load(ctx context.Context, id uint64) (*Placed, error) {
	p, err := placement.Get(s.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}

	w, ok := s.registry.Get(p.WidgetType)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWidget, p.WidgetType)
	}

	inst, err := widget.UnmarshalInstance(p.Settings)
	if err != nil {
		log.Warn().Err(err).Str("widget", p.WidgetID()).Msg("stored widget settings unreadable, using defaults")

		inst = w.Schema().Defaults()
	}

	return &Placed{Placement: *p, Widget: w, Instance: inst}, nil
}

// Form renders the settings form of a placement.
func (s *Widgets) Form(ctx context.Context, id uint64) (*Placed, template.HTML, error) {
	placed, err := s.Load(ctx, id)
	if err != nil {
		return nil, "", err
	}

	form, err := placed.Widget.Form(ctx, placed.Binding(), placed.Instance)
	if err != nil {
		return nil, "", fmt.Errorf("render form of %s: %w", placed.Placement.WidgetID(), err)
	}

	return placed, form, nil
}

// Save applies a submission to a placement and stores the result.
func (s *Widgets) Save(ctx context.Context, id uint64, submitted widget.Submission, actor widget.Actor) (widget.Instance, error) {
	placed, err := s.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	next := placed.Widget.Update(submitted, placed.Instance, actor)

	settings, err := next.Marshal()
	if err != nil {
		return nil, err
	}

	if err = placement.SaveSettings(s.db.WithContext(ctx), id, settings); err != nil {
		return nil, err
	}

	log.Info().Str("widget", placed.Placement.WidgetID()).Msg("widget settings saved")

	return next, nil
}

// Delete removes a placement and drops the cached output of its type.
func (s *Widgets) Delete(ctx context.Context, id uint64) error {
	p, err := placement.Get(s.db.WithContext(ctx), id)
	if err != nil {
		return err
	}

	if err = placement.Delete(s.db.WithContext(ctx), id); err != nil {
		return err
	}

	if w, ok := s.registry.Get(p.WidgetType); ok {
		w.Flush(ctx)
	}

	log.Info().Str("widget", p.WidgetID()).Msg("widget removed")

	return nil
}

// List returns the placements of a sidebar in display order.
func (s *Widgets) List(ctx context.Context, sidebarID string) ([]models.Placement, error) {
	return placement.ListBySidebar(s.db.WithContext(ctx), sidebarID)
}

// RenderOptions tunes a sidebar render.
type RenderOptions struct {
	// ContentID is the content item being viewed, 0 on listing pages.
	ContentID uint64
	// SkipCache renders every widget fresh.
	SkipCache bool
}

// RenderSidebar renders the widgets of sidebarID in order. Placements of
// unregistered widget types are skipped.
func (s *Widgets) RenderSidebar(ctx context.Context, sidebarID string, opts RenderOptions) (template.HTML, error) {
	sidebar, ok := s.sidebars.Get(sidebarID)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSidebar, sidebarID)
	}

	placements, err := s.List(ctx, sidebarID)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer

	for _, p := range placements {
		w, found := s.registry.Get(p.WidgetType)
		if !found {
			log.Warn().Str("widget", p.WidgetID()).Str("sidebar", sidebarID).Msg("widget type not registered, skipped")
			continue
		}

		inst, errDecode := widget.UnmarshalInstance(p.Settings)
		if errDecode != nil {
			log.Warn().Err(errDecode).Str("widget", p.WidgetID()).Msg("stored widget settings unreadable, using defaults")

			inst = w.Schema().Defaults()
		}

		rc := sidebar.RenderContext(p.WidgetID(), w.Meta().ClassName, opts.ContentID)
		rc.SkipCache = opts.SkipCache

		out, errRender := w.Render(ctx, rc, inst)
		if errRender != nil {
			return "", fmt.Errorf("render %s: %w", p.WidgetID(), errRender)
		}

		buf.WriteString(string(out))
	}

	return template.HTML(buf.String()), nil //nolint:gosec // concatenated widget output
}
