package categoryboxes

import (
	"bytes"
	"context"
	"errors"
	"html/template"

	"github.com/atik-theme/atik-assistant/internal/sanitize"
	"github.com/atik-theme/atik-assistant/internal/widget"
	"github.com/atik-theme/atik-assistant/internal/widget/cache"
)

// ID is the widget type id.
const ID = "atik_widget_category_boxes"

// Setting keys.
const (
	KeyTitle    = "title"
	KeyFeatures = "features"
)

// Layout classes by number of features. Three or more tiles get no class.
const (
	ClassSingle = "one-category"
	ClassPaired = "two-category"
)

const boxesTemplate = "widgets/category-boxes"

// Schema returns the settings of the widget.
func Schema() *widget.Schema {
	return widget.MustSchema(
		widget.Text(KeyTitle, "Title:", ""),
		widget.Extension(KeyFeatures, FieldType, "", []Feature{}),
	)
}

// Widget renders a grid of category boxes.
type Widget struct {
	widget.Base
}

var _ widget.Widget = (*Widget)(nil)

// New creates the widget and registers the features field type on the
// engine's registry.
func New(engine *widget.Engine, c *cache.Cache) (*Widget, error) {
	err := engine.Registry().Register(FieldType, widget.FieldHandler{
		Render: RenderFeatures(engine.Views()),
		Update: UpdateFeatures,
	})
	if err != nil && !errors.Is(err, widget.ErrDuplicateType) {
		return nil, err
	}

	meta := widget.Meta{
		ID:               ID,
		Name:             "Section: Category Boxes",
		Description:      "Displays Category Boxes.",
		ClassName:        ID,
		SelectiveRefresh: true,
	}

	return &Widget{Base: widget.NewBase(meta, Schema(), engine, c)}, nil
}

type boxesView struct {
	BeforeWidget template.HTML
	AfterWidget  template.HTML
	BeforeTitle  template.HTML
	AfterTitle   template.HTML
	Title        string
	Class        string
	Features     []Feature
}

// LayoutClass returns the grid modifier for n tiles.
func LayoutClass(n int) string {
	switch n {
	case 1:
		return ClassSingle
	case 2: //nolint:mnd
		return ClassPaired
	default:
		return ""
	}
}

// Render draws the grid. Nothing is drawn, or cached, without features.
func (w *Widget) Render(_ context.Context, rc widget.RenderContext, inst widget.Instance) (template.HTML, error) {
	if markup, ok := w.CachedOutput(rc).Markup(); ok {
		return template.HTML(markup), nil //nolint:gosec // rendered by this widget
	}

	features := DecodeFeatures(inst.Value(KeyFeatures, nil))
	if len(features) == 0 {
		return "", nil
	}

	view := boxesView{
		BeforeWidget: rc.BeforeWidget,
		AfterWidget:  rc.AfterWidget,
		BeforeTitle:  rc.BeforeTitle,
		AfterTitle:   rc.AfterTitle,
		Title:        sanitize.Text(inst.String(KeyTitle)),
		Class:        LayoutClass(len(features)),
		Features:     make([]Feature, 0, len(features)),
	}

	for _, f := range features {
		view.Features = append(view.Features, f.Clean())
	}

	var buf bytes.Buffer
	if err := w.Engine().Views().Render(&buf, boxesTemplate, view); err != nil {
		return "", err
	}

	markup := template.HTML(buf.String()) //nolint:gosec // escaped by the template
	w.CacheOutput(rc, markup)

	return markup, nil
}
