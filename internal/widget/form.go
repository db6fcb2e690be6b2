package widget

import (
	"bytes"
	"context"
	"html/template"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/atik-theme/atik-assistant/internal/sanitize"
)

// fieldTemplatePrefix is the template directory holding one template per kind.
const fieldTemplatePrefix = "fields/"

const (
	nbsp   = "\u00a0"
	indent = nbsp + nbsp + nbsp
)

// Choice is one rendered entry of a select, page, category or multicheck field.
type Choice struct {
	ID       string
	Value    string
	Label    string
	Selected bool
}

// FieldView is the data handed to a fields/<kind> template.
type FieldView struct {
	ID       string
	Name     string
	Label    string
	Value    string
	Checked  bool
	Rows     int
	Min      string
	Max      string
	Step     string
	Choices  []Choice
	Markup   template.HTML
	IDPrefix string
	WidgetID string
	Key      string
}

// RenderForm draws the controls of schema for the stored instance in schema
// order. Extension fields without a registered handler are left out.
func (e *Engine) RenderForm(ctx context.Context, b Binding, s *Schema, inst Instance) (template.HTML, error) {
	var buf bytes.Buffer

	for _, d := range s.Descriptors() {
		field := FieldContext{
			Binding:    b,
			Key:        d.Key,
			Descriptor: d,
			Instance:   inst,
			Value:      inst.Value(d.Key, d.Default),
		}

		if err := e.renderField(ctx, &buf, field); err != nil {
			return "", err
		}
	}

	return template.HTML(buf.String()), nil //nolint:gosec // assembled from escaped templates
}

func (e *Engine) renderField(ctx context.Context, w io.Writer, field FieldContext) error {
	d := field.Descriptor

	if d.Kind == KindExtension {
		h, ok := e.registry.Lookup(d.Extension)
		if !ok {
			log.Warn().
				Str("key", d.Key).
				Str("type", d.Extension).
				Str("widget", field.Binding.PlacementID()).
				Msg("no handler registered for widget field type, field skipped")

			return nil
		}

		return h.Render(w, field)
	}

	view := FieldView{
		ID:       field.ID(),
		Name:     field.Name(),
		Label:    d.Label,
		Value:    stringValue(field.Value),
		Rows:     d.rows(),
		Min:      d.Min,
		Max:      d.Max,
		Step:     d.Step,
		IDPrefix: field.Binding.FieldID(""),
		WidgetID: field.Binding.PlacementID(),
		Key:      d.Key,
	}

	switch d.Kind {
	case KindCheckbox:
		view.Checked = view.Value == "1"
	case KindSelect:
		view.Choices = selectChoices(d.Options, view.Value)
	case KindMulticheck:
		view.Choices = multicheckChoices(view.ID, d.Options, stringList(field.Value))
	case KindPage:
		view.Choices = e.pageChoices(ctx, view.Value)
	case KindCategory:
		view.Choices = e.categoryChoices(ctx, view.Value)
	case KindDescription:
		view.Markup = template.HTML(sanitize.HTML(view.Value)) //nolint:gosec // sanitized above
	default:
	}

	return e.views.Render(w, fieldTemplatePrefix+d.Kind.String(), view)
}

func selectChoices(options []Option, value string) []Choice {
	out := make([]Choice, 0, len(options))
	for _, o := range options {
		out = append(out, Choice{Value: o.Value, Label: o.Label, Selected: o.Value == value})
	}

	return out
}

// multicheckChoices scopes the checkbox ids to the field id so several
// fields and placements can share one admin page.
func multicheckChoices(fieldID string, options []Option, values []string) []Choice {
	out := make([]Choice, 0, len(options))
	for _, o := range options {
		out = append(out, Choice{
			ID:       fieldID + "-" + sanitize.Slug(o.Label) + "-" + o.Value,
			Value:    o.Value,
			Label:    o.Label,
			Selected: slices.Contains(values, o.Value),
		})
	}

	return out
}

func (e *Engine) pageChoices(ctx context.Context, value string) []Choice {
	if e.catalog == nil {
		return nil
	}

	pages, err := e.catalog.Pages(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list pages for widget form")
		return nil
	}

	out := make([]Choice, 0, len(pages))
	for _, p := range pages {
		id := strconv.FormatUint(p.ID, 10)
		out = append(out, Choice{Value: id, Label: p.Title, Selected: id == value})
	}

	return out
}

func (e *Engine) categoryChoices(ctx context.Context, value string) []Choice {
	out := []Choice{{Value: "0", Label: "All Categories", Selected: value == "" || value == "0"}}

	if e.catalog == nil {
		return out
	}

	categories, err := e.catalog.Categories(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list categories for widget form")
		return out
	}

	for _, c := range hierarchy(categories) {
		id := strconv.FormatUint(c.ID, 10)
		label := strings.Repeat(indent, c.depth) + c.Name + nbsp + nbsp + "(" + strconv.FormatInt(c.Count, 10) + ")"
		out = append(out, Choice{Value: id, Label: label, Selected: id == value})
	}

	return out
}

type nestedCategory struct {
	Category
	depth int
}

// hierarchy orders categories depth first, keeping the incoming order among
// siblings. Categories whose parent is unknown are treated as roots; members
// of a parent cycle are appended at depth 0.
func hierarchy(categories []Category) []nestedCategory {
	known := make(map[uint64]bool, len(categories))
	for _, c := range categories {
		known[c.ID] = true
	}

	children := make(map[uint64][]Category)
	for _, c := range categories {
		parent := c.ParentID
		if !known[parent] {
			parent = 0
		}

		children[parent] = append(children[parent], c)
	}

	out := make([]nestedCategory, 0, len(categories))
	visited := make(map[uint64]bool, len(categories))

	var walk func(parent uint64, depth int)
	walk = func(parent uint64, depth int) {
		for _, c := range children[parent] {
			if visited[c.ID] {
				continue
			}

			visited[c.ID] = true
			out = append(out, nestedCategory{Category: c, depth: depth})
			walk(c.ID, depth+1)
		}
	}

	walk(0, 0)

	for _, c := range categories {
		if !visited[c.ID] {
			visited[c.ID] = true
			out = append(out, nestedCategory{Category: c})
		}
	}

	return out
}
