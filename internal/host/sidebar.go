package host

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/atik-theme/atik-assistant/internal/config"
	"github.com/atik-theme/atik-assistant/internal/widget"
)

// Default wrappers for sidebars that leave them unset.
const (
	DefaultBeforeWidget = `<section id="%[1]s" class="widget %[2]s">`
	DefaultAfterWidget  = `</section>`
	DefaultBeforeTitle  = `<h2 class="widget-title">`
	DefaultAfterTitle   = `</h2>`
)

// Sidebar is a widget area of the active theme.
type Sidebar struct {
	ID   string
	Name string

	beforeWidget string
	afterWidget  string
	beforeTitle  string
	afterTitle   string
}

// Sidebars holds the configured widget areas in config order.
type Sidebars struct {
	list []Sidebar
	byID map[string]int
}

// NewSidebars builds the widget areas from the config.
func NewSidebars(cfg []config.Sidebar) *Sidebars {
	s := &Sidebars{
		list: make([]Sidebar, 0, len(cfg)),
		byID: make(map[string]int, len(cfg)),
	}

	for _, c := range cfg {
		if _, dup := s.byID[c.ID]; dup || c.ID == "" {
			continue
		}

		s.byID[c.ID] = len(s.list)
		s.list = append(s.list, Sidebar{
			ID:           c.ID,
			Name:         c.Name,
			beforeWidget: orDefault(c.BeforeWidget, DefaultBeforeWidget),
			afterWidget:  orDefault(c.AfterWidget, DefaultAfterWidget),
			beforeTitle:  orDefault(c.BeforeTitle, DefaultBeforeTitle),
			afterTitle:   orDefault(c.AfterTitle, DefaultAfterTitle),
		})
	}

	return s
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}

	return v
}

// All returns the sidebars in config order.
func (s *Sidebars) All() []Sidebar {
	out := make([]Sidebar, len(s.list))
	copy(out, s.list)

	return out
}

// Get returns the sidebar with id.
func (s *Sidebars) Get(id string) (Sidebar, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Sidebar{}, false
	}

	return s.list[i], true
}

// RenderContext returns the render context of a placement shown in the
// sidebar. The placement id and class are escaped into the wrapper.
func (s Sidebar) RenderContext(placementID, className string, contentID uint64) widget.RenderContext {
	before := s.beforeWidget
	if strings.Contains(before, "%") {
		before = fmt.Sprintf(before,
			template.HTMLEscapeString(placementID),
			template.HTMLEscapeString(className),
		)
	}

	//nolint:gosec // wrappers come from the config, arguments are escaped
	return widget.RenderContext{
		WidgetID:     placementID,
		ContentID:    contentID,
		BeforeWidget: template.HTML(before),
		AfterWidget:  template.HTML(s.afterWidget),
		BeforeTitle:  template.HTML(s.beforeTitle),
		AfterTitle:   template.HTML(s.afterTitle),
	}
}
