package host

import (
	"context"
	"html/template"
	"sync/atomic"
	"testing"

	"github.com/gofiber/storage/memory/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/atik-theme/atik-assistant/internal/cachestore"
	"github.com/atik-theme/atik-assistant/internal/config"
	"github.com/atik-theme/atik-assistant/internal/db/dbtest"
	"github.com/atik-theme/atik-assistant/internal/theme"
	"github.com/atik-theme/atik-assistant/internal/widget"
	"github.com/atik-theme/atik-assistant/internal/widget/cache"
	"github.com/atik-theme/atik-assistant/internal/widget/categoryboxes"
)

// fakeWidget renders its title and counts cache flushes.
type fakeWidget struct {
	meta    widget.Meta
	flushes atomic.Int32
}

func newFakeWidget(id, name string) *fakeWidget {
	return &fakeWidget{meta: widget.Meta{ID: id, Name: name, ClassName: id}}
}

func (f *fakeWidget) Meta() widget.Meta { return f.meta }

func (f *fakeWidget) Schema() *widget.Schema {
	return widget.MustSchema(widget.Text("title", "Title:", "fake"))
}

func (f *fakeWidget) Form(context.Context, widget.Binding, widget.Instance) (template.HTML, error) {
	return "", nil
}

func (f *fakeWidget) Update(submitted widget.Submission, previous widget.Instance, _ widget.Actor) widget.Instance {
	next := previous.Clone()
	next["title"] = submitted["title"]

	return next
}

func (f *fakeWidget) Render(_ context.Context, rc widget.RenderContext, inst widget.Instance) (template.HTML, error) {
	return rc.BeforeWidget + template.HTML(template.HTMLEscapeString(inst.String("title"))) + rc.AfterWidget, nil
}

func (f *fakeWidget) Flush(context.Context) { f.flushes.Add(1) }

type editor struct{}

func (editor) Can(string) bool { return false }

var testSidebars = []config.Sidebar{
	{ID: "home-sections", Name: "Home Sections"},
	{
		ID:           "sidebar-1",
		Name:         "Sidebar",
		BeforeWidget: `<aside id="%[1]s" class="%[2]s">`,
		AfterWidget:  `</aside>`,
	},
}

type fixture struct {
	db      *gorm.DB
	cache   *cache.Cache
	hooks   *Hooks
	widgets *Widgets
	boxes   *categoryboxes.Widget
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	db := dbtest.New(t)
	c := cache.New(cachestore.NewNamespaced(memory.New(), 0))
	engine := widget.NewEngine(theme.NewViews(false), widget.NewRegistry(), NewCatalog(db))

	boxes, err := categoryboxes.New(engine, c)
	require.NoError(t, err)

	hooks := NewHooks()
	registry := NewRegistry(hooks)
	require.NoError(t, registry.Register(boxes))

	return fixture{
		db:      db,
		cache:   c,
		hooks:   hooks,
		widgets: NewWidgets(db, registry, NewSidebars(testSidebars)),
		boxes:   boxes,
	}
}
