package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atik-theme/atik-assistant/internal/config"
)

func TestNewSidebars(t *testing.T) {
	t.Parallel()

	s := NewSidebars([]config.Sidebar{
		{ID: "b", Name: "B"},
		{ID: "", Name: "no id"},
		{ID: "a", Name: "A"},
		{ID: "b", Name: "duplicate"},
	})

	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, "B", all[0].Name)
	assert.Equal(t, "A", all[1].Name)

	_, ok := s.Get("missing")
	assert.False(t, ok)
}

func TestSidebarRenderContext(t *testing.T) {
	t.Parallel()

	s := NewSidebars(testSidebars)

	home, ok := s.Get("home-sections")
	require.True(t, ok)

	rc := home.RenderContext("boxes-2", "boxes", 7)
	assert.Equal(t, "boxes-2", rc.WidgetID)
	assert.Equal(t, uint64(7), rc.ContentID)
	assert.Equal(t, `<section id="boxes-2" class="widget boxes">`, string(rc.BeforeWidget))
	assert.Equal(t, DefaultAfterWidget, string(rc.AfterWidget))
	assert.Equal(t, DefaultBeforeTitle, string(rc.BeforeTitle))
	assert.Equal(t, DefaultAfterTitle, string(rc.AfterTitle))

	side, ok := s.Get("sidebar-1")
	require.True(t, ok)

	rc = side.RenderContext(`x"><script>`, "c", 0)
	assert.Equal(t, `<aside id="x&#34;&gt;&lt;script&gt;" class="c">`, string(rc.BeforeWidget))
	assert.Equal(t, DefaultAfterTitle, string(rc.AfterTitle))
}

func TestSidebarStaticWrapper(t *testing.T) {
	t.Parallel()

	s := NewSidebars([]config.Sidebar{{ID: "plain", BeforeWidget: "<div>", AfterWidget: "</div>"}})

	plain, ok := s.Get("plain")
	require.True(t, ok)
	assert.Equal(t, "<div>", string(plain.RenderContext("w-1", "w", 0).BeforeWidget))
}
