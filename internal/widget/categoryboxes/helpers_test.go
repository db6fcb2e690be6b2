package categoryboxes

import (
	"testing"

	"github.com/gofiber/storage/memory/v2"
	"github.com/stretchr/testify/require"

	"github.com/atik-theme/atik-assistant/internal/cachestore"
	"github.com/atik-theme/atik-assistant/internal/theme"
	"github.com/atik-theme/atik-assistant/internal/widget"
	"github.com/atik-theme/atik-assistant/internal/widget/cache"
)

type editor struct{}

func (editor) Can(string) bool { return false }

func newTestWidget(t *testing.T) (*Widget, *cache.Cache) {
	t.Helper()

	c := cache.New(cachestore.NewNamespaced(memory.New(), 0))
	engine := widget.NewEngine(theme.NewViews(false), widget.NewRegistry(), nil)

	w, err := New(engine, c)
	require.NoError(t, err)

	return w, c
}

func features(n int) []Feature {
	out := make([]Feature, 0, n)
	for i := range n {
		out = append(out, Feature{
			Background: "https://example.com/bg-" + string(rune('a'+i)) + ".jpg",
			ButtonText: "Shop " + string(rune('A'+i)),
			ButtonURL:  "https://example.com/shop/" + string(rune('a'+i)),
		})
	}

	return out
}
