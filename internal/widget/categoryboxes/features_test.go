package categoryboxes

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atik-theme/atik-assistant/internal/theme"
	"github.com/atik-theme/atik-assistant/internal/widget"
)

func TestDecodeFeatures(t *testing.T) {
	t.Parallel()

	want := []Feature{
		{Background: "a.jpg", ButtonText: "A", ButtonURL: "/a"},
		{Background: "b.jpg", ButtonText: "B", ButtonURL: "/b"},
	}

	stored, err := json.Marshal(want)
	require.NoError(t, err)

	var decoded any
	require.NoError(t, json.Unmarshal(stored, &decoded))

	tests := []struct {
		name  string
		input any
		want  []Feature
	}{
		{name: "nil", input: nil, want: nil},
		{name: "typed", input: want, want: want},
		{name: "json decoded", input: decoded, want: want},
		{
			name: "list of maps",
			input: []map[string]any{
				{"background": "a.jpg", "button_text": "A", "button_url": "/a"},
				{"background": "b.jpg", "button_text": "B", "button_url": "/b"},
			},
			want: want,
		},
		{
			name: "index keyed",
			input: map[string]any{
				"7": map[string]any{"background": "b.jpg", "button_text": "B", "button_url": "/b"},
				"0": map[string]any{"background": "a.jpg", "button_text": "A", "button_url": "/a"},
			},
			want: want,
		},
		{
			name:  "malformed rows dropped",
			input: []any{"junk", map[string]any{"background": "a.jpg", "button_text": "A", "button_url": "/a"}, 3},
			want:  want[:1],
		},
		{
			name:  "weakly typed",
			input: []any{map[string]any{"button_text": 42}},
			want:  []Feature{{ButtonText: "42"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := DecodeFeatures(tt.input)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeFeaturesCopiesTypedInput(t *testing.T) {
	t.Parallel()

	in := []Feature{{ButtonText: "A"}}
	out := DecodeFeatures(in)
	out[0].ButtonText = "changed"

	assert.Equal(t, "A", in[0].ButtonText)
}

func TestUpdateFeatures(t *testing.T) {
	t.Parallel()

	t.Run("reindexes rows with gaps", func(t *testing.T) {
		t.Parallel()

		got := UpdateFeatures(map[string]any{
			"0": map[string]any{"background": "example.com/a.jpg", "button_text": "<b>Bags</b>", "button_url": "/bags"},
			"3": map[string]any{"background": "javascript:alert(1)", "button_text": "Shoes", "button_url": "https://example.com/shoes"},
		}, KeyFeatures, widget.Descriptor{})

		assert.Equal(t, []Feature{
			{Background: "http://example.com/a.jpg", ButtonText: "Bags", ButtonURL: "/bags"},
			{Background: "", ButtonText: "Shoes", ButtonURL: "https://example.com/shoes"},
		}, got)
	})

	t.Run("empty submission returned as is", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, UpdateFeatures(nil, KeyFeatures, widget.Descriptor{}))
		assert.Equal(t, "", UpdateFeatures("", KeyFeatures, widget.Descriptor{}))
		assert.Equal(t, []any{}, UpdateFeatures([]any{}, KeyFeatures, widget.Descriptor{}))
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()

		first := UpdateFeatures([]any{
			map[string]any{"background": " a.jpg ", "button_text": "50%20off &amp; more", "button_url": "shop"},
		}, KeyFeatures, widget.Descriptor{})

		assert.Equal(t, first, UpdateFeatures(first, KeyFeatures, widget.Descriptor{}))
	})
}

func TestReorderedRowsKeepPostedOrder(t *testing.T) {
	t.Parallel()

	stored := features(12)

	// the last box dragged to the top, inputs renumbered by position
	moved := append([]Feature{stored[11]}, stored[:11]...)

	binding := widget.Binding{IDBase: ID, Number: 4}
	values := url.Values{}

	for i, f := range moved {
		prefix := binding.FieldName(KeyFeatures) + "[" + strconv.Itoa(i) + "]"
		values.Set(prefix+"[background]", f.Background)
		values.Set(prefix+"[button_text]", f.ButtonText)
		values.Set(prefix+"[button_url]", f.ButtonURL)
	}

	sub := widget.ParseSubmission(values, binding)

	assert.Equal(t, moved, UpdateFeatures(sub[KeyFeatures], KeyFeatures, widget.Descriptor{}))
}

func TestRenderFeatures(t *testing.T) {
	t.Parallel()

	render := RenderFeatures(theme.NewViews(false))

	var buf bytes.Buffer
	err := render(&buf, widget.FieldContext{
		Binding: widget.Binding{IDBase: ID, Number: 3},
		Key:     KeyFeatures,
		Value: []any{
			map[string]any{"background": "a.jpg", "button_text": `"><script>`, "button_url": "/a"},
			map[string]any{"background": "b.jpg", "button_text": "B", "button_url": "/b"},
		},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `id="features-atik_widget_category_boxes-3"`)
	assert.Contains(t, out, `data-next="2"`)
	assert.Contains(t, out, `name="widget-atik_widget_category_boxes[3][features][0][background]" value="a.jpg"`)
	assert.Contains(t, out, `name="widget-atik_widget_category_boxes[3][features][1][button_url]" value="/b"`)
	assert.Contains(t, out, `data-field="button_text" name="widget-atik_widget_category_boxes[3][features][0][button_text]"`)
	assert.Contains(t, out, `data-move="up"`)
	assert.Contains(t, out, `data-move="down"`)
	assert.Contains(t, out, `draggable="true"`)
	assert.NotContains(t, out, "<script>")
}

func TestRenderFeaturesEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := RenderFeatures(theme.NewViews(false))(&buf, widget.FieldContext{
		Binding: widget.Binding{IDBase: ID, Number: 1},
		Key:     KeyFeatures,
		Value:   []Feature{},
	})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `data-next="0"`)
	assert.NotContains(t, buf.String(), `[0][background]`)
}
