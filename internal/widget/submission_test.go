package widget

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinding(t *testing.T) {
	t.Parallel()

	b := Binding{IDBase: "atik_widget_category_boxes", Number: 2}

	assert.Equal(t, "atik_widget_category_boxes-2", b.PlacementID())
	assert.Equal(t, "widget-atik_widget_category_boxes[2][title]", b.FieldName("title"))
	assert.Equal(t, "widget-atik_widget_category_boxes-2-title", b.FieldID("title"))
}

func TestParseSubmission(t *testing.T) {
	t.Parallel()

	b := Binding{IDBase: "boxes", Number: 3}

	values := url.Values{
		"widget-boxes[3][title]":                    {"first", "Hello"},
		"widget-boxes[3][tags][]":                   {"a", "b"},
		"widget-boxes[3][features][0][background]":  {"bg0"},
		"widget-boxes[3][features][0][button_text]": {"Go"},
		"widget-boxes[3][features][2][background]":  {"bg2"},
		"widget-boxes[4][title]":                    {"other placement"},
		"widget-boxes[3]title":                      {"malformed"},
		"widget-boxes[3][]":                         {"no key"},
		"csrf":                                      {"token"},
	}

	sub := ParseSubmission(values, b)

	assert.Equal(t, Submission{
		"title": "Hello",
		"tags":  []string{"a", "b"},
		"features": map[string]any{
			"0": map[string]any{"background": "bg0", "button_text": "Go"},
			"2": map[string]any{"background": "bg2"},
		},
	}, sub)
}

func TestOrderedValues(t *testing.T) {
	t.Parallel()

	got := OrderedValues(map[string]any{"10": "ten", "2": "two", "b": "bee", "a": "ay"})
	assert.Equal(t, []any{"two", "ten", "ay", "bee"}, got)

	assert.Nil(t, OrderedValues(nil))
	assert.Equal(t, []any{"x"}, OrderedValues([]any{"x"}))
	assert.Equal(t, []any{"x"}, OrderedValues("x"))
}
