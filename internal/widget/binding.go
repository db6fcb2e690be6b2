package widget

import (
	"strconv"
	"strings"
)

// Binding ties form controls to one placement of a widget.
type Binding struct {
	// IDBase is the widget type id.
	IDBase string
	// Number is the placement number of this widget type.
	Number uint64
}

// PlacementID returns "<idbase>-<number>", the id used for the placement's
// markup and cache entries.
func (b Binding) PlacementID() string {
	return b.IDBase + "-" + strconv.FormatUint(b.Number, 10)
}

// NamePrefix returns the form name prefix shared by all fields of the placement.
func (b Binding) NamePrefix() string {
	return "widget-" + b.IDBase + "[" + strconv.FormatUint(b.Number, 10) + "]"
}

// FieldName returns the form name of the control for key.
func (b Binding) FieldName(key string) string {
	return b.NamePrefix() + "[" + key + "]"
}

// FieldID returns the element id of the control for key.
func (b Binding) FieldID(key string) string {
	return strings.Join([]string{"widget", b.IDBase, strconv.FormatUint(b.Number, 10), key}, "-")
}
