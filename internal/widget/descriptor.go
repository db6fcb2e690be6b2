package widget

// Option is one choice of a select or multicheck setting.
type Option struct {
	Value string
	Label string
}

// Descriptor describes one configurable field of a widget.
type Descriptor struct {
	// Key identifies the setting inside its schema and the stored instance.
	Key string `validate:"required"`
	// Kind selects the renderer and sanitizer.
	Kind Kind `validate:"required"`
	// Extension names the registered handler when Kind is KindExtension.
	Extension string
	// Default is used while no value is stored.
	Default any
	// Label is shown next to the control.
	Label string
	// Options lists the choices of select and multicheck fields, in display order.
	Options []Option `validate:"dive"`

	// Min, Max and Step bound number fields.
	Min  string
	Max  string
	Step string

	// Rows is the height of textarea fields. Zero means 3.
	Rows int `validate:"gte=0"`
}

// Text declares a single line text field.
func Text(key, label string, def string) Descriptor {
	return Descriptor{Key: key, Kind: KindText, Label: label, Default: def}
}

// Textarea declares a multi line field.
func Textarea(key, label string, def string, rows int) Descriptor {
	return Descriptor{Key: key, Kind: KindTextarea, Label: label, Default: def, Rows: rows}
}

// Checkbox declares an on/off field stored as "1" or "".
func Checkbox(key, label string, checked bool) Descriptor {
	def := ""
	if checked {
		def = "1"
	}

	return Descriptor{Key: key, Kind: KindCheckbox, Label: label, Default: def}
}

// Select declares a drop-down field.
func Select(key, label, def string, options ...Option) Descriptor {
	return Descriptor{Key: key, Kind: KindSelect, Label: label, Default: def, Options: options}
}

// Multicheck declares a set of checkboxes stored as an ordered list.
func Multicheck(key, label string, def []string, options ...Option) Descriptor {
	return Descriptor{Key: key, Kind: KindMulticheck, Label: label, Default: def, Options: options}
}

// Number declares a numeric input.
func Number(key, label, def, lo, hi, step string) Descriptor {
	return Descriptor{Key: key, Kind: KindNumber, Label: label, Default: def, Min: lo, Max: hi, Step: step}
}

// Image declares an image URL field.
func Image(key, label string) Descriptor {
	return Descriptor{Key: key, Kind: KindImage, Label: label, Default: ""}
}

// ColorPicker declares a color field.
func ColorPicker(key, label, def string) Descriptor {
	return Descriptor{Key: key, Kind: KindColorPicker, Label: label, Default: def}
}

// PagePicker declares a drop-down of published pages.
func PagePicker(key, label string) Descriptor {
	return Descriptor{Key: key, Kind: KindPage, Label: label, Default: ""}
}

// CategoryPicker declares a drop-down of categories, 0 meaning all.
func CategoryPicker(key, label string) Descriptor {
	return Descriptor{Key: key, Kind: KindCategory, Label: label, Default: "0"}
}

// Description declares a help paragraph. text may contain restricted markup.
func Description(key, text string) Descriptor {
	return Descriptor{Key: key, Kind: KindDescription, Default: text}
}

// Extension declares a field handled by the extension registered as name.
func Extension(key, name, label string, def any) Descriptor {
	return Descriptor{Key: key, Kind: KindExtension, Extension: name, Label: label, Default: def}
}

func (d Descriptor) rows() int {
	if d.Rows > 0 {
		return d.Rows
	}

	return 3 //nolint:mnd
}
