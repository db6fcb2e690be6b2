package widget

// Kind is the type tag of a setting descriptor.
type Kind int

// Built-in kinds. KindExtension defers to a handler registered under
// Descriptor.Extension.
const (
	KindInvalid Kind = iota
	KindText
	KindTextarea
	KindCheckbox
	KindSelect
	KindNumber
	KindImage
	KindColorPicker
	KindMulticheck
	KindPage
	KindCategory
	KindDescription
	KindExtension
)

var kindNames = map[Kind]string{ //nolint:gochecknoglobals
	KindText:        "text",
	KindTextarea:    "textarea",
	KindCheckbox:    "checkbox",
	KindSelect:      "select",
	KindNumber:      "number",
	KindImage:       "image",
	KindColorPicker: "colorpicker",
	KindMulticheck:  "multicheck",
	KindPage:        "page",
	KindCategory:    "category",
	KindDescription: "description",
	KindExtension:   "extension",
}

// String returns the kind name, which is also the field template name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "invalid"
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind maps a kind name back to its Kind.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}

	return KindInvalid, false
}
