package widget

import (
	"github.com/rs/zerolog/log"

	"github.com/atik-theme/atik-assistant/internal/sanitize"
)

// ApplyUpdate turns a submission into the next stored instance.
//
// Keys of previous that the schema does not know are carried over. An empty
// schema returns previous untouched. Extension fields without a registered
// handler keep their previous value; the submission is never stored
// unsanitized.
func (e *Engine) ApplyUpdate(s *Schema, submitted Submission, previous Instance, actor Actor) Instance {
	if s.Len() == 0 {
		return previous
	}

	next := previous.Clone()

	for _, d := range s.Descriptors() {
		raw, present := submitted[d.Key]

		switch d.Kind {
		case KindTextarea:
			value := ""
			if present {
				value = stringValue(raw)
			}

			if actor != nil && actor.Can(CapUnfilteredHTML) {
				next[d.Key] = value
			} else {
				next[d.Key] = sanitize.HTML(value)
			}

		case KindMulticheck:
			values := make([]string, 0)
			if present {
				for _, v := range stringList(raw) {
					if clean := sanitize.Text(v); clean != "" {
						values = append(values, clean)
					}
				}
			}

			next[d.Key] = values

		case KindText, KindCheckbox, KindSelect, KindNumber, KindColorPicker, KindPage, KindCategory:
			next[d.Key] = sanitize.Text(stringValue(raw))

		case KindImage:
			next[d.Key] = sanitize.URL(stringValue(raw))

		case KindDescription:
			// display only

		case KindExtension:
			h, ok := e.registry.Lookup(d.Extension)
			if !ok {
				log.Warn().
					Str("key", d.Key).
					Str("type", d.Extension).
					Msg("no sanitizer registered for widget field type, submission rejected")

				continue
			}

			next[d.Key] = h.Update(raw, d.Key, d)

		default:
		}
	}

	return next
}
