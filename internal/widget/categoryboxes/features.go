package categoryboxes

import (
	"io"

	"github.com/go-viper/mapstructure/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/atik-theme/atik-assistant/internal/sanitize"
	"github.com/atik-theme/atik-assistant/internal/widget"
)

// FieldType is the extension type name of the features setting.
const FieldType = "features"

const featuresTemplate = "widgets/features"

// Feature is one tile of the grid.
type Feature struct {
	Background string `json:"background"  mapstructure:"background"`
	ButtonText string `json:"button_text" mapstructure:"button_text"`
	ButtonURL  string `json:"button_url"  mapstructure:"button_url"`
}

// Clean re-validates every field of the feature.
func (f Feature) Clean() Feature {
	return Feature{
		Background: sanitize.URL(f.Background),
		ButtonText: sanitize.Text(f.ButtonText),
		ButtonURL:  sanitize.URL(f.ButtonURL),
	}
}

// DecodeFeatures reads a stored or submitted features value. It accepts
// []Feature, a list of maps, or a map keyed by row index. Rows that are not
// maps are dropped.
func DecodeFeatures(v any) []Feature {
	switch t := v.(type) {
	case nil:
		return nil
	case []Feature:
		out := make([]Feature, len(t))
		copy(out, t)

		return out
	case []map[string]any:
		rows := make([]any, 0, len(t))
		for _, m := range t {
			rows = append(rows, m)
		}

		return decodeRows(rows)
	default:
		return decodeRows(widget.OrderedValues(v))
	}
}

func decodeRows(rows []any) []Feature {
	out := make([]Feature, 0, len(rows))

	for i, row := range rows {
		if _, ok := row.(map[string]any); !ok {
			log.Debug().Int("row", i).Msg("dropping malformed feature row")
			continue
		}

		var f Feature

		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &f,
		})
		if err != nil {
			log.Error().Err(err).Msg("failed to create feature decoder")
			return out
		}

		if err = decoder.Decode(row); err != nil {
			log.Debug().Err(err).Int("row", i).Msg("dropping undecodable feature row")
			continue
		}

		out = append(out, f)
	}

	return out
}

// UpdateFeatures is the sanitizer of the features setting. Submitted rows
// are reindexed into a dense list ordered by their submitted index, so gaps
// left by removed rows disappear. An empty submission is returned as is.
func UpdateFeatures(submitted any, _ string, _ widget.Descriptor) any {
	if isEmpty(submitted) {
		return submitted
	}

	features := DecodeFeatures(submitted)
	for i := range features {
		features[i] = features[i].Clean()
	}

	return features
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []Feature:
		return len(t) == 0
	case []any:
		return len(t) == 0
	case []map[string]any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}

type featureRow struct {
	Index int
	Feature
}

type featuresControl struct {
	WidgetID string
	Name     string
	Rows     []featureRow
}

// RenderFeatures returns the admin control of the features setting: the
// stored rows plus a blueprint row the browser clones on "Add Box".
func RenderFeatures(views fiber.Views) widget.RenderFunc {
	return func(w io.Writer, field widget.FieldContext) error {
		features := DecodeFeatures(field.Value)

		rows := make([]featureRow, 0, len(features))
		for i, f := range features {
			rows = append(rows, featureRow{Index: i, Feature: f})
		}

		return views.Render(w, featuresTemplate, featuresControl{
			WidgetID: field.Binding.PlacementID(),
			Name:     field.Name(),
			Rows:     rows,
		})
	}
}
