package widget

import (
	"encoding/json"
	"fmt"
	"maps"
)

// Instance holds the stored settings of one widget placement.
type Instance map[string]any

// Value returns the stored value of key or def when nothing is stored.
func (i Instance) Value(key string, def any) any {
	if v, ok := i[key]; ok && v != nil {
		return v
	}

	return def
}

// String returns the stored value of key formatted as a string.
func (i Instance) String(key string) string {
	return stringValue(i[key])
}

// Clone returns a shallow copy. A nil instance clones to an empty one.
func (i Instance) Clone() Instance {
	out := make(Instance, len(i))
	maps.Copy(out, i)

	return out
}

// Marshal encodes the instance for the host's widget storage.
func (i Instance) Marshal() ([]byte, error) {
	if i == nil {
		return []byte("{}"), nil
	}

	return json.Marshal(i)
}

// UnmarshalInstance decodes a blob written by Marshal.
func UnmarshalInstance(data []byte) (Instance, error) {
	inst := Instance{}
	if len(data) == 0 {
		return inst, nil
	}

	if err := json.Unmarshal(data, &inst); err != nil {
		return nil, fmt.Errorf("decode widget instance: %w", err)
	}

	return inst, nil
}

func stringValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []string:
		if len(t) == 0 {
			return ""
		}

		return t[0]
	case float64:
		// json numbers
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}

		return fmt.Sprint(t)
	default:
		return fmt.Sprint(t)
	}
}

// stringList normalizes list-like values: stored slices, JSON decoded
// slices and JSON encoded array strings.
func stringList(v any) []string {
	switch t := v.(type) {
	case nil:
		return []string{}
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			out = append(out, stringValue(item))
		}

		return out
	case string:
		var out []string
		if err := json.Unmarshal([]byte(t), &out); err == nil {
			return out
		}

		if t == "" {
			return []string{}
		}

		return []string{t}
	case map[string]any:
		out := make([]string, 0, len(t))
		for _, k := range orderedKeys(t) {
			out = append(out, stringValue(t[k]))
		}

		return out
	default:
		return []string{stringValue(t)}
	}
}
