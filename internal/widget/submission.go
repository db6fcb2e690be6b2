package widget

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Submission is the decoded form data of one placement, keyed by setting key.
//
// Values are strings, []string for "name[]" controls and map[string]any for
// nested groups such as "name[0][field]".
type Submission map[string]any

// ParseSubmission collects the fields of values that belong to b.
func ParseSubmission(values url.Values, b Binding) Submission {
	sub := Submission{}
	prefix := b.NamePrefix()

	for name, vals := range values {
		if !strings.HasPrefix(name, prefix) {
			continue
		}

		path, ok := splitBrackets(strings.TrimPrefix(name, prefix))
		if !ok || len(path) == 0 || path[0] == "" {
			continue
		}

		assign(sub, path, vals)
	}

	return sub
}

// splitBrackets turns "[a][0][b]" into ["a", "0", "b"].
func splitBrackets(s string) ([]string, bool) {
	var path []string

	for s != "" {
		if s[0] != '[' {
			return nil, false
		}

		end := strings.IndexByte(s, ']')
		if end < 0 {
			return nil, false
		}

		path = append(path, s[1:end])
		s = s[end+1:]
	}

	return path, true
}

func assign(node map[string]any, path []string, vals []string) {
	for i, seg := range path {
		last := i == len(path)-1

		if last {
			node[seg] = leafValue(vals)
			return
		}

		if path[i+1] == "" && i+1 == len(path)-1 {
			node[seg] = append(stringList(node[seg]), vals...)
			return
		}

		child, ok := node[seg].(map[string]any)
		if !ok {
			child = map[string]any{}
			node[seg] = child
		}

		node = child
	}
}

func leafValue(vals []string) string {
	if len(vals) == 0 {
		return ""
	}

	return vals[len(vals)-1]
}

// OrderedValues returns the values of an index keyed group in index order.
// Numeric keys sort numerically and come first; other keys follow sorted.
// Slices are returned unchanged.
func OrderedValues(v any) []any {
	switch t := v.(type) {
	case nil:
		return nil
	case []any:
		return t
	case map[string]any:
		out := make([]any, 0, len(t))
		for _, k := range orderedKeys(t) {
			out = append(out, t[k])
		}

		return out
	default:
		return []any{t}
	}
}

func orderedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		ni, errI := strconv.Atoi(keys[i])
		nj, errJ := strconv.Atoi(keys[j])

		switch {
		case errI == nil && errJ == nil:
			return ni < nj
		case errI == nil:
			return true
		case errJ == nil:
			return false
		default:
			return keys[i] < keys[j]
		}
	})

	return keys
}
