package sanitize

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// maxTextPasses bounds how many layers of entity encoded markup Text unwraps.
const maxTextPasses = 8

var (
	strictPolicy = bluemonday.StrictPolicy() //nolint:gochecknoglobals

	octetPattern      = regexp.MustCompile(`%[a-fA-F0-9]{2}`)
	whitespacePattern = regexp.MustCompile(`[\r\n\t ]+`)
)

// Text strips all markup from s, removes percent encoded octets and folds
// any run of whitespace into a single space.
//
// The result never contains a tag and Text(Text(s)) == Text(s).
func Text(s string) string {
	if s == "" {
		return ""
	}

	out := s

	for range maxTextPasses {
		next := textPass(out)
		if next == out {
			return out
		}

		out = next
	}

	// still unwrapping entities: keep them encoded so nothing tag-like survives
	return strings.TrimSpace(strictPolicy.Sanitize(out))
}

func textPass(s string) string {
	s = strings.ToValidUTF8(s, "")
	s = html.UnescapeString(strictPolicy.Sanitize(s))
	s = octetPattern.ReplaceAllString(s, "")
	s = whitespacePattern.ReplaceAllString(s, " ")

	return strings.TrimSpace(s)
}
