package sanitize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var slugSeparatorPattern = regexp.MustCompile(`[^a-z0-9_]+`)

// Slug turns a label into a lowercase, dash separated token usable as an
// element id.
func Slug(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	folded, _, err := transform.String(t, Text(s))
	if err != nil {
		folded = Text(s)
	}

	folded = slugSeparatorPattern.ReplaceAllString(strings.ToLower(folded), "-")

	return strings.Trim(folded, "-")
}
