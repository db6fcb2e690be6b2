package sanitize

import (
	"github.com/microcosm-cc/bluemonday"
)

// dataPolicy mirrors the small allow-list used for user supplied snippets:
// inline emphasis, quotes, abbreviations and plain links.
var dataPolicy = newDataPolicy() //nolint:gochecknoglobals

func newDataPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	p.RequireParseableURLs(true)
	p.AllowRelativeURLs(true)
	p.AllowURLSchemes(allowedSchemeList...)

	p.AllowAttrs("href", "title").OnElements("a")
	p.AllowAttrs("title").OnElements("abbr", "acronym")
	p.AllowAttrs("cite").OnElements("blockquote", "q")
	p.AllowAttrs("datetime").OnElements("del")

	p.AllowElements(
		"a", "abbr", "acronym", "b", "blockquote", "cite", "code",
		"del", "em", "i", "q", "s", "strike", "strong",
	)

	return p
}

// HTML removes every element and attribute outside the restricted allow-list.
func HTML(s string) string {
	if s == "" {
		return ""
	}

	return dataPolicy.Sanitize(s)
}
