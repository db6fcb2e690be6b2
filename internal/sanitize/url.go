package sanitize

import (
	"net/url"
	"regexp"
	"strings"
)

//nolint:gochecknoglobals
var (
	allowedSchemeList = []string{
		"http", "https", "ftp", "ftps", "mailto", "news", "irc", "gopher", "nntp", "feed",
		"telnet", "mms", "rtsp", "sms", "svn", "tel", "fax", "xmpp", "webcal", "urn",
	}

	allowedSchemes = func() map[string]struct{} {
		m := make(map[string]struct{}, len(allowedSchemeList))
		for _, s := range allowedSchemeList {
			m[s] = struct{}{}
		}

		return m
	}()

	urlCharPattern  = regexp.MustCompile(`[^a-zA-Z0-9\-~+_.?#=!&;,/:%@$|*'()\[\]\x{80}-\x{10FFFF}]`)
	hostPortPattern = regexp.MustCompile(`^([a-zA-Z0-9.\-]+):\d+(?:[/?#]|$)`)
)

// URL cleans a user supplied link. Scheme-less host names, with or without a
// port, get an http:// prefix. Relative references (/, #, ?) are kept, and
// anything with a scheme outside the allow-list collapses to "".
//
// The returned value is not HTML escaped; templates escape on output.
func URL(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	s = strings.ReplaceAll(s, " ", "%20")
	s = urlCharPattern.ReplaceAllString(s, "")

	if s == "" {
		return ""
	}

	if needsScheme(s) {
		s = "http://" + s
	}

	u, err := url.Parse(s)
	if err != nil {
		return ""
	}

	if u.Scheme != "" {
		if _, ok := allowedSchemes[strings.ToLower(u.Scheme)]; !ok {
			return ""
		}
	}

	return s
}

// needsScheme reports whether s is a bare host reference such as
// "example.com/a" or "localhost:3000/x". A leading allowed scheme followed
// by digits ("tel:123") is left alone.
func needsScheme(s string) bool {
	if strings.HasPrefix(s, "/") || strings.HasPrefix(s, "#") || strings.HasPrefix(s, "?") {
		return false
	}

	if !strings.Contains(s, ":") {
		return true
	}

	m := hostPortPattern.FindStringSubmatch(s)
	if m == nil {
		return false
	}

	_, scheme := allowedSchemes[strings.ToLower(m[1])]

	return !scheme
}
