package frontend

import (
	"net/url"
	"strings"
)

const loginPath = "/login"

// Decision is the outcome of a navigation. An empty Redirect means proceed.
type Decision struct {
	Redirect string
}

func (d Decision) Proceed() bool { return d.Redirect == "" }

// Guard runs before each navigation. Only the presence of a stored token is
// checked, never its validity.
func Guard(target string, hasToken bool) Decision {
	path := target
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	route, ok := Lookup(path)
	if !ok || !route.RequiresAuth || hasToken {
		return Decision{}
	}
	return Decision{Redirect: loginPath + "?redirect=" + escapeRedirect(target)}
}

// escapeRedirect query-escapes the target but keeps "/" readable, matching
// how the browser router serialises it.
func escapeRedirect(target string) string {
	return strings.ReplaceAll(url.QueryEscape(target), "%2F", "/")
}
