package settingsrouter

import (
	"regexp"
	"strings"
)

// canonicalPathRE matches a multi-character path with a single trailing slash.
var canonicalPathRE = regexp.MustCompile(`^(/)([/\-\w]+)(/)$`)

// CanonicalPath strips a single trailing slash so that "/people/" and "/people"
// are the same path.  The root path "/" is returned unchanged, and so is
// anything consisting only of slashes beyond the root (e.g. "//"), which
// therefore matches no route.
func CanonicalPath(p string) string {
	return canonicalPathRE.ReplaceAllString(p, "$1$2")
}

// splitLocation splits a path-and-query string (as stored in history) into
// its path and parsed query parts.  Any fragment is discarded.
func splitLocation(loc string) (string, QueryParams) {

	if i := strings.IndexByte(loc, '#'); i >= 0 {
		loc = loc[:i]
	}

	p, rawQuery := loc, ""
	if i := strings.IndexByte(loc, '?'); i >= 0 {
		p, rawQuery = loc[:i], loc[i+1:]
	}

	q, err := ParseQuery(rawQuery)
	if err != nil {
		q = nil
	}

	return p, q
}

// joinLocation is the inverse of splitLocation.
func joinLocation(p string, q QueryParams) string {
	if enc := q.Encode(); enc != "" {
		return p + "?" + enc
	}
	return p
}
