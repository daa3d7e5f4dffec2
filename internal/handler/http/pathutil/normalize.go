// Package pathutil maps request paths onto a bounded set of metric labels.
package pathutil

import "strings"

// OtherPath labels every path that is not a known route.
const OtherPath = "/other"

// knownPaths are the routes served by the application. Anything else (scanners,
// typos, favicon requests) collapses into OtherPath.
var knownPaths = map[string]struct{}{
	"/":                 {},
	"/summarize":        {},
	"/summarize/file":   {},
	"/extract":          {},
	"/download":         {},
	"/health":           {},
	"/live":             {},
	"/ready":            {},
	"/metrics":          {},
	"/static/app.js":    {},
	"/static/style.css": {},
}

// NormalizePath returns path when it names a known route and OtherPath
// otherwise. Query strings and a trailing slash are ignored.
//
//	NormalizePath("/summarize")        // "/summarize"
//	NormalizePath("/summarize/")       // "/summarize"
//	NormalizePath("/extract?x=1")      // "/extract"
//	NormalizePath("/wp-login.php")     // "/other"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	if _, ok := knownPaths[path]; ok {
		return path
	}
	return OtherPath
}

// KnownPaths returns the number of distinct labels NormalizePath can produce.
func KnownPaths() int {
	return len(knownPaths) + 1
}
