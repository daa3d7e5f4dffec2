package http

import (
	"net/http"
	"strings"

	"textsum/pkg/security/csp"
)

// CSPConfig selects a Content-Security-Policy per path prefix.
type CSPConfig struct {
	Enabled bool

	// DefaultPolicy applies when no prefix in PathPolicies matches.
	DefaultPolicy *csp.CSPBuilder

	// PathPolicies maps path prefixes to policies; the longest match wins.
	PathPolicies map[string]*csp.CSPBuilder

	ReportOnly bool
}

// DefaultCSPConfig gives the summarizer page and its assets the page policy
// and everything else the strict policy.
func DefaultCSPConfig() CSPConfig {
	return CSPConfig{
		Enabled:       true,
		DefaultPolicy: csp.StrictPolicy(),
		PathPolicies: map[string]*csp.CSPBuilder{
			"/summarize": csp.PagePolicy(),
			"/extract":   csp.PagePolicy(),
		},
	}
}

// SecurityHeaders sets the CSP header chosen by cfg along with the usual
// hardening headers. The root page "/" always gets the page policy.
func SecurityHeaders(cfg CSPConfig) func(http.Handler) http.Handler {
	page := csp.PagePolicy()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Referrer-Policy", "no-referrer")

			if cfg.Enabled {
				policy := cfg.selectPolicy(r.URL.Path)
				if r.URL.Path == "/" {
					policy = page
				}
				if policy != nil {
					name := policy.HeaderName()
					if cfg.ReportOnly {
						name = "Content-Security-Policy-Report-Only"
					}
					if value := policy.Build(); value != "" {
						h.Set(name, value)
					}
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (c CSPConfig) selectPolicy(path string) *csp.CSPBuilder {
	longest := ""
	var matched *csp.CSPBuilder
	for prefix, policy := range c.PathPolicies {
		if strings.HasPrefix(path, prefix) && len(prefix) > len(longest) {
			longest = prefix
			matched = policy
		}
	}
	if matched != nil {
		return matched
	}
	return c.DefaultPolicy
}
