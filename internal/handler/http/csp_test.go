package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"textsum/pkg/security/csp"
)

func serveWithHeaders(cfg CSPConfig, path string) http.Header {
	handler := SecurityHeaders(cfg)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec.Header()
}

func TestSecurityHeaders_PolicyByPath(t *testing.T) {
	cfg := DefaultCSPConfig()
	page := csp.PagePolicy().Build()
	strict := csp.StrictPolicy().Build()

	tests := []struct {
		path string
		want string
	}{
		{path: "/", want: page},
		{path: "/summarize", want: page},
		{path: "/summarize/file", want: page},
		{path: "/extract", want: page},
		{path: "/download", want: strict},
		{path: "/health", want: strict},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			h := serveWithHeaders(cfg, tt.path)
			assert.Equal(t, tt.want, h.Get("Content-Security-Policy"))
		})
	}
}

func TestSecurityHeaders_Hardening(t *testing.T) {
	h := serveWithHeaders(DefaultCSPConfig(), "/")

	assert.Equal(t, "nosniff", h.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", h.Get("X-Frame-Options"))
	assert.Equal(t, "no-referrer", h.Get("Referrer-Policy"))
}

func TestSecurityHeaders_ReportOnly(t *testing.T) {
	cfg := DefaultCSPConfig()
	cfg.ReportOnly = true

	h := serveWithHeaders(cfg, "/download")

	assert.Empty(t, h.Get("Content-Security-Policy"))
	assert.Equal(t, csp.StrictPolicy().Build(), h.Get("Content-Security-Policy-Report-Only"))
}

func TestSecurityHeaders_Disabled(t *testing.T) {
	cfg := DefaultCSPConfig()
	cfg.Enabled = false

	h := serveWithHeaders(cfg, "/")

	assert.Empty(t, h.Get("Content-Security-Policy"))
	assert.Equal(t, "nosniff", h.Get("X-Content-Type-Options"))
}

func TestCSPConfig_LongestPrefixWins(t *testing.T) {
	specific := csp.NewCSPBuilder().DefaultSrc("'self'")
	cfg := CSPConfig{
		Enabled:       true,
		DefaultPolicy: csp.StrictPolicy(),
		PathPolicies: map[string]*csp.CSPBuilder{
			"/summarize":      csp.PagePolicy(),
			"/summarize/file": specific,
		},
	}

	assert.Same(t, specific, cfg.selectPolicy("/summarize/file"))
	assert.Same(t, cfg.PathPolicies["/summarize"], cfg.selectPolicy("/summarize"))
	assert.Same(t, cfg.DefaultPolicy, cfg.selectPolicy("/other"))
}
