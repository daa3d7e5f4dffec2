package csp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCSPBuilder_Empty(t *testing.T) {
	b := NewCSPBuilder()

	assert.Equal(t, "", b.Build())
	assert.Equal(t, "Content-Security-Policy", b.HeaderName())
}

func TestCSPBuilder_Order(t *testing.T) {
	got := NewCSPBuilder().
		FormAction("'self'").
		StyleSrc("'self'").
		DefaultSrc("'none'").
		Build()

	assert.Equal(t, "default-src 'none'; style-src 'self'; form-action 'self'", got)
}

func TestCSPBuilder_SetReplaces(t *testing.T) {
	got := NewCSPBuilder().
		ScriptSrc("'self'", "https://cdn.example.com").
		ScriptSrc("'self'").
		Build()

	assert.Equal(t, "script-src 'self'", got)
}

func TestCSPBuilder_EmptySourcesOmitted(t *testing.T) {
	got := NewCSPBuilder().DefaultSrc("'self'").ImgSrc().Build()

	assert.Equal(t, "default-src 'self'", got)
}

func TestCSPBuilder_ReportUri(t *testing.T) {
	b := NewCSPBuilder().DefaultSrc("'self'").ReportUri("/csp-report")
	assert.Equal(t, "default-src 'self'; report-uri /csp-report", b.Build())

	b.ReportUri("")
	assert.Equal(t, "default-src 'self'", b.Build())
}

func TestCSPBuilder_ReportOnly(t *testing.T) {
	b := NewCSPBuilder().ReportOnly(true)
	assert.Equal(t, "Content-Security-Policy-Report-Only", b.HeaderName())

	b.ReportOnly(false)
	assert.Equal(t, "Content-Security-Policy", b.HeaderName())
}

func TestPagePolicy(t *testing.T) {
	got := PagePolicy().Build()

	for _, want := range []string{
		"default-src 'none'",
		"script-src 'self'",
		"style-src 'self'",
		"frame-ancestors 'none'",
		"form-action 'self'",
	} {
		assert.Contains(t, got, want)
	}
	assert.NotContains(t, got, "unsafe-inline")
	assert.NotContains(t, got, "unsafe-eval")
}

func TestStrictPolicy(t *testing.T) {
	got := StrictPolicy().Build()

	assert.True(t, strings.HasPrefix(got, "default-src 'none'"))
	assert.NotContains(t, got, "script-src")
}
