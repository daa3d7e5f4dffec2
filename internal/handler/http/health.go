// Package http wires the summarizer's HTTP surface: middleware, health
// probes, metrics and rate limiting. Route handlers live in sub-packages.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // RFC 3339
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// HealthHandler reports the state of the components a summary request needs.
// Only the tokenizer can make the service unhealthy; the other checks are
// informational.
type HealthHandler struct {
	Version string

	// TokenizerReady reports whether the sentence model is loaded.
	TokenizerReady func() bool

	Algorithm string
	Language  string
	Formats   []string

	// RateLimiter is optional.
	RateLimiter *RateLimiter
}

// ServeHTTP returns 200 when healthy and 503 otherwise.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]CheckStatus)
	healthy := true

	tok := h.checkTokenizer()
	checks["tokenizer"] = tok
	if tok.Status != "healthy" {
		healthy = false
	}

	checks["summarizer"] = CheckStatus{
		Status:  "healthy",
		Details: map[string]any{"algorithm": h.Algorithm, "language": h.Language},
	}
	checks["extractor"] = CheckStatus{
		Status:  "healthy",
		Details: map[string]any{"formats": h.Formats},
	}
	if h.RateLimiter != nil {
		checks["rate_limiter"] = CheckStatus{
			Status:  "healthy",
			Details: map[string]any{"active_clients": h.RateLimiter.ActiveClients()},
		}
	}

	status := "healthy"
	code := http.StatusOK
	if !healthy {
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	resp := HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Default().Warn("health: failed to encode response", slog.Any("error", err))
	}
}

func (h *HealthHandler) checkTokenizer() CheckStatus {
	if h.TokenizerReady == nil {
		return CheckStatus{Status: "unhealthy", Message: "not configured"}
	}
	if !h.TokenizerReady() {
		return CheckStatus{Status: "unhealthy", Message: "sentence model not loaded"}
	}
	return CheckStatus{Status: "healthy"}
}

// ReadyHandler is the readiness probe. The service is ready once the sentence
// tokenizer has been initialised.
type ReadyHandler struct {
	Ready func() bool
}

func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.Ready == nil || !h.Ready() {
		http.Error(w, "not ready", http.StatusServiceUnavailable)
		return
	}
	writePlain(w, "ready")
}

// LiveHandler is the liveness probe and always answers 200.
type LiveHandler struct{}

func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writePlain(w, "alive")
}

func writePlain(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(body)); err != nil {
		slog.Default().Warn("probe: failed to write response", slog.Any("error", err))
	}
}
