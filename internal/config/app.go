// Package config loads the textsum service configuration.
//
// Values are resolved in three layers: built-in defaults, an optional YAML file
// (path in TEXTSUM_CONFIG), then environment variables. The result is validated
// once at startup.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	pkgconfig "textsum/pkg/config"
)

// ConfigPathEnv names the environment variable holding the YAML config path.
const ConfigPathEnv = "TEXTSUM_CONFIG"

// AppConfig holds the complete service configuration.
type AppConfig struct {
	Server     ServerConfig     `yaml:"server"`
	Summary    SummaryConfig    `yaml:"summary"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Upload     UploadConfig     `yaml:"upload"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Tracing    TracingConfig    `yaml:"tracing"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	// Addr is the listen address. Default: ":8080"
	Addr string `yaml:"addr"`
	// ReadHeaderTimeout bounds reading request headers. Default: 10s
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	// RequestTimeout bounds summarize and extract requests. Default: 30s
	RequestTimeout time.Duration `yaml:"request_timeout"`
	// ShutdownTimeout bounds graceful shutdown. Default: 10s
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// SummaryConfig bounds the sentence count users can request.
type SummaryConfig struct {
	MinSentences     int `yaml:"min_sentences"`
	MaxSentences     int `yaml:"max_sentences"`
	DefaultSentences int `yaml:"default_sentences"`
}

// SummarizerConfig tunes the summarization algorithm.
type SummarizerConfig struct {
	// Algorithm is "lexrank" or "lead". Default: "lexrank"
	Algorithm string `yaml:"algorithm"`
	// Language selects the tokenizer model. Default: "english"
	Language      string  `yaml:"language"`
	Threshold     float64 `yaml:"threshold"`
	Epsilon       float64 `yaml:"epsilon"`
	MaxIterations int     `yaml:"max_iterations"`
}

// UploadConfig limits file uploads.
type UploadConfig struct {
	// MaxBytes is the largest accepted file. Default: 10MB
	MaxBytes int64 `yaml:"max_bytes"`
	// Formats lists the accepted formats by name. Default: txt, pdf, docx, html
	Formats []string `yaml:"formats"`
}

// RateLimitConfig configures the per-client token bucket.
type RateLimitConfig struct {
	Enabled bool `yaml:"enabled"`
	// RequestsPerSecond is the sustained rate per client.
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	// Burst is the bucket size.
	Burst int `yaml:"burst"`
	// IdleTTL is how long an idle client's bucket is kept.
	IdleTTL time.Duration `yaml:"idle_ttl"`
	// TrustProxyHeaders keys clients by X-Forwarded-For / X-Real-IP instead of
	// the connection address. Enable only behind a reverse proxy.
	TrustProxyHeaders bool `yaml:"trust_proxy_headers"`
}

// TracingConfig configures OpenTelemetry sampling.
type TracingConfig struct {
	Enabled     bool    `yaml:"enabled"`
	SampleRatio float64 `yaml:"sample_ratio"`
}

// Default returns the built-in configuration.
func Default() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Addr:              ":8080",
			ReadHeaderTimeout: 10 * time.Second,
			RequestTimeout:    30 * time.Second,
			ShutdownTimeout:   10 * time.Second,
		},
		Summary: SummaryConfig{
			MinSentences:     1,
			MaxSentences:     10,
			DefaultSentences: 3,
		},
		Summarizer: SummarizerConfig{
			Algorithm:     "lexrank",
			Language:      "english",
			Threshold:     0.1,
			Epsilon:       0.1,
			MaxIterations: 10000,
		},
		Upload: UploadConfig{
			MaxBytes: 10 << 20,
			Formats:  []string{"txt", "pdf", "docx", "html"},
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerSecond: 5,
			Burst:             10,
			IdleTTL:           10 * time.Minute,
		},
		Tracing: TracingConfig{
			Enabled:     false,
			SampleRatio: 1.0,
		},
	}
}

// Load builds the configuration from defaults, the YAML file named by
// TEXTSUM_CONFIG (if set) and environment overrides, then validates it.
func Load() (*AppConfig, error) {
	return LoadFile(os.Getenv(ConfigPathEnv))
}

// LoadFile is Load with an explicit YAML path. An empty path skips the file.
func LoadFile(path string) (*AppConfig, error) {
	cfg := Default()

	if path != "" {
		// #nosec G304 -- path comes from the operator's environment, not from requests
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// applyEnv overrides fields from environment variables. PORT is honoured for
// platforms that inject it.
func (c *AppConfig) applyEnv() {
	if port := os.Getenv("PORT"); port != "" {
		c.Server.Addr = ":" + port
	}
	c.Server.Addr = pkgconfig.GetEnvString("TEXTSUM_ADDR", c.Server.Addr)
	c.Server.ReadHeaderTimeout = pkgconfig.GetEnvDuration("READ_HEADER_TIMEOUT", c.Server.ReadHeaderTimeout)
	c.Server.RequestTimeout = pkgconfig.GetEnvDuration("REQUEST_TIMEOUT", c.Server.RequestTimeout)
	c.Server.ShutdownTimeout = pkgconfig.GetEnvDuration("SHUTDOWN_TIMEOUT", c.Server.ShutdownTimeout)

	c.Summary.MinSentences = pkgconfig.GetEnvInt("SUMMARY_MIN_SENTENCES", c.Summary.MinSentences)
	c.Summary.MaxSentences = pkgconfig.GetEnvInt("SUMMARY_MAX_SENTENCES", c.Summary.MaxSentences)
	c.Summary.DefaultSentences = pkgconfig.GetEnvInt("SUMMARY_DEFAULT_SENTENCES", c.Summary.DefaultSentences)

	c.Summarizer.Algorithm = pkgconfig.GetEnvString("SUMMARIZER_ALGORITHM", c.Summarizer.Algorithm)
	c.Summarizer.Language = pkgconfig.GetEnvString("SUMMARIZER_LANGUAGE", c.Summarizer.Language)
	c.Summarizer.Threshold = pkgconfig.GetEnvFloat("SUMMARIZER_THRESHOLD", c.Summarizer.Threshold)
	c.Summarizer.Epsilon = pkgconfig.GetEnvFloat("SUMMARIZER_EPSILON", c.Summarizer.Epsilon)
	c.Summarizer.MaxIterations = pkgconfig.GetEnvInt("SUMMARIZER_MAX_ITERATIONS", c.Summarizer.MaxIterations)

	c.Upload.MaxBytes = pkgconfig.GetEnvInt64("UPLOAD_MAX_BYTES", c.Upload.MaxBytes)
	c.Upload.Formats = pkgconfig.GetEnvStringList("UPLOAD_FORMATS", c.Upload.Formats)

	c.RateLimit.Enabled = pkgconfig.GetEnvBool("RATELIMIT_ENABLED", c.RateLimit.Enabled)
	c.RateLimit.RequestsPerSecond = pkgconfig.GetEnvFloat("RATELIMIT_RPS", c.RateLimit.RequestsPerSecond)
	c.RateLimit.Burst = pkgconfig.GetEnvInt("RATELIMIT_BURST", c.RateLimit.Burst)
	c.RateLimit.IdleTTL = pkgconfig.GetEnvDuration("RATELIMIT_IDLE_TTL", c.RateLimit.IdleTTL)
	c.RateLimit.TrustProxyHeaders = pkgconfig.GetEnvBool("RATELIMIT_TRUST_PROXY", c.RateLimit.TrustProxyHeaders)

	c.Tracing.Enabled = pkgconfig.GetEnvBool("TRACING_ENABLED", c.Tracing.Enabled)
	c.Tracing.SampleRatio = pkgconfig.GetEnvFloat("TRACING_SAMPLE_RATIO", c.Tracing.SampleRatio)
}

// Validate checks cross-field constraints. Algorithm, language and format names
// are checked by the components that consume them.
func (c *AppConfig) Validate() error {
	var errs []error

	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr cannot be empty"))
	}
	if err := pkgconfig.ValidateNonNegativeDuration(c.Server.ReadHeaderTimeout); err != nil {
		errs = append(errs, fmt.Errorf("server.read_header_timeout: %w", err))
	}
	if err := pkgconfig.ValidateDurationRange(c.Server.RequestTimeout, time.Second, 10*time.Minute); err != nil {
		errs = append(errs, fmt.Errorf("server.request_timeout: %w", err))
	}
	if err := pkgconfig.ValidatePositiveDuration(c.Server.ShutdownTimeout); err != nil {
		errs = append(errs, fmt.Errorf("server.shutdown_timeout: %w", err))
	}

	s := c.Summary
	if s.MinSentences < 1 {
		errs = append(errs, errors.New("summary.min_sentences must be at least 1"))
	}
	if s.MaxSentences < s.MinSentences {
		errs = append(errs, errors.New("summary.max_sentences must not be below min_sentences"))
	}
	if s.DefaultSentences < s.MinSentences || s.DefaultSentences > s.MaxSentences {
		errs = append(errs, errors.New("summary.default_sentences must be between min_sentences and max_sentences"))
	}

	if c.Upload.MaxBytes <= 0 {
		errs = append(errs, errors.New("upload.max_bytes must be positive"))
	}
	if len(c.Upload.Formats) == 0 {
		errs = append(errs, errors.New("upload.formats cannot be empty"))
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerSecond <= 0 {
			errs = append(errs, errors.New("rate_limit.requests_per_second must be positive"))
		}
		if c.RateLimit.Burst < 1 {
			errs = append(errs, errors.New("rate_limit.burst must be at least 1"))
		}
		if err := pkgconfig.ValidatePositiveDuration(c.RateLimit.IdleTTL); err != nil {
			errs = append(errs, fmt.Errorf("rate_limit.idle_ttl: %w", err))
		}
	}

	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		errs = append(errs, errors.New("tracing.sample_ratio must be between 0.0 and 1.0"))
	}

	return errors.Join(errs...)
}
