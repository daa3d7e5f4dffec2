package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"golang.org/x/sync/errgroup"

	"textsum/internal/config"
	"textsum/internal/infra/extractor"
	"textsum/internal/infra/summarizer"
	"textsum/internal/infra/tokenizer"
	"textsum/internal/observability/logging"
	"textsum/internal/observability/tracing"

	sumUC "textsum/internal/usecase/summary"

	hhttp "textsum/internal/handler/http"
	"textsum/internal/handler/http/requestid"
	hsum "textsum/internal/handler/http/summary"
)

// bodyOverhead is the room left in a request body for multipart framing and
// form fields on top of the largest accepted upload.
const bodyOverhead = 1 << 20

func main() {
	logger := initLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	initTokenizer(logger)
	tp := initTracing(logger, cfg.Tracing)

	version := getVersion()
	components, err := setupServer(logger, cfg, version)
	if err != nil {
		logger.Error("failed to set up server", slog.Any("error", err))
		os.Exit(1)
	}

	if err := runServer(logger, cfg.Server, components, version); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		shutdownTracing(logger, tp)
		os.Exit(1)
	}
	shutdownTracing(logger, tp)
}

// initLogger initializes the JSON logger and makes it the default.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// initTokenizer loads the sentence model before the server accepts traffic.
func initTokenizer(logger *slog.Logger) {
	if err := tokenizer.Init(); err != nil {
		logger.Error("failed to load sentence tokenizer", slog.Any("error", err))
		os.Exit(1)
	}
}

func initTracing(logger *slog.Logger, cfg config.TracingConfig) *sdktrace.TracerProvider {
	if !cfg.Enabled {
		return nil
	}
	logger.Info("tracing enabled", slog.Float64("sample_ratio", cfg.SampleRatio))
	return tracing.NewProvider(cfg.SampleRatio)
}

func shutdownTracing(logger *slog.Logger, tp *sdktrace.TracerProvider) {
	if tp == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := tp.Shutdown(ctx); err != nil {
		logger.Error("tracer shutdown failed", slog.Any("error", err))
	}
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// ServerComponents holds components needed for server operation and cleanup.
type ServerComponents struct {
	Handler     http.Handler
	RateLimiter *hhttp.RateLimiter
	IdleTTL     time.Duration
}

// setupServer wires the summarizer, the routes and the middleware chain.
func setupServer(logger *slog.Logger, cfg *config.AppConfig, version string) (*ServerComponents, error) {
	formats := make([]extractor.Format, 0, len(cfg.Upload.Formats))
	for _, name := range cfg.Upload.Formats {
		f, err := extractor.ParseFormat(name)
		if err != nil {
			return nil, err
		}
		formats = append(formats, f)
	}
	ex := extractor.New(extractor.Config{MaxBytes: cfg.Upload.MaxBytes, Formats: formats})

	tok, err := tokenizer.New(cfg.Summarizer.Language)
	if err != nil {
		return nil, err
	}
	sumCfg := summarizer.Config{
		Algorithm:     summarizer.Algorithm(cfg.Summarizer.Algorithm),
		Language:      cfg.Summarizer.Language,
		Threshold:     cfg.Summarizer.Threshold,
		Epsilon:       cfg.Summarizer.Epsilon,
		MaxIterations: cfg.Summarizer.MaxIterations,
	}
	sum, err := summarizer.New(sumCfg, tok, summarizer.NewPrometheusSummaryMetrics())
	if err != nil {
		return nil, err
	}

	svc := &sumUC.Service{
		Extractor:    ex,
		Summarizer:   sum,
		MinSentences: cfg.Summary.MinSentences,
		MaxSentences: cfg.Summary.MaxSentences,
	}

	view, err := hsum.NewView(hsum.PageConfig{
		MinSentences:     cfg.Summary.MinSentences,
		MaxSentences:     cfg.Summary.MaxSentences,
		DefaultSentences: cfg.Summary.DefaultSentences,
		Accept:           ex.AcceptAttribute(),
		MaxUploadBytes:   ex.MaxBytes(),
	})
	if err != nil {
		return nil, err
	}

	var limiter *hhttp.RateLimiter
	var limit func(http.Handler) http.Handler
	if cfg.RateLimit.Enabled {
		limiter = hhttp.NewRateLimiter(hhttp.RateLimiterConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
			IdleTTL:           cfg.RateLimit.IdleTTL,
			TrustProxyHeaders: cfg.RateLimit.TrustProxyHeaders,
		})
		limit = limiter.Limit
		logger.Info("rate limiting initialized",
			slog.Float64("requests_per_second", cfg.RateLimit.RequestsPerSecond),
			slog.Int("burst", cfg.RateLimit.Burst),
			slog.Bool("trust_proxy_headers", cfg.RateLimit.TrustProxyHeaders))
	} else {
		logger.Warn("rate limiting is DISABLED - not recommended for production")
	}

	mux := http.NewServeMux()
	hsum.Register(mux, svc, view, logger, limit)

	mux.Handle("GET /health", &hhttp.HealthHandler{
		Version:        version,
		TokenizerReady: tokenizer.Ready,
		Algorithm:      string(sumCfg.Algorithm),
		Language:       tok.Language(),
		Formats:        cfg.Upload.Formats,
		RateLimiter:    limiter,
	})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{Ready: tokenizer.Ready})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	logger.Info("summarizer configured",
		slog.String("algorithm", string(sumCfg.Algorithm)),
		slog.String("language", tok.Language()),
		slog.String("formats", ex.AcceptAttribute()),
		slog.Int64("max_upload_bytes", ex.MaxBytes()))

	return &ServerComponents{
		Handler:     applyMiddleware(logger, mux, cfg),
		RateLimiter: limiter,
		IdleTTL:     cfg.RateLimit.IdleTTL,
	}, nil
}

// applyMiddleware wraps the handler with the middleware chain.
// Order: Request ID → Logging → Recovery → Metrics → Tracing → Security headers → Body limit → Timeout
func applyMiddleware(logger *slog.Logger, handler http.Handler, cfg *config.AppConfig) http.Handler {
	return hhttp.Chain(handler,
		requestid.Middleware,
		hhttp.Logging(logger),
		hhttp.Recover(logger),
		hhttp.MetricsMiddleware,
		tracing.Middleware,
		hhttp.SecurityHeaders(hhttp.DefaultCSPConfig()),
		hhttp.LimitRequestBody(cfg.Upload.MaxBytes+bodyOverhead),
		hhttp.Timeout(cfg.Server.RequestTimeout),
	)
}

// runServer serves until SIGINT or SIGTERM, then shuts down gracefully.
func runServer(logger *slog.Logger, cfg config.ServerConfig, components *ServerComponents, version string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           components.Handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, gctx := errgroup.WithContext(ctx)

	if components.RateLimiter != nil {
		interval := components.IdleTTL / 2
		if interval <= 0 {
			interval = time.Minute
		}
		g.Go(func() error {
			hhttp.StartRateLimitCleanup(gctx, components.RateLimiter, interval, logger)
			return nil
		})
	}

	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", cfg.Addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", slog.Any("error", err))
			return err
		}
		logger.Info("server stopped")
		return nil
	})

	return g.Wait()
}
