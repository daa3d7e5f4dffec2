// Package tracing provides OpenTelemetry tracing integration.
//
// NewProvider installs an SDK tracer provider as the global provider so spans
// carry real trace IDs; without it the global no-op provider is used and every
// span is discarded. Middleware starts a server span per HTTP request and the
// service layer adds child spans for extraction and summarization.
//
// Example usage:
//
//	import "textsum/internal/observability/tracing"
//
//	func main() {
//	    tp := tracing.NewProvider(1.0)
//	    defer func() { _ = tp.Shutdown(context.Background()) }()
//	}
//
//	func summarize(ctx context.Context) {
//	    ctx, span := tracing.GetTracer().Start(ctx, "summarize")
//	    defer span.End()
//	    // ...
//	}
package tracing
