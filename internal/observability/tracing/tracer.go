package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName identifies spans created by the textsum application.
const instrumentationName = "textsum"

// GetTracer returns the tracer of the current global provider. It is looked up on
// every call so that a provider installed after package initialization, such as
// one set by NewProvider or a test, takes effect.
//
// Example usage:
//
//	ctx, span := tracing.GetTracer().Start(ctx, "operation-name")
//	defer span.End()
func GetTracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}

// NewProvider creates an SDK tracer provider that samples the given ratio of
// root spans (child spans follow their parent), registers it as the global
// provider and installs the W3C trace context propagator. The caller owns
// Shutdown.
func NewProvider(sampleRatio float64) *sdktrace.TracerProvider {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(sampleRatio))),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp
}
