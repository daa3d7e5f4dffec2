package tracing

import (
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"textsum/internal/handler/http/requestid"
	"textsum/internal/handler/http/responsewriter"
)

// Middleware starts a server span per request, continuing any incoming W3C
// trace context, and returns the trace ID in the X-Trace-Id header.
//
// The span is renamed after the matched ServeMux pattern ("POST /summarize")
// when routing happened on the same request value. Responses of 500 and above
// mark the span as failed; user errors such as 422 do not.
//
//	handler := tracing.Middleware(mux)
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
		ctx, span := GetTracer().Start(ctx, r.Method+" "+r.URL.Path, trace.WithSpanKind(trace.SpanKindServer))
		defer span.End()

		if sc := span.SpanContext(); sc.HasTraceID() {
			w.Header().Set("X-Trace-Id", sc.TraceID().String())
		}

		rw := responsewriter.Wrap(w)
		r = r.WithContext(ctx)
		next.ServeHTTP(rw, r)

		if r.Pattern != "" {
			span.SetName(r.Pattern)
			span.SetAttributes(attribute.String("http.route", r.Pattern))
		}
		attrs := []attribute.KeyValue{
			attribute.String("http.method", r.Method),
			attribute.String("http.path", r.URL.Path),
			attribute.Int("http.status_code", rw.StatusCode()),
			attribute.Int64("http.request_content_length", r.ContentLength),
			attribute.Int("http.response_size", rw.BytesWritten()),
		}
		if id := requestid.FromContext(ctx); id != "" {
			attrs = append(attrs, attribute.String("request.id", id))
		}
		span.SetAttributes(attrs...)

		if code := rw.StatusCode(); code >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(code))
			span.SetAttributes(attribute.Bool("error", true))
		}
	})
}
