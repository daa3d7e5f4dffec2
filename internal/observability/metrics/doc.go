// Package metrics provides the application's business metrics.
//
// HTTP transport metrics live with the HTTP middleware; this package covers what
// users do with the service: documents extracted per format and summary requests
// per source.
//
// All metrics are registered with the Prometheus default registry and exposed via
// the /metrics endpoint.
//
// Example usage:
//
//	import "textsum/internal/observability/metrics"
//
//	func extract(format string) {
//	    start := time.Now()
//	    // ... extract text ...
//	    metrics.RecordExtraction(format, true, time.Since(start), len(text))
//	}
package metrics
