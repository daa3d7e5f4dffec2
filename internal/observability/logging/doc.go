// Package logging builds the slog loggers used by the server and the CLI.
//
// The server logs JSON to stdout; the CLI logs text to stderr so stdout stays
// free for the summary. LOG_LEVEL picks the level for both. Request handlers
// derive their logger from the request context so every line carries the
// request ID:
//
//	logger := logging.WithRequestID(r.Context(), slog.Default())
//	logger.Warn("text extraction failed", slog.String("format", "pdf"))
//
// Document text is never logged, only its size.
package logging
