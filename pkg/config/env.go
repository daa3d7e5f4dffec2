// Package config reads typed settings from environment variables.
//
// Every getter returns its default when the variable is unset or empty. A value
// that does not parse is logged as a warning and the default is used, so a typo
// never silently becomes a zero value.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// lookup parses the variable named key with parse, falling back to def.
func lookup[T any](key string, def T, parse func(string) (T, error)) T {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := parse(raw)
	if err != nil {
		slog.Warn("invalid value for environment variable, using default",
			slog.String("key", key),
			slog.String("value", raw),
			slog.Any("default", def),
			slog.String("error", err.Error()))
		return def
	}
	return v
}

// GetEnvString returns the variable as is, or def.
//
//	language := GetEnvString("SUMMARIZER_LANGUAGE", "english")
func GetEnvString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// GetEnvInt returns the variable as an int.
//
//	maxSentences := GetEnvInt("SUMMARY_MAX_SENTENCES", 10)
func GetEnvInt(key string, def int) int {
	return lookup(key, def, strconv.Atoi)
}

// GetEnvInt64 returns the variable as an int64, e.g. a byte limit.
func GetEnvInt64(key string, def int64) int64 {
	return lookup(key, def, func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	})
}

// GetEnvFloat returns the variable as a float64.
func GetEnvFloat(key string, def float64) float64 {
	return lookup(key, def, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
}

// GetEnvBool returns the variable as a bool. Accepted spellings are those of
// strconv.ParseBool ("1", "t", "true", "0", "f", "false", ...).
func GetEnvBool(key string, def bool) bool {
	return lookup(key, def, strconv.ParseBool)
}

// GetEnvDuration returns the variable parsed by time.ParseDuration ("30s", "1m30s").
// A bare number has no unit and is rejected.
func GetEnvDuration(key string, def time.Duration) time.Duration {
	return lookup(key, def, time.ParseDuration)
}

// GetEnvStringList splits a comma-separated variable, trimming items and
// dropping empty ones. def is returned when nothing is left.
//
//	// UPLOAD_FORMATS="txt, pdf"  ->  ["txt", "pdf"]
func GetEnvStringList(key string, def []string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if item := strings.TrimSpace(part); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
