// Package hflog provides the structured logging used across the
// optimizer and evaluator. It wraps log/slog behind a small package
// level API so call sites never construct their own handler.
package hflog

import (
	"context"
	"log/slog"
	"os"
	"sync"
)

var (
	initOnce sync.Once
	Logger   *slog.Logger
)

// Initialize builds the package logger from HUNTERFORGE_LOG_LEVEL. It is
// called lazily by the package level helpers, so most callers never
// need to invoke it directly.
func Initialize() {
	initOnce.Do(func() {
		handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: getLogLevel(),
		})
		Logger = slog.New(handler)
	})
}

func getLogLevel() slog.Level {
	switch os.Getenv("HUNTERFORGE_LOG_LEVEL") {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func ensure() *slog.Logger {
	if Logger == nil {
		Initialize()
	}
	return Logger
}

func Info(msg string, args ...any)  { ensure().Info(msg, args...) }
func Warn(msg string, args ...any)  { ensure().Warn(msg, args...) }
func Error(msg string, args ...any) { ensure().Error(msg, args...) }
func Debug(msg string, args ...any) { ensure().Debug(msg, args...) }

// WithContext returns a logger enriched with the given key/value pairs,
// typically a run correlation ID attached at the start of an
// optimization or batch evaluation.
func WithContext(args ...any) *slog.Logger {
	return ensure().With(args...)
}

// FromContext extracts a logger stashed on ctx by WithRunID, falling
// back to the package logger.
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return l
	}
	return ensure()
}

type ctxKey struct{}

// WithRunID attaches a run-scoped logger to ctx for downstream
// FromContext calls.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, WithContext("run_id", runID))
}
