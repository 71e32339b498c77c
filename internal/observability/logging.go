// Package observability threads a per-run log context (run ID and current
// stage) through context.Context and logs through the default slog logger.
package observability

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Uranus-Queen/fuwari/internal/logfields"
)

// LogContext is the structured context attached to every record of a run.
type LogContext struct {
	RunID string
	Stage string
}

type ctxKey struct{}

// NewRunID returns a fresh identifier for a generation run.
func NewRunID() string {
	return uuid.NewString()
}

func WithRunID(ctx context.Context, runID string) context.Context {
	lc := GetContext(ctx)
	lc.RunID = runID
	return context.WithValue(ctx, ctxKey{}, lc)
}

// WithStage marks ctx as being inside a pipeline stage (scan, render, write).
func WithStage(ctx context.Context, stage string) context.Context {
	lc := GetContext(ctx)
	lc.Stage = stage
	return context.WithValue(ctx, ctxKey{}, lc)
}

// GetContext returns the log context carried by ctx, or the zero value.
func GetContext(ctx context.Context) LogContext {
	if ctx == nil {
		return LogContext{}
	}
	lc, _ := ctx.Value(ctxKey{}).(LogContext)
	return lc
}

func (lc LogContext) attrs() []slog.Attr {
	out := make([]slog.Attr, 0, 2)
	if lc.RunID != "" {
		out = append(out, logfields.RunID(lc.RunID))
	}
	if lc.Stage != "" {
		out = append(out, logfields.Stage(lc.Stage))
	}
	return out
}

func emit(ctx context.Context, level slog.Level, msg string, attrs []slog.Attr) {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := slog.Default()
	if !logger.Enabled(ctx, level) {
		return
	}
	logger.LogAttrs(ctx, level, msg, append(GetContext(ctx).attrs(), attrs...)...)
}

func DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	emit(ctx, slog.LevelDebug, msg, attrs)
}

func InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	emit(ctx, slog.LevelInfo, msg, attrs)
}

func WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	emit(ctx, slog.LevelWarn, msg, attrs)
}
