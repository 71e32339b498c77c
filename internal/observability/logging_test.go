package observability

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func captureDefault(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestWithRunID(t *testing.T) {
	ctx := WithRunID(context.Background(), "run-123")

	if got := GetContext(ctx).RunID; got != "run-123" {
		t.Errorf("expected run-123, got %s", got)
	}
}

func TestWithStage(t *testing.T) {
	ctx := WithStage(WithRunID(context.Background(), "run-1"), "scan")

	lc := GetContext(ctx)
	if lc.Stage != "scan" {
		t.Errorf("expected scan, got %s", lc.Stage)
	}
	if lc.RunID != "run-1" {
		t.Errorf("stage should not clear run id, got %q", lc.RunID)
	}
}

func TestNewRunID(t *testing.T) {
	id := NewRunID()
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("NewRunID() = %q is not a UUID: %v", id, err)
	}
	if id == NewRunID() {
		t.Error("expected distinct run ids")
	}
}

func TestInfoContextIncludesRunAttrs(t *testing.T) {
	buf := captureDefault(t, slog.LevelDebug)
	ctx := WithStage(WithRunID(context.Background(), "run-42"), "write")

	InfoContext(ctx, "document written", slog.String("file", "sitemap-0.xml"))

	out := buf.String()
	for _, want := range []string{"run_id=run-42", "stage=write", "file=sitemap-0.xml", "level=INFO"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}

func TestDebugContextRespectsLevel(t *testing.T) {
	buf := captureDefault(t, slog.LevelInfo)

	DebugContext(context.Background(), "hidden")
	WarnContext(context.Background(), "shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message should be filtered: %q", out)
	}
	if !strings.Contains(out, "level=WARN") {
		t.Errorf("expected warn line, got %q", out)
	}
}
