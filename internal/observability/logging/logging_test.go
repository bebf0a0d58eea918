package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"go.opentelemetry.io/otel/trace"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("failed to decode log line %q: %v", buf.String(), err)
	}
	return line
}

func TestHandler_AddsServiceAndModule(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, HandlerConfig{
		ServiceInfo:   ServiceInfo{Name: "top-workplaces", Version: "v1"},
		Environment:   EnvDev,
		DefaultModule: "ranking",
	}))

	logger.Info("hello")

	line := decodeLine(t, &buf)
	if line["module"] != "ranking" {
		t.Errorf("module = %v, want ranking", line["module"])
	}
	if line["env"] != "dev" {
		t.Errorf("env = %v, want dev", line["env"])
	}
	service, ok := line["service"].(map[string]any)
	if !ok || service["name"] != "top-workplaces" || service["version"] != "v1" {
		t.Errorf("service = %v", line["service"])
	}
	if _, ok := line["trace_id"]; ok {
		t.Error("trace_id present without a span")
	}
}

func TestHandler_ContextAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, HandlerConfig{DefaultModule: "ranking"}))

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	})

	ctx := trace.ContextWithSpanContext(context.Background(), sc)
	ctx = WithModule(ctx, "collector")
	ctx = WithRunID(ctx, "run-42")

	logger.InfoContext(ctx, "fetched")

	line := decodeLine(t, &buf)
	if line["module"] != "collector" {
		t.Errorf("module = %v, want collector", line["module"])
	}
	if line["run_id"] != "run-42" {
		t.Errorf("run_id = %v, want run-42", line["run_id"])
	}
	if line["trace_id"] != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Errorf("trace_id = %v", line["trace_id"])
	}
	if line["span_id"] != "00f067aa0ba902b7" {
		t.Errorf("span_id = %v", line["span_id"])
	}
}

func TestHandler_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, HandlerConfig{Level: slog.LevelWarn}))

	logger.Info("dropped")
	if buf.Len() != 0 {
		t.Errorf("info line written at warn level: %s", buf.String())
	}

	logger.Warn("kept")
	if buf.Len() == 0 {
		t.Error("warn line not written at warn level")
	}
}

func TestRunIDFromContext_Empty(t *testing.T) {
	if got := RunIDFromContext(context.Background()); got != "" {
		t.Errorf("RunIDFromContext() = %q, want empty", got)
	}
}
