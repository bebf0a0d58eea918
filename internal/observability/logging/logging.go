package logging

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

type Environment string

const (
	EnvDev     Environment = "dev"
	EnvStaging Environment = "staging"
	EnvProd    Environment = "prod"
)

// Module names the component a log line belongs to.
type Module string

type ServiceInfo struct {
	Name     string
	Version  string
	Revision string
}

type HandlerConfig struct {
	Level         slog.Leveler
	ServiceInfo   ServiceInfo
	Environment   Environment
	DefaultModule Module
	GCPProjectID  string
}

type contextKey int

const (
	moduleKey contextKey = iota
	runIDKey
)

func WithModule(ctx context.Context, module Module) context.Context {
	return context.WithValue(ctx, moduleKey, module)
}

func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

func RunIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(runIDKey).(string); ok {
		return v
	}
	return ""
}

// Handler decorates a JSON handler with service, module, run and trace
// attributes taken from the record context.
type Handler struct {
	next          slog.Handler
	defaultModule Module
	gcpProjectID  string
}

func NewHandler(w io.Writer, cfg HandlerConfig) *Handler {
	level := cfg.Level
	if level == nil {
		level = slog.LevelInfo
	}

	base := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}).WithAttrs([]slog.Attr{
		slog.Group("service",
			slog.String("name", cfg.ServiceInfo.Name),
			slog.String("version", cfg.ServiceInfo.Version),
			slog.String("revision", cfg.ServiceInfo.Revision),
		),
		slog.String("env", string(cfg.Environment)),
	})

	return &Handler{
		next:          base,
		defaultModule: cfg.DefaultModule,
		gcpProjectID:  cfg.GCPProjectID,
	}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	module := h.defaultModule
	if m, ok := ctx.Value(moduleKey).(Module); ok && m != "" {
		module = m
	}
	if module != "" {
		r.AddAttrs(slog.String("module", string(module)))
	}

	if runID := RunIDFromContext(ctx); runID != "" {
		r.AddAttrs(slog.String("run_id", runID))
	}

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		r.AddAttrs(
			slog.String("trace_id", sc.TraceID().String()),
			slog.String("span_id", sc.SpanID().String()),
		)
		r.AddAttrs(gcpTraceAttrs(ctx, h.gcpProjectID)...)
	}

	return h.next.Handle(ctx, r)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{
		next:          h.next.WithAttrs(attrs),
		defaultModule: h.defaultModule,
		gcpProjectID:  h.gcpProjectID,
	}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{
		next:          h.next.WithGroup(name),
		defaultModule: h.defaultModule,
		gcpProjectID:  h.gcpProjectID,
	}
}
