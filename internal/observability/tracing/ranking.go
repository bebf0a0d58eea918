package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const rankingTracerName = "github.com/KasumiMercury/primind-top-workplaces/internal/service/topworkplaces"

func RankingTracer() trace.Tracer {
	return otel.Tracer(rankingTracerName)
}

func StartRankingRunSpan(ctx context.Context, runID string, limit int) (context.Context, trace.Span) {
	return RankingTracer().Start(ctx, "ranking.run",
		trace.WithAttributes(
			attribute.String("run_id", runID),
			attribute.Int("ranking.limit", limit),
		),
	)
}

func StartCollectSpan(ctx context.Context, resource, url string) (context.Context, trace.Span) {
	return RankingTracer().Start(ctx, "ranking.collect."+resource,
		trace.WithAttributes(
			attribute.String("collect.resource", resource),
			attribute.String("collect.start_url", url),
		),
	)
}

func StartPageFetchSpan(ctx context.Context, resource, url string, pageIndex int) (context.Context, trace.Span) {
	return RankingTracer().Start(ctx, "ranking.collect.page",
		trace.WithAttributes(
			attribute.String("collect.resource", resource),
			attribute.String("url", url),
			attribute.Int("collect.page_index", pageIndex),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func RecordError(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}

func RecordCollectResult(span trace.Span, pages, items int, err error) {
	span.SetAttributes(
		attribute.Int("collect.pages", pages),
		attribute.Int("collect.items", items),
	)
	RecordError(span, err)
}

func RecordRankingRunResult(span trace.Span, activeWorkplaces, completedShifts, results int, err error) {
	span.SetAttributes(
		attribute.Int("ranking.active_workplaces", activeWorkplaces),
		attribute.Int("ranking.completed_shifts", completedShifts),
		attribute.Int("ranking.results", results),
	)
	RecordError(span, err)
}
