package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	rankingMeterName = "topworkplaces.service"

	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

type RankingMetrics struct {
	runs            metric.Int64Counter
	runDuration     metric.Float64Histogram
	completedShifts metric.Int64Counter
}

func NewRankingMetrics() (*RankingMetrics, error) {
	meter := otel.Meter(rankingMeterName)

	runs, err := meter.Int64Counter(
		"ranking_runs_total",
		metric.WithDescription("Total number of top-workplaces runs by outcome"),
		metric.WithUnit("{run}"),
	)
	if err != nil {
		return nil, err
	}

	runDuration, err := meter.Float64Histogram(
		"ranking_run_duration_seconds",
		metric.WithDescription("End-to-end duration of a top-workplaces run"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120,
		),
	)
	if err != nil {
		return nil, err
	}

	completedShifts, err := meter.Int64Counter(
		"ranking_completed_shifts_total",
		metric.WithDescription("Completed shifts counted across runs"),
		metric.WithUnit("{shift}"),
	)
	if err != nil {
		return nil, err
	}

	return &RankingMetrics{
		runs:            runs,
		runDuration:     runDuration,
		completedShifts: completedShifts,
	}, nil
}

func (m *RankingMetrics) RecordRun(ctx context.Context, outcome string, duration time.Duration) {
	m.runs.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
	m.runDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

func (m *RankingMetrics) RecordCompletedShifts(ctx context.Context, count int) {
	m.completedShifts.Add(ctx, int64(count))
}
