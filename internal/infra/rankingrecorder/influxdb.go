//go:build !gcloud

package rankingrecorder

import (
	"context"
	"log/slog"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/KasumiMercury/primind-top-workplaces/internal/domain"
)

type influxDBRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	bucket   string
	org      string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.RankingResultRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "ranking result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.InfluxDBToken == "" || cfg.InfluxDBOrg == "" {
		slog.WarnContext(ctx, "InfluxDB token or org not configured, ranking result recording disabled",
			slog.String("url", cfg.InfluxDBURL),
		)
		return NewNoopRecorder(), nil
	}

	client := influxdb2.NewClient(cfg.InfluxDBURL, cfg.InfluxDBToken)

	slog.InfoContext(ctx, "ranking result recorder initialized",
		slog.String("type", "influxdb"),
		slog.String("url", cfg.InfluxDBURL),
		slog.String("bucket", cfg.InfluxDBBucket),
	)

	return newInfluxDBRecorder(client, cfg.InfluxDBOrg, cfg.InfluxDBBucket), nil
}

func newInfluxDBRecorder(client influxdb2.Client, org, bucket string) *influxDBRecorder {
	return &influxDBRecorder{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		bucket:   bucket,
		org:      org,
	}
}

// RecordReport writes one point per ranked workplace plus a run summary.
// Write failures are logged, not returned.
func (r *influxDBRecorder) RecordReport(ctx context.Context, report *domain.RankingReport) error {
	if report == nil {
		return nil
	}

	points := reportPoints(report)
	if err := r.writeAPI.WritePoint(ctx, points...); err != nil {
		slog.WarnContext(ctx, "failed to write ranking results to InfluxDB",
			slog.String("error", err.Error()),
			slog.String("run_id", report.RunID),
			slog.Int("point_count", len(points)),
		)
	}

	return nil
}

func reportPoints(report *domain.RankingReport) []*write.Point {
	pointTime := report.GeneratedAt
	if pointTime.IsZero() {
		pointTime = time.Now()
	}

	points := make([]*write.Point, 0, len(report.Results)+1)
	for _, record := range domain.ResultRecords(report) {
		points = append(points, influxdb2.NewPoint(
			"top_workplace",
			map[string]string{
				"run_id":    record.RunID,
				"workplace": record.Workplace,
			},
			map[string]any{
				"position": record.Position,
				"shifts":   record.Shifts,
			},
			pointTime,
		))
	}

	points = append(points, influxdb2.NewPoint(
		"ranking_run",
		map[string]string{
			"run_id": report.RunID,
		},
		map[string]any{
			"limit":             report.Limit,
			"results":           len(report.Results),
			"workplaces":        report.Stats.Workplaces,
			"active_workplaces": report.Stats.ActiveWorkplaces,
			"workers":           report.Stats.Workers,
			"active_workers":    report.Stats.ActiveWorkers,
			"shifts":            report.Stats.Shifts,
			"completed_shifts":  report.Stats.CompletedShifts,
		},
		pointTime,
	))

	return points
}

func (r *influxDBRecorder) Close() error {
	if r.client != nil {
		r.client.Close()
	}
	return nil
}
