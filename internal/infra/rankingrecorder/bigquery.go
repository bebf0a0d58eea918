//go:build gcloud

package rankingrecorder

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/KasumiMercury/primind-top-workplaces/internal/domain"
)

type bigQueryRecord struct {
	RecordedAt  time.Time `bigquery:"recorded_at"`
	GeneratedAt time.Time `bigquery:"generated_at"`
	RunID       string    `bigquery:"run_id"`
	Position    int64     `bigquery:"position"`
	Workplace   string    `bigquery:"workplace"`
	Shifts      int64     `bigquery:"shifts"`
}

type bigQueryRecorder struct {
	client   *bigquery.Client
	inserter *bigquery.Inserter
	dataset  string
	table    string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.RankingResultRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "ranking result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.BigQueryProjectID == "" {
		slog.WarnContext(ctx, "BigQuery project ID not configured, ranking result recording disabled")
		return NewNoopRecorder(), nil
	}

	client, err := bigquery.NewClient(ctx, cfg.BigQueryProjectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create BigQuery client, ranking result recording disabled",
			slog.String("error", err.Error()),
			slog.String("project_id", cfg.BigQueryProjectID),
		)
		return NewNoopRecorder(), nil
	}

	inserter := client.Dataset(cfg.BigQueryDataset).Table(cfg.BigQueryTable).Inserter()

	slog.InfoContext(ctx, "ranking result recorder initialized",
		slog.String("type", "bigquery"),
		slog.String("project_id", cfg.BigQueryProjectID),
		slog.String("dataset", cfg.BigQueryDataset),
		slog.String("table", cfg.BigQueryTable),
	)

	return &bigQueryRecorder{
		client:   client,
		inserter: inserter,
		dataset:  cfg.BigQueryDataset,
		table:    cfg.BigQueryTable,
	}, nil
}

func (r *bigQueryRecorder) RecordReport(ctx context.Context, report *domain.RankingReport) error {
	if report == nil || len(report.Results) == 0 {
		return nil
	}

	now := time.Now()
	records := domain.ResultRecords(report)
	rows := make([]*bigQueryRecord, 0, len(records))
	for _, record := range records {
		rows = append(rows, &bigQueryRecord{
			RecordedAt:  now,
			GeneratedAt: record.GeneratedAt,
			RunID:       record.RunID,
			Position:    int64(record.Position),
			Workplace:   record.Workplace,
			Shifts:      int64(record.Shifts),
		})
	}

	if err := r.inserter.Put(ctx, rows); err != nil {
		slog.WarnContext(ctx, "failed to insert ranking results to BigQuery",
			slog.String("error", err.Error()),
			slog.Int("record_count", len(rows)),
		)
	}

	return nil
}

func (r *bigQueryRecorder) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}
