package domain

import (
	"context"
	"time"
)

type RankingResultRecord struct {
	RunID       string
	Position    int
	Workplace   string
	Shifts      int
	GeneratedAt time.Time
}

//go:generate mockgen -source=ranking_result_recorder.go -destination=ranking_result_recorder_mock.go -package=domain

type RankingResultRecorder interface {
	RecordReport(ctx context.Context, report *RankingReport) error
	Close() error
}

// ResultRecords flattens a report into one record per ranked workplace.
func ResultRecords(report *RankingReport) []RankingResultRecord {
	records := make([]RankingResultRecord, 0, len(report.Results))
	for i, r := range report.Results {
		records = append(records, RankingResultRecord{
			RunID:       report.RunID,
			Position:    i + 1,
			Workplace:   r.Name,
			Shifts:      r.Shifts,
			GeneratedAt: report.GeneratedAt,
		})
	}
	return records
}
