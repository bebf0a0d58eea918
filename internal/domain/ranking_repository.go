package domain

import "context"

//go:generate mockgen -source=ranking_repository.go -destination=ranking_repository_mock.go -package=domain

type RankingRepository interface {
	SaveReport(ctx context.Context, report *RankingReport) error
	GetReport(ctx context.Context, runID string) (*RankingReport, error)
	// ListRunIDs returns up to count run ids, newest first.
	ListRunIDs(ctx context.Context, count int) ([]string, error)
}
