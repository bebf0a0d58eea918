package rankingrecorder

import (
	"context"

	"github.com/KasumiMercury/primind-top-workplaces/internal/domain"
)

type noopRecorder struct{}

func NewNoopRecorder() domain.RankingResultRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) RecordReport(_ context.Context, _ *domain.RankingReport) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}
