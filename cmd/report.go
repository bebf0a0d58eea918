package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/KasumiMercury/primind-top-workplaces/internal/domain"
)

type topWorkplacesRunner interface {
	TopWorkplaces(ctx context.Context, limit int) (*domain.RankingReport, error)
}

// runReport computes the ranking once and writes the ranked results to w
// as a JSON array.
func runReport(ctx context.Context, svc topWorkplacesRunner, limit int, w io.Writer) int {
	report, err := svc.TopWorkplaces(ctx, limit)
	if err != nil {
		// already logged by the service
		return 1
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report.Results); err != nil {
		slog.ErrorContext(ctx, "failed to write report", slog.String("error", err.Error()))
		return 1
	}

	return 0
}
