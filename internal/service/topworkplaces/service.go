package topworkplaces

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/KasumiMercury/primind-top-workplaces/internal/domain"
	"github.com/KasumiMercury/primind-top-workplaces/internal/infra/shiftsapi"
	"github.com/KasumiMercury/primind-top-workplaces/internal/observability/logging"
	"github.com/KasumiMercury/primind-top-workplaces/internal/observability/metrics"
	"github.com/KasumiMercury/primind-top-workplaces/internal/observability/tracing"
	"github.com/KasumiMercury/primind-top-workplaces/internal/service/ranking"
)

type Service struct {
	source         shiftsapi.Repository
	history        domain.RankingRepository
	recorder       domain.RankingResultRecorder
	rankingMetrics *metrics.RankingMetrics
	now            func() time.Time
}

// NewService wires the ranking pipeline. history, recorder and
// rankingMetrics may be nil.
func NewService(
	source shiftsapi.Repository,
	history domain.RankingRepository,
	recorder domain.RankingResultRecorder,
	rankingMetrics *metrics.RankingMetrics,
) *Service {
	return &Service{
		source:         source,
		history:        history,
		recorder:       recorder,
		rankingMetrics: rankingMetrics,
		now:            time.Now,
	}
}

// TopWorkplaces collects workplaces, shifts and workers in that order and
// ranks active workplaces by completed shifts. The run id is taken from the
// context when present.
func (s *Service) TopWorkplaces(ctx context.Context, limit int) (*domain.RankingReport, error) {
	runID := logging.RunIDFromContext(ctx)
	if runID == "" {
		runID = uuid.NewString()
		ctx = logging.WithRunID(ctx, runID)
	}

	ctx, span := tracing.StartRankingRunSpan(ctx, runID, limit)
	defer span.End()

	start := time.Now()

	report, err := s.run(ctx, runID, limit)
	if err != nil {
		tracing.RecordError(span, err)
		if s.rankingMetrics != nil {
			s.rankingMetrics.RecordRun(ctx, metrics.OutcomeFailure, time.Since(start))
		}
		slog.ErrorContext(ctx, "top workplaces run failed",
			slog.Int("limit", limit),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	tracing.RecordRankingRunResult(span, report.Stats.ActiveWorkplaces, report.Stats.CompletedShifts, len(report.Results), nil)
	if s.rankingMetrics != nil {
		s.rankingMetrics.RecordRun(ctx, metrics.OutcomeSuccess, time.Since(start))
		s.rankingMetrics.RecordCompletedShifts(ctx, report.Stats.CompletedShifts)
	}

	slog.InfoContext(ctx, "top workplaces run completed",
		slog.Int("limit", limit),
		slog.Int("results", len(report.Results)),
		slog.Int("active_workplaces", report.Stats.ActiveWorkplaces),
		slog.Int("completed_shifts", report.Stats.CompletedShifts),
		slog.Duration("duration", time.Since(start)),
	)

	s.persist(ctx, report)

	return report, nil
}

func (s *Service) run(ctx context.Context, runID string, limit int) (*domain.RankingReport, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: %d", ranking.ErrNegativeLimit, limit)
	}

	workplaces, err := s.source.ListWorkplaces(ctx)
	if err != nil {
		return nil, err
	}

	shifts, err := s.source.ListShifts(ctx)
	if err != nil {
		return nil, err
	}

	workers, err := s.source.ListWorkers(ctx)
	if err != nil {
		return nil, err
	}

	outcome, err := ranking.Compute(workplaces, shifts, workers, limit)
	if err != nil {
		return nil, err
	}

	return &domain.RankingReport{
		RunID:       runID,
		Limit:       limit,
		Results:     outcome.Results,
		Stats:       outcome.Stats,
		GeneratedAt: s.now().UTC(),
	}, nil
}

// persist hands a finished report to the optional sinks. Sink failures
// never fail the run.
func (s *Service) persist(ctx context.Context, report *domain.RankingReport) {
	if s.history != nil {
		if err := s.history.SaveReport(ctx, report); err != nil {
			msg := "failed to save ranking report"
			if errors.Is(err, domain.ErrRunIDConflict) {
				msg = "run id already stored, ranking report not saved"
			}
			slog.WarnContext(ctx, msg,
				slog.String("error", err.Error()),
			)
		}
	}

	if s.recorder != nil {
		if err := s.recorder.RecordReport(ctx, report); err != nil {
			slog.WarnContext(ctx, "failed to record ranking results",
				slog.String("error", err.Error()),
			)
		}
	}
}

func (s *Service) GetReport(ctx context.Context, runID string) (*domain.RankingReport, error) {
	if s.history == nil {
		return nil, domain.ErrHistoryDisabled
	}

	report, err := s.history.GetReport(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get ranking report: %w", err)
	}

	return report, nil
}

// ListRunIDs returns up to count stored run ids, newest first.
func (s *Service) ListRunIDs(ctx context.Context, count int) ([]string, error) {
	if s.history == nil {
		return nil, domain.ErrHistoryDisabled
	}

	ids, err := s.history.ListRunIDs(ctx, count)
	if err != nil {
		return nil, fmt.Errorf("failed to list ranking runs: %w", err)
	}

	return ids, nil
}
