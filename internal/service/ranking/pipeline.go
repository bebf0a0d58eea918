package ranking

import "github.com/KasumiMercury/primind-top-workplaces/internal/domain"

type Outcome struct {
	Results []domain.RankedResult
	Stats   domain.CollectionStats
}

// Compute runs filter, qualification, aggregation and ranking over fully
// collected snapshots.
func Compute(workplaces []domain.Workplace, shifts []domain.Shift, workers []domain.Worker, limit int) (*Outcome, error) {
	activeWorkplaces := ActiveWorkplaces(workplaces)
	activeWorkplaceIDs := ActiveWorkplaceIDs(workplaces)
	activeWorkerIDs := ActiveWorkerIDs(workers)

	completed := CompletedShifts(shifts, activeWorkerIDs, activeWorkplaceIDs)
	counts := CountByWorkplace(completed)

	results, err := Rank(activeWorkplaces, counts, limit)
	if err != nil {
		return nil, err
	}

	return &Outcome{
		Results: results,
		Stats: domain.CollectionStats{
			Workplaces:       len(workplaces),
			ActiveWorkplaces: len(activeWorkplaces),
			Workers:          len(workers),
			ActiveWorkers:    len(activeWorkerIDs),
			Shifts:           len(shifts),
			CompletedShifts:  len(completed),
		},
	}, nil
}
