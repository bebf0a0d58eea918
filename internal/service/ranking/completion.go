package ranking

import "github.com/KasumiMercury/primind-top-workplaces/internal/domain"

// IsCompleted reports whether a shift counts towards its workplace: it must be
// assigned, not cancelled, and both its worker and workplace must be active.
func IsCompleted(shift domain.Shift, activeWorkerIDs, activeWorkplaceIDs IDSet) bool {
	return shift.IsAssigned() &&
		!shift.IsCancelled() &&
		activeWorkerIDs.Has(*shift.WorkerID) &&
		activeWorkplaceIDs.Has(shift.WorkplaceID)
}

func CompletedShifts(shifts []domain.Shift, activeWorkerIDs, activeWorkplaceIDs IDSet) []domain.Shift {
	completed := make([]domain.Shift, 0, len(shifts))
	for _, s := range shifts {
		if IsCompleted(s, activeWorkerIDs, activeWorkplaceIDs) {
			completed = append(completed, s)
		}
	}
	return completed
}
