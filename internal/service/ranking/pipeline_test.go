package ranking

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/KasumiMercury/primind-top-workplaces/internal/domain"
)

func repeatShift(n int, shift domain.Shift) []domain.Shift {
	shifts := make([]domain.Shift, 0, n)
	for range n {
		shifts = append(shifts, shift)
	}
	return shifts
}

func TestCompute_MixedStatusesAndCancellations(t *testing.T) {
	cancelledAt := time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)

	workplaces := []domain.Workplace{
		{ID: 1, Name: "A", Status: 0},
		{ID: 2, Name: "B", Status: 0},
		{ID: 3, Name: "C", Status: 0},
		{ID: 4, Name: "D", Status: 1},
	}
	workers := []domain.Worker{
		{ID: 100, Name: "active", Status: 0},
		{ID: 200, Name: "inactive", Status: 1},
	}

	var shifts []domain.Shift
	shifts = append(shifts, repeatShift(5, domain.Shift{WorkerID: int64Ptr(100), WorkplaceID: 1})...)
	shifts = append(shifts, repeatShift(2, domain.Shift{WorkerID: int64Ptr(100), WorkplaceID: 2})...)
	shifts = append(shifts, repeatShift(3, domain.Shift{WorkerID: int64Ptr(200), WorkplaceID: 1})...)
	shifts = append(shifts, domain.Shift{WorkerID: int64Ptr(100), WorkplaceID: 3, CancelledAt: &cancelledAt})
	shifts = append(shifts, repeatShift(4, domain.Shift{WorkerID: int64Ptr(100), WorkplaceID: 4})...)
	shifts = append(shifts, repeatShift(6, domain.Shift{WorkerID: nil, WorkplaceID: 3})...)

	got, err := Compute(workplaces, shifts, workers, DefaultLimit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantResults := []domain.RankedResult{
		{Name: "A", Shifts: 5},
		{Name: "B", Shifts: 2},
		{Name: "C", Shifts: 0},
	}
	if diff := cmp.Diff(wantResults, got.Results); diff != "" {
		t.Errorf("Compute() results mismatch (-want +got):\n%s", diff)
	}

	wantStats := domain.CollectionStats{
		Workplaces:       4,
		ActiveWorkplaces: 3,
		Workers:          2,
		ActiveWorkers:    1,
		Shifts:           21,
		CompletedShifts:  7,
	}
	if diff := cmp.Diff(wantStats, got.Stats); diff != "" {
		t.Errorf("Compute() stats mismatch (-want +got):\n%s", diff)
	}
}

func TestCompute_EmptyCollections(t *testing.T) {
	got, err := Compute(nil, nil, nil, DefaultLimit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Results) != 0 {
		t.Errorf("len(Results) = %d, want 0", len(got.Results))
	}
}

func TestCompute_NegativeLimit(t *testing.T) {
	if _, err := Compute(nil, nil, nil, -3); err == nil {
		t.Error("Compute() error = nil, want error for negative limit")
	}
}
