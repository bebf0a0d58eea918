package ranking

import (
	"testing"
	"time"

	"github.com/KasumiMercury/primind-top-workplaces/internal/domain"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestIsCompleted(t *testing.T) {
	cancelledAt := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	activeWorkers := IDSet{1: {}, 2: {}}
	activeWorkplaces := IDSet{10: {}}

	tests := []struct {
		name  string
		shift domain.Shift
		want  bool
	}{
		{
			name:  "assigned, not cancelled, both active",
			shift: domain.Shift{ID: 1, WorkerID: int64Ptr(1), WorkplaceID: 10},
			want:  true,
		},
		{
			name:  "unassigned shift never completes",
			shift: domain.Shift{ID: 2, WorkerID: nil, WorkplaceID: 10},
			want:  false,
		},
		{
			name:  "cancelled shift never completes",
			shift: domain.Shift{ID: 3, WorkerID: int64Ptr(1), WorkplaceID: 10, CancelledAt: &cancelledAt},
			want:  false,
		},
		{
			name:  "inactive worker",
			shift: domain.Shift{ID: 4, WorkerID: int64Ptr(3), WorkplaceID: 10},
			want:  false,
		},
		{
			name:  "inactive workplace",
			shift: domain.Shift{ID: 5, WorkerID: int64Ptr(2), WorkplaceID: 11},
			want:  false,
		},
		{
			name:  "worker id 0 outside the active set",
			shift: domain.Shift{ID: 6, WorkerID: int64Ptr(0), WorkplaceID: 10},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCompleted(tt.shift, activeWorkers, activeWorkplaces); got != tt.want {
				t.Errorf("IsCompleted() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsCompleted_WorkerZeroWhenActive(t *testing.T) {
	shift := domain.Shift{WorkerID: int64Ptr(0), WorkplaceID: 10}

	if !IsCompleted(shift, IDSet{0: {}}, IDSet{10: {}}) {
		t.Error("IsCompleted() = false, want true for active worker with id 0")
	}
}

func TestCompletedShifts(t *testing.T) {
	cancelledAt := time.Now()
	shifts := []domain.Shift{
		{ID: 1, WorkerID: int64Ptr(1), WorkplaceID: 10},
		{ID: 2, WorkerID: nil, WorkplaceID: 10},
		{ID: 3, WorkerID: int64Ptr(1), WorkplaceID: 10, CancelledAt: &cancelledAt},
		{ID: 4, WorkerID: int64Ptr(1), WorkplaceID: 10},
	}

	got := CompletedShifts(shifts, IDSet{1: {}}, IDSet{10: {}})

	if len(got) != 2 {
		t.Fatalf("len(CompletedShifts()) = %d, want 2", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 4 {
		t.Errorf("CompletedShifts() ids = [%d %d], want [1 4]", got[0].ID, got[1].ID)
	}
}
