package ranking

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/KasumiMercury/primind-top-workplaces/internal/domain"
)

func TestActiveWorkplaceIDs(t *testing.T) {
	tests := []struct {
		name       string
		workplaces []domain.Workplace
		want       IDSet
	}{
		{
			name:       "empty input",
			workplaces: nil,
			want:       IDSet{},
		},
		{
			name: "only status 0 is active",
			workplaces: []domain.Workplace{
				{ID: 1, Status: 0},
				{ID: 2, Status: 1},
				{ID: 3, Status: 2},
				{ID: 4, Status: 0},
			},
			want: IDSet{1: {}, 4: {}},
		},
		{
			name: "no active workplaces",
			workplaces: []domain.Workplace{
				{ID: 1, Status: 1},
			},
			want: IDSet{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ActiveWorkplaceIDs(tt.workplaces)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ActiveWorkplaceIDs() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestActiveWorkerIDs_Idempotent(t *testing.T) {
	workers := []domain.Worker{
		{ID: 10, Status: 0},
		{ID: 11, Status: 1},
		{ID: 12, Status: 0},
	}

	first := ActiveWorkerIDs(workers)
	second := ActiveWorkerIDs(workers)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("ActiveWorkerIDs() not idempotent (-first +second):\n%s", diff)
	}
	if !first.Has(10) || !first.Has(12) || first.Has(11) {
		t.Errorf("ActiveWorkerIDs() = %v, want {10, 12}", first)
	}
}

func TestActiveIDs_DuplicateIDsCollapse(t *testing.T) {
	workers := []domain.Worker{
		{ID: 5, Status: 0},
		{ID: 5, Status: 0},
	}

	got := ActiveWorkerIDs(workers)
	if len(got) != 1 {
		t.Errorf("len(ActiveWorkerIDs()) = %d, want 1", len(got))
	}
}

func TestActiveWorkplaces_PreservesOrder(t *testing.T) {
	workplaces := []domain.Workplace{
		{ID: 3, Name: "C"},
		{ID: 1, Name: "A", Status: 1},
		{ID: 2, Name: "B"},
	}

	got := ActiveWorkplaces(workplaces)
	want := []domain.Workplace{
		{ID: 3, Name: "C"},
		{ID: 2, Name: "B"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ActiveWorkplaces() mismatch (-want +got):\n%s", diff)
	}
}
