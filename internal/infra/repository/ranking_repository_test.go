package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KasumiMercury/primind-top-workplaces/internal/domain"
	"github.com/KasumiMercury/primind-top-workplaces/internal/testutil"
)

func newReport(runID string, generatedAt time.Time) *domain.RankingReport {
	return &domain.RankingReport{
		RunID: runID,
		Limit: 3,
		Results: []domain.RankedResult{
			{Name: "A", Shifts: 5},
			{Name: "B", Shifts: 2},
			{Name: "C", Shifts: 0},
		},
		Stats: domain.CollectionStats{
			Workplaces:       4,
			ActiveWorkplaces: 3,
			Workers:          2,
			ActiveWorkers:    1,
			Shifts:           11,
			CompletedShifts:  7,
		},
		GeneratedAt: generatedAt,
	}
}

func TestSaveAndGetReport(t *testing.T) {
	ctx := context.Background()
	client := testutil.SetupRedisContainer(ctx, t)

	repo := NewRankingRepository(client, time.Hour)

	generatedAt := time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC)
	report := newReport("run-1", generatedAt)

	if err := repo.SaveReport(ctx, report); err != nil {
		t.Fatalf("SaveReport() unexpected error: %v", err)
	}

	got, err := repo.GetReport(ctx, "run-1")
	if err != nil {
		t.Fatalf("GetReport() unexpected error: %v", err)
	}

	if got.RunID != "run-1" || got.Limit != 3 {
		t.Errorf("GetReport() = %+v, want run-1 with limit 3", got)
	}
	if !got.GeneratedAt.Equal(generatedAt) {
		t.Errorf("GeneratedAt = %v, want %v", got.GeneratedAt, generatedAt)
	}
	if len(got.Results) != 3 || got.Results[0] != (domain.RankedResult{Name: "A", Shifts: 5}) {
		t.Errorf("Results = %+v", got.Results)
	}
	if got.Stats != report.Stats {
		t.Errorf("Stats = %+v, want %+v", got.Stats, report.Stats)
	}

	ttl, err := client.TTL(ctx, reportKeyPrefix+"run-1").Result()
	if err != nil {
		t.Fatalf("failed to read ttl: %v", err)
	}
	if ttl <= 0 || ttl > time.Hour {
		t.Errorf("ttl = %v, want within (0, 1h]", ttl)
	}
}

func TestSaveReportRejectsRepeatedRunID(t *testing.T) {
	ctx := context.Background()
	client := testutil.SetupRedisContainer(ctx, t)

	repo := NewRankingRepository(client, time.Hour)

	generatedAt := time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC)
	if err := repo.SaveReport(ctx, newReport("run-dup", generatedAt)); err != nil {
		t.Fatalf("SaveReport() unexpected error: %v", err)
	}

	second := newReport("run-dup", generatedAt.Add(time.Minute))
	second.Results = []domain.RankedResult{{Name: "Z", Shifts: 9}}

	err := repo.SaveReport(ctx, second)
	if !errors.Is(err, domain.ErrRunIDConflict) {
		t.Fatalf("SaveReport() error = %v, want ErrRunIDConflict", err)
	}

	got, err := repo.GetReport(ctx, "run-dup")
	if err != nil {
		t.Fatalf("GetReport() unexpected error: %v", err)
	}
	if got.Results[0].Name != "A" || !got.GeneratedAt.Equal(generatedAt) {
		t.Errorf("GetReport() = %+v, want the first stored report", got)
	}
}

func TestGetReportNotFound(t *testing.T) {
	ctx := context.Background()
	client := testutil.SetupRedisContainer(ctx, t)

	repo := NewRankingRepository(client, time.Hour)

	_, err := repo.GetReport(ctx, "missing")
	if !errors.Is(err, domain.ErrReportNotFound) {
		t.Errorf("GetReport() error = %v, want ErrReportNotFound", err)
	}
}

func TestGetReportInvalidData(t *testing.T) {
	ctx := context.Background()
	client := testutil.SetupRedisContainer(ctx, t)

	if err := client.Set(ctx, reportKeyPrefix+"broken", "not-json", 0).Err(); err != nil {
		t.Fatalf("failed to set up test data: %v", err)
	}

	repo := NewRankingRepository(client, time.Hour)

	_, err := repo.GetReport(ctx, "broken")
	if !errors.Is(err, ErrInvalidReportData) {
		t.Errorf("GetReport() error = %v, want ErrInvalidReportData", err)
	}
}

func TestSaveReportInvalid(t *testing.T) {
	repo := NewRankingRepository(nil, time.Hour)

	tests := []struct {
		name   string
		report *domain.RankingReport
	}{
		{name: "nil report", report: nil},
		{name: "missing run id", report: &domain.RankingReport{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.SaveReport(context.Background(), tt.report)
			if !errors.Is(err, ErrInvalidReportData) {
				t.Errorf("SaveReport() error = %v, want ErrInvalidReportData", err)
			}
		})
	}
}

func TestListRunIDs(t *testing.T) {
	ctx := context.Background()
	client := testutil.SetupRedisContainer(ctx, t)

	repo := NewRankingRepository(client, time.Hour)

	base := time.Now().UTC().Truncate(time.Second)
	for i, runID := range []string{"run-a", "run-b", "run-c"} {
		if err := repo.SaveReport(ctx, newReport(runID, base.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatalf("SaveReport(%s) unexpected error: %v", runID, err)
		}
	}

	tests := []struct {
		name  string
		count int
		want  []string
	}{
		{name: "newest first", count: 10, want: []string{"run-c", "run-b", "run-a"}},
		{name: "bounded", count: 2, want: []string{"run-c", "run-b"}},
		{name: "zero count", count: 0, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.ListRunIDs(ctx, tt.count)
			if err != nil {
				t.Fatalf("ListRunIDs() unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ListRunIDs() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ListRunIDs()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSaveReportDropsExpiredRunsFromIndex(t *testing.T) {
	ctx := context.Background()
	client := testutil.SetupRedisContainer(ctx, t)

	repo := NewRankingRepository(client, time.Hour)

	now := time.Now().UTC()
	if err := repo.SaveReport(ctx, newReport("old", now.Add(-2*time.Hour))); err != nil {
		t.Fatalf("SaveReport(old) unexpected error: %v", err)
	}
	if err := repo.SaveReport(ctx, newReport("new", now)); err != nil {
		t.Fatalf("SaveReport(new) unexpected error: %v", err)
	}

	got, err := repo.ListRunIDs(ctx, 10)
	if err != nil {
		t.Fatalf("ListRunIDs() unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != "new" {
		t.Errorf("ListRunIDs() = %v, want [new]", got)
	}
}
