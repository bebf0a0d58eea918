package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-top-workplaces/internal/domain"
)

const (
	reportKeyPrefix = "ranking:report:"
	runIndexKey     = "ranking:runs"

	defaultReportTTL = 24 * time.Hour
)

type rankedResultRecord struct {
	Name   string `json:"name"`
	Shifts int    `json:"shifts"`
}

type reportRecord struct {
	RunID       string                 `json:"run_id"`
	Limit       int                    `json:"limit"`
	Results     []rankedResultRecord   `json:"results"`
	Stats       domain.CollectionStats `json:"stats"`
	GeneratedAt time.Time              `json:"generated_at"`
}

type rankingRepository struct {
	client    *redis.Client
	reportTTL time.Duration
}

func NewRankingRepository(client *redis.Client, reportTTL time.Duration) domain.RankingRepository {
	if reportTTL <= 0 {
		reportTTL = defaultReportTTL
	}
	return &rankingRepository{
		client:    client,
		reportTTL: reportTTL,
	}
}

func (r *rankingRepository) SaveReport(ctx context.Context, report *domain.RankingReport) error {
	if report == nil || report.RunID == "" {
		return ErrInvalidReportData
	}

	results := make([]rankedResultRecord, 0, len(report.Results))
	for _, res := range report.Results {
		results = append(results, rankedResultRecord{
			Name:   res.Name,
			Shifts: res.Shifts,
		})
	}

	data, err := json.Marshal(reportRecord{
		RunID:       report.RunID,
		Limit:       report.Limit,
		Results:     results,
		Stats:       report.Stats,
		GeneratedAt: report.GeneratedAt,
	})
	if err != nil {
		return ErrInvalidReportData
	}

	expiredBefore := report.GeneratedAt.Add(-r.reportTTL)

	// Stored reports are immutable; a repeated run id is rejected.
	stored, err := r.client.SetNX(ctx, reportKeyPrefix+report.RunID, data, r.reportTTL).Result()
	if err != nil {
		return err
	}
	if !stored {
		return fmt.Errorf("%w: %s", domain.ErrRunIDConflict, report.RunID)
	}

	pipe := r.client.TxPipeline()
	pipe.ZAdd(ctx, runIndexKey, redis.Z{
		Score:  float64(report.GeneratedAt.UnixMilli()),
		Member: report.RunID,
	})
	pipe.ZRemRangeByScore(ctx, runIndexKey, "-inf", "("+strconv.FormatInt(expiredBefore.UnixMilli(), 10))
	pipe.Expire(ctx, runIndexKey, r.reportTTL)

	_, err = pipe.Exec(ctx)
	return err
}

func (r *rankingRepository) GetReport(ctx context.Context, runID string) (*domain.RankingReport, error) {
	data, err := r.client.Get(ctx, reportKeyPrefix+runID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrReportNotFound
		}
		return nil, err
	}

	var record reportRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, ErrInvalidReportData
	}

	results := make([]domain.RankedResult, 0, len(record.Results))
	for _, res := range record.Results {
		results = append(results, domain.RankedResult{
			Name:   res.Name,
			Shifts: res.Shifts,
		})
	}

	return &domain.RankingReport{
		RunID:       record.RunID,
		Limit:       record.Limit,
		Results:     results,
		Stats:       record.Stats,
		GeneratedAt: record.GeneratedAt,
	}, nil
}

func (r *rankingRepository) ListRunIDs(ctx context.Context, count int) ([]string, error) {
	if count <= 0 {
		return []string{}, nil
	}

	ids, err := r.client.ZRevRange(ctx, runIndexKey, 0, int64(count-1)).Result()
	if err != nil {
		return nil, err
	}

	return ids, nil
}
