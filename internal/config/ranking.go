package config

import (
	"os"
	"strconv"
	"time"
)

const (
	topWorkplacesLimitEnv    = "TOP_WORKPLACES_LIMIT"
	maxRankingLimitEnv       = "MAX_RANKING_LIMIT"
	rankingHistoryTTLHourEnv = "RANKING_HISTORY_TTL_HOURS"

	defaultTopWorkplacesLimit = 3
	defaultMaxRankingLimit    = 100
	defaultRankingHistoryTTL  = 24 * time.Hour
)

type RankingConfig struct {
	// Limit is used when the caller does not ask for a specific size.
	Limit int
	// MaxLimit caps the size an HTTP caller may request.
	MaxLimit   int
	HistoryTTL time.Duration
}

func LoadRankingConfig() (*RankingConfig, error) {
	limit := defaultTopWorkplacesLimit
	if v := os.Getenv(topWorkplacesLimitEnv); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			return nil, ErrInvalidRankingLimit
		}
		limit = parsed
	}

	maxLimit := defaultMaxRankingLimit
	if v := os.Getenv(maxRankingLimitEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			maxLimit = parsed
		}
	}

	historyTTL := defaultRankingHistoryTTL
	if v := os.Getenv(rankingHistoryTTLHourEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			historyTTL = time.Duration(parsed) * time.Hour
		}
	}

	return &RankingConfig{
		Limit:      limit,
		MaxLimit:   maxLimit,
		HistoryTTL: historyTTL,
	}, nil
}
