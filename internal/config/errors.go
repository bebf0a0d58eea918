package config

import "errors"

var (
	ErrInvalidRedisDB      = errors.New("REDIS_DB must be a valid integer")
	ErrInvalidAPITimeout   = errors.New("API_TIMEOUT_SECONDS must be a positive integer")
	ErrInvalidRankingLimit = errors.New("TOP_WORKPLACES_LIMIT must be a non-negative integer")
	ErrInvalidAPIBaseURL   = errors.New("API_BASE_URL must be an absolute http(s) URL")
	ErrUnknownRunMode      = errors.New("RUN_MODE must be report or server")
	ErrLimitAboveMax       = errors.New("TOP_WORKPLACES_LIMIT must not exceed MAX_RANKING_LIMIT")
	ErrRedisRequired       = errors.New("REDIS_ADDR is required in server mode")
)
