package config

import (
	"log/slog"
	"os"
	"strings"
)

type RunMode string

const (
	// RunModeReport computes the ranking once, prints it and exits.
	RunModeReport RunMode = "report"
	// RunModeServer serves the ranking over HTTP.
	RunModeServer RunMode = "server"
)

type Config struct {
	RunMode  RunMode
	Port     string
	LogLevel slog.Level
	API      *APIConfig
	Redis    *RedisConfig
	Ranking  *RankingConfig
}

func Load() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	runMode := RunMode(strings.ToLower(os.Getenv("RUN_MODE")))
	if runMode == "" {
		runMode = RunModeReport
	}

	apiConfig, err := LoadAPIConfig()
	if err != nil {
		return nil, err
	}

	redisConfig, err := LoadRedisConfig()
	if err != nil {
		return nil, err
	}

	rankingConfig, err := LoadRankingConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		RunMode:  runMode,
		Port:     port,
		LogLevel: parseLogLevel(os.Getenv("LOG_LEVEL")),
		API:      apiConfig,
		Redis:    redisConfig,
		Ranking:  rankingConfig,
	}, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
