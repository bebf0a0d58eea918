package config

import (
	"os"
	"strconv"
	"time"
)

const (
	apiBaseURLEnv        = "API_BASE_URL"
	apiTimeoutSecondsEnv = "API_TIMEOUT_SECONDS"

	defaultAPIBaseURL = "http://localhost:3000"
	defaultAPITimeout = 30 * time.Second
)

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

func LoadAPIConfig() (*APIConfig, error) {
	baseURL := os.Getenv(apiBaseURLEnv)
	if baseURL == "" {
		baseURL = defaultAPIBaseURL
	}

	timeout := defaultAPITimeout
	if raw := os.Getenv(apiTimeoutSecondsEnv); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return nil, ErrInvalidAPITimeout
		}
		timeout = time.Duration(parsed) * time.Second
	}

	return &APIConfig{
		BaseURL: baseURL,
		Timeout: timeout,
	}, nil
}
