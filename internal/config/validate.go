package config

import (
	"errors"
	"fmt"
	"net/url"
)

func ValidateForRun(cfg *Config) error {
	var errs []error

	u, err := url.Parse(cfg.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, ErrInvalidAPIBaseURL)
	}

	switch cfg.RunMode {
	case RunModeReport:
	case RunModeServer:
		if !cfg.Redis.Enabled() {
			errs = append(errs, ErrRedisRequired)
		}
		// MaxLimit bounds HTTP callers only.
		if cfg.Ranking.Limit > cfg.Ranking.MaxLimit {
			errs = append(errs, ErrLimitAboveMax)
		}
	default:
		errs = append(errs, ErrUnknownRunMode)
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %w", errors.Join(errs...))
	}

	return nil
}
