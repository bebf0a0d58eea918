package domain

import "time"

type RankedResult struct {
	Name   string `json:"name"`
	Shifts int    `json:"shifts"`
}

type CollectionStats struct {
	Workplaces       int `json:"workplaces"`
	ActiveWorkplaces int `json:"active_workplaces"`
	Workers          int `json:"workers"`
	ActiveWorkers    int `json:"active_workers"`
	Shifts           int `json:"shifts"`
	CompletedShifts  int `json:"completed_shifts"`
}

// RankingReport is the outcome of one top-workplaces run.
type RankingReport struct {
	RunID       string          `json:"run_id"`
	Limit       int             `json:"limit"`
	Results     []RankedResult  `json:"results"`
	Stats       CollectionStats `json:"stats"`
	GeneratedAt time.Time       `json:"generated_at"`
}
