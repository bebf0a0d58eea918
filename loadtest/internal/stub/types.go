package stub

import "github.com/KasumiMercury/primind-top-workplaces/internal/domain"

type SeedRequest struct {
	Workplaces []domain.Workplace `json:"workplaces"`
	Workers    []domain.Worker    `json:"workers"`
	Shifts     []domain.Shift     `json:"shifts"`
	Generate   *GenerateRequest   `json:"generate,omitempty"`
}

// GenerateRequest describes a synthetic dataset. Every InactiveEvery-th
// workplace and worker is inactive, every CancelEvery-th shift is cancelled
// and every UnassignedEvery-th shift has no worker. Zero disables a rule.
type GenerateRequest struct {
	Workplaces      int `json:"workplaces"`
	Workers         int `json:"workers"`
	Shifts          int `json:"shifts"`
	InactiveEvery   int `json:"inactive_every"`
	CancelEvery     int `json:"cancel_every"`
	UnassignedEvery int `json:"unassigned_every"`
}

type Dataset struct {
	Workplaces []domain.Workplace
	Workers    []domain.Worker
	Shifts     []domain.Shift
}
