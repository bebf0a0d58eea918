package domain

import "time"

// StatusActive is the status code shared by active workplaces and workers.
const StatusActive = 0

type Workplace struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Status int    `json:"status"`
}

func (w Workplace) IsActive() bool {
	return w.Status == StatusActive
}

type Worker struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Status int    `json:"status"`
}

func (w Worker) IsActive() bool {
	return w.Status == StatusActive
}

// Shift mirrors the upstream shift record. WorkerID is nil for unassigned
// shifts and CancelledAt is nil unless the shift was cancelled.
type Shift struct {
	ID          int64      `json:"id"`
	CreatedAt   time.Time  `json:"createdAt"`
	StartAt     time.Time  `json:"startAt"`
	EndAt       time.Time  `json:"endAt"`
	WorkplaceID int64      `json:"workplaceId"`
	WorkerID    *int64     `json:"workerId"`
	CancelledAt *time.Time `json:"cancelledAt"`
}

func (s Shift) IsAssigned() bool {
	return s.WorkerID != nil
}

func (s Shift) IsCancelled() bool {
	return s.CancelledAt != nil
}
