package stub

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/KasumiMercury/primind-top-workplaces/internal/domain"
	"github.com/KasumiMercury/primind-top-workplaces/internal/infra/shiftsapi"
)

var ErrUnknownResource = errors.New("unknown resource")

var generatedEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type DatasetStorage struct {
	mu       sync.RWMutex
	datasets map[string]*Dataset // runID -> dataset
}

func NewDatasetStorage() *DatasetStorage {
	return &DatasetStorage{
		datasets: make(map[string]*Dataset),
	}
}

func (s *DatasetStorage) Reset(runID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.datasets, runID)
}

func (s *DatasetStorage) ResetAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.datasets = make(map[string]*Dataset)
}

// Append adds records to the run's dataset, creating it when absent.
func (s *DatasetStorage) Append(runID string, data Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ds, ok := s.datasets[runID]
	if !ok {
		ds = &Dataset{}
		s.datasets[runID] = ds
	}
	ds.Workplaces = append(ds.Workplaces, data.Workplaces...)
	ds.Workers = append(ds.Workers, data.Workers...)
	ds.Shifts = append(ds.Shifts, data.Shifts...)
}

// Page returns the items of one page and whether another page follows.
func (s *DatasetStorage) Page(runID, resource string, page, pageSize int) ([]any, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ds := s.datasets[runID]
	if ds == nil {
		ds = &Dataset{}
	}

	var items []any
	switch resource {
	case shiftsapi.ResourceWorkplaces:
		items = toAny(ds.Workplaces)
	case shiftsapi.ResourceWorkers:
		items = toAny(ds.Workers)
	case shiftsapi.ResourceShifts:
		items = toAny(ds.Shifts)
	default:
		return nil, false, fmt.Errorf("%w: %s", ErrUnknownResource, resource)
	}

	// page*pageSize is only computed once it is known not to exceed len(items).
	start := len(items)
	if page <= len(items)/pageSize {
		start = page * pageSize
	}
	end := min(start+pageSize, len(items))

	return items[start:end], end < len(items), nil
}

func toAny[T any](records []T) []any {
	items := make([]any, 0, len(records))
	for _, r := range records {
		items = append(items, r)
	}
	return items
}

// Generate builds a deterministic dataset for runID from req.
func Generate(runID string, req GenerateRequest) Dataset {
	ds := Dataset{
		Workplaces: make([]domain.Workplace, 0, req.Workplaces),
		Workers:    make([]domain.Worker, 0, req.Workers),
		Shifts:     make([]domain.Shift, 0, req.Shifts),
	}

	for i := 1; i <= req.Workplaces; i++ {
		ds.Workplaces = append(ds.Workplaces, domain.Workplace{
			ID:     int64(i),
			Name:   fmt.Sprintf("Workplace %d", i),
			Status: everyNth(i, req.InactiveEvery),
		})
	}

	for i := 1; i <= req.Workers; i++ {
		ds.Workers = append(ds.Workers, domain.Worker{
			ID:     int64(i),
			Name:   fmt.Sprintf("Worker %d", i),
			Status: everyNth(i, req.InactiveEvery),
		})
	}

	if req.Workplaces == 0 {
		return ds
	}

	for i := 1; i <= req.Shifts; i++ {
		h := generatedHash(runID, i)
		startAt := generatedEpoch.Add(time.Duration(i) * time.Hour)

		shift := domain.Shift{
			ID:          int64(i),
			CreatedAt:   generatedEpoch,
			StartAt:     startAt,
			EndAt:       startAt.Add(8 * time.Hour),
			WorkplaceID: int64(h%uint64(req.Workplaces)) + 1,
		}

		if req.Workers > 0 && everyNth(i, req.UnassignedEvery) == 0 {
			workerID := int64((h>>32)%uint64(req.Workers)) + 1
			shift.WorkerID = &workerID
		}

		if everyNth(i, req.CancelEvery) == 1 {
			cancelledAt := startAt.Add(-24 * time.Hour)
			shift.CancelledAt = &cancelledAt
		}

		ds.Shifts = append(ds.Shifts, shift)
	}

	return ds
}

// everyNth is 1 for every n-th index and 0 otherwise.
func everyNth(i, n int) int {
	if n > 0 && i%n == 0 {
		return 1
	}
	return 0
}

func generatedHash(runID string, index int) uint64 {
	hash := sha256.Sum256(fmt.Appendf(nil, "%s-%d", runID, index))
	return binary.BigEndian.Uint64(hash[:8])
}
