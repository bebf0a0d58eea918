package ranking

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/KasumiMercury/primind-top-workplaces/internal/domain"
)

// DefaultLimit is the number of workplaces reported by default.
const DefaultLimit = 3

var ErrNegativeLimit = errors.New("ranking limit must not be negative")

// Rank pairs every active workplace with its count, orders by count
// descending and keeps the first limit entries. Equal counts keep the order
// of activeWorkplaces.
func Rank(activeWorkplaces []domain.Workplace, counts map[int64]int, limit int) ([]domain.RankedResult, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLimit, limit)
	}

	results := make([]domain.RankedResult, 0, len(activeWorkplaces))
	for _, w := range activeWorkplaces {
		results = append(results, domain.RankedResult{
			Name:   w.Name,
			Shifts: counts[w.ID],
		})
	}

	slices.SortStableFunc(results, func(a, b domain.RankedResult) int {
		return cmp.Compare(b.Shifts, a.Shifts)
	})

	return results[:min(limit, len(results))], nil
}
