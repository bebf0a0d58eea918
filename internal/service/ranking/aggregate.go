package ranking

import "github.com/KasumiMercury/primind-top-workplaces/internal/domain"

// CountByWorkplace counts shifts per workplace id. Workplaces without shifts
// have no key; readers treat a missing key as zero.
func CountByWorkplace(shifts []domain.Shift) map[int64]int {
	counts := make(map[int64]int)
	for _, s := range shifts {
		counts[s.WorkplaceID]++
	}
	return counts
}
