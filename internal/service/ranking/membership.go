package ranking

import "github.com/KasumiMercury/primind-top-workplaces/internal/domain"

// IDSet is an unordered set of entity ids.
type IDSet map[int64]struct{}

func (s IDSet) Has(id int64) bool {
	_, ok := s[id]
	return ok
}

// ActiveIDs returns the ids of entities whose status equals domain.StatusActive.
func ActiveIDs[E any](entities []E, statusOf func(E) int, idOf func(E) int64) IDSet {
	ids := make(IDSet)
	for _, e := range entities {
		if statusOf(e) == domain.StatusActive {
			ids[idOf(e)] = struct{}{}
		}
	}
	return ids
}

func ActiveWorkplaceIDs(workplaces []domain.Workplace) IDSet {
	return ActiveIDs(workplaces,
		func(w domain.Workplace) int { return w.Status },
		func(w domain.Workplace) int64 { return w.ID },
	)
}

func ActiveWorkerIDs(workers []domain.Worker) IDSet {
	return ActiveIDs(workers,
		func(w domain.Worker) int { return w.Status },
		func(w domain.Worker) int64 { return w.ID },
	)
}

// ActiveWorkplaces keeps active workplaces in upstream order.
func ActiveWorkplaces(workplaces []domain.Workplace) []domain.Workplace {
	active := make([]domain.Workplace, 0, len(workplaces))
	for _, w := range workplaces {
		if w.IsActive() {
			active = append(active, w)
		}
	}
	return active
}
