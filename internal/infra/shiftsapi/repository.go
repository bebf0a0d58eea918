package shiftsapi

import (
	"context"
	"strings"

	"github.com/KasumiMercury/primind-top-workplaces/internal/domain"
	"github.com/KasumiMercury/primind-top-workplaces/internal/observability/metrics"
)

const (
	ResourceWorkplaces = "workplaces"
	ResourceShifts     = "shifts"
	ResourceWorkers    = "workers"
)

//go:generate mockgen -source=repository.go -destination=repository_mock.go -package=shiftsapi

type Repository interface {
	ListWorkplaces(ctx context.Context) ([]domain.Workplace, error)
	ListShifts(ctx context.Context) ([]domain.Shift, error)
	ListWorkers(ctx context.Context) ([]domain.Worker, error)
}

type apiRepository struct {
	fetcher PageFetcher
	baseURL string
	metrics *metrics.CollectionMetrics
}

func NewRepository(fetcher PageFetcher, baseURL string, m *metrics.CollectionMetrics) Repository {
	return &apiRepository{
		fetcher: fetcher,
		baseURL: baseURL,
		metrics: m,
	}
}

func (r *apiRepository) ListWorkplaces(ctx context.Context) ([]domain.Workplace, error) {
	return NewCollector[domain.Workplace](r.fetcher, ResourceURL(r.baseURL, ResourceWorkplaces), ResourceWorkplaces, r.metrics).Collect(ctx)
}

func (r *apiRepository) ListShifts(ctx context.Context) ([]domain.Shift, error) {
	return NewCollector[domain.Shift](r.fetcher, ResourceURL(r.baseURL, ResourceShifts), ResourceShifts, r.metrics).Collect(ctx)
}

func (r *apiRepository) ListWorkers(ctx context.Context) ([]domain.Worker, error) {
	return NewCollector[domain.Worker](r.fetcher, ResourceURL(r.baseURL, ResourceWorkers), ResourceWorkers, r.metrics).Collect(ctx)
}

// ResourceURL addresses a resource collection by name under the base URL.
func ResourceURL(baseURL, resource string) string {
	return strings.TrimRight(baseURL, "/") + "/" + resource
}
