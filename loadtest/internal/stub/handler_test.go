package stub

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-top-workplaces/internal/domain"
	"github.com/KasumiMercury/primind-top-workplaces/internal/infra/shiftsapi"
	"github.com/KasumiMercury/primind-top-workplaces/internal/service/ranking"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T, storage *DatasetStorage, pageSize int) *httptest.Server {
	t.Helper()

	r := gin.New()
	NewHandler(storage, pageSize).Register(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestHandleList_Pagination(t *testing.T) {
	storage := NewDatasetStorage()
	storage.Append(defaultRunID, Generate(defaultRunID, GenerateRequest{Workplaces: 5}))
	srv := newTestServer(t, storage, 2)

	var names []string
	next := srv.URL + "/workplaces"
	requests := 0
	for next != "" {
		resp, err := http.Get(next)
		require.NoError(t, err)

		var page shiftsapi.Page[domain.Workplace]
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
		_ = resp.Body.Close()
		requests++

		for _, w := range page.Data {
			names = append(names, w.Name)
		}
		next = ""
		if page.Links.Next != nil {
			next = *page.Links.Next
		}
	}

	assert.Equal(t, 3, requests)
	assert.Equal(t, []string{"Workplace 1", "Workplace 2", "Workplace 3", "Workplace 4", "Workplace 5"}, names)
}

func TestHandleList_EmptyCollection(t *testing.T) {
	srv := newTestServer(t, NewDatasetStorage(), 2)

	resp, err := http.Get(srv.URL + "/shifts")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.JSONEq(t, `[]`, string(body["data"]))
	assert.JSONEq(t, `{}`, string(body["links"]))
}

func TestHandleList_Errors(t *testing.T) {
	srv := newTestServer(t, NewDatasetStorage(), 2)

	tests := []struct {
		path string
		want int
	}{
		{path: "/invoices", want: http.StatusNotFound},
		{path: "/shifts?page=-1", want: http.StatusBadRequest},
		{path: "/shifts?page_size=0", want: http.StatusBadRequest},
		{path: "/shifts?page=1844674407370955162", want: http.StatusBadRequest},
		{path: "/shifts?page=4611686018427387904&page_size=2", want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := http.Get(srv.URL + tt.path)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestDatasetStorage_PageBeyondEnd(t *testing.T) {
	storage := NewDatasetStorage()
	storage.Append(defaultRunID, Generate(defaultRunID, GenerateRequest{Workplaces: 5}))

	tests := []struct {
		name     string
		page     int
		pageSize int
	}{
		{name: "first page past the end", page: 1, pageSize: 5},
		{name: "far page", page: 1000, pageSize: 3},
		{name: "page whose offset overflows int", page: math.MaxInt / 2, pageSize: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, more, err := storage.Page(defaultRunID, shiftsapi.ResourceWorkplaces, tt.page, tt.pageSize)
			require.NoError(t, err)
			assert.Empty(t, items)
			assert.False(t, more)
		})
	}
}

func TestSeedAndReset(t *testing.T) {
	storage := NewDatasetStorage()
	srv := newTestServer(t, storage, 10)

	body, err := json.Marshal(SeedRequest{
		Workplaces: []domain.Workplace{{ID: 1, Name: "Depot"}},
		Generate:   &GenerateRequest{Workers: 3},
	})
	require.NoError(t, err)

	resp, err := http.Post(srv.URL+"/seed?run_id=r1", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	workers, more, err := storage.Page("r1", shiftsapi.ResourceWorkers, 0, 10)
	require.NoError(t, err)
	assert.False(t, more)
	assert.Len(t, workers, 3)

	resp, err = http.Post(srv.URL+"/reset?run_id=r1", "application/json", nil)
	require.NoError(t, err)
	_ = resp.Body.Close()

	workers, _, err = storage.Page("r1", shiftsapi.ResourceWorkers, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, workers)
}

func TestGenerate_IsDeterministic(t *testing.T) {
	req := GenerateRequest{Workplaces: 4, Workers: 6, Shifts: 50, InactiveEvery: 3, CancelEvery: 7, UnassignedEvery: 5}

	a := Generate("run", req)
	b := Generate("run", req)
	assert.Equal(t, a, b)

	assert.Equal(t, 1, a.Workplaces[2].Status)
	assert.Equal(t, 0, a.Workplaces[0].Status)
	assert.Nil(t, a.Shifts[4].WorkerID)
	assert.NotNil(t, a.Shifts[6].CancelledAt)
	for _, s := range a.Shifts {
		assert.GreaterOrEqual(t, s.WorkplaceID, int64(1))
		assert.LessOrEqual(t, s.WorkplaceID, int64(4))
	}
}

// The collector and ranking pipeline agree with a direct computation over the
// seeded dataset regardless of page size.
func TestStub_EndToEndWithCollector(t *testing.T) {
	storage := NewDatasetStorage()
	data := Generate(defaultRunID, GenerateRequest{
		Workplaces: 7, Workers: 9, Shifts: 120, InactiveEvery: 4, CancelEvery: 6, UnassignedEvery: 8,
	})
	storage.Append(defaultRunID, data)

	want, err := ranking.Compute(data.Workplaces, data.Shifts, data.Workers, ranking.DefaultLimit)
	require.NoError(t, err)

	for _, pageSize := range []int{1, 7, 500} {
		srv := newTestServer(t, storage, pageSize)
		repo := shiftsapi.NewRepository(shiftsapi.NewClientWithHTTPClient(srv.Client()), srv.URL, nil)

		ctx := context.Background()
		workplaces, err := repo.ListWorkplaces(ctx)
		require.NoError(t, err)
		shifts, err := repo.ListShifts(ctx)
		require.NoError(t, err)
		workers, err := repo.ListWorkers(ctx)
		require.NoError(t, err)

		got, err := ranking.Compute(workplaces, shifts, workers, ranking.DefaultLimit)
		require.NoError(t, err)
		assert.Equal(t, want, got, "page size %d", pageSize)
	}
}
