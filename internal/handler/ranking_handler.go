package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-top-workplaces/internal/config"
	"github.com/KasumiMercury/primind-top-workplaces/internal/domain"
	"github.com/KasumiMercury/primind-top-workplaces/internal/observability/logging"
	"github.com/KasumiMercury/primind-top-workplaces/internal/service/topworkplaces"
)

const (
	runIDHeader = "X-Run-ID"

	defaultRunListCount = 20
)

type RankingHandler struct {
	service *topworkplaces.Service
	config  *config.RankingConfig
}

func NewRankingHandler(service *topworkplaces.Service, cfg *config.RankingConfig) *RankingHandler {
	return &RankingHandler{
		service: service,
		config:  cfg,
	}
}

func (h *RankingHandler) Register(r gin.IRouter) {
	v1 := r.Group("/api/v1")
	v1.GET("/workplaces/top", h.HandleTopWorkplaces)
	v1.GET("/rankings", h.HandleListRankings)
	v1.GET("/rankings/:run_id", h.HandleGetRanking)
}

// HandleTopWorkplaces runs the ranking against the upstream API. The optional
// limit query parameter must lie in [0, MaxLimit].
func (h *RankingHandler) HandleTopWorkplaces(c *gin.Context) {
	limit, err := parseBoundedInt(c.Query("limit"), h.config.Limit, h.config.MaxLimit)
	if err != nil {
		respondError(c, http.StatusBadRequest, errTypeInvalidRequest, "limit "+err.Error())
		return
	}

	ctx := c.Request.Context()
	if runID := c.GetHeader(runIDHeader); runID != "" {
		ctx = logging.WithRunID(ctx, runID)
	}

	report, err := h.service.TopWorkplaces(ctx, limit)
	if err != nil {
		if errors.Is(err, domain.ErrRetrievalFailed) {
			respondError(c, http.StatusBadGateway, errTypeUpstream, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, errTypeInternal, "failed to rank workplaces")
		return
	}

	c.Header(runIDHeader, report.RunID)
	c.JSON(http.StatusOK, report)
}

func (h *RankingHandler) HandleGetRanking(c *gin.Context) {
	ctx := c.Request.Context()
	runID := c.Param("run_id")

	report, err := h.service.GetReport(ctx, runID)
	if err != nil {
		h.respondHistoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *RankingHandler) HandleListRankings(c *gin.Context) {
	count, err := parseBoundedInt(c.Query("count"), defaultRunListCount, h.config.MaxLimit)
	if err != nil {
		respondError(c, http.StatusBadRequest, errTypeInvalidRequest, "count "+err.Error())
		return
	}

	runIDs, err := h.service.ListRunIDs(c.Request.Context(), count)
	if err != nil {
		h.respondHistoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"run_ids": runIDs})
}

func (h *RankingHandler) respondHistoryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrReportNotFound):
		respondError(c, http.StatusNotFound, errTypeNotFound, "ranking report not found")
	case errors.Is(err, domain.ErrHistoryDisabled):
		respondError(c, http.StatusServiceUnavailable, errTypeHistoryUnavailable, err.Error())
	default:
		slog.ErrorContext(c.Request.Context(), "failed to read ranking history",
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, errTypeInternal, "failed to read ranking history")
	}
}

func parseBoundedInt(raw string, fallback, maxValue int) (int, error) {
	if raw == "" {
		return fallback, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("must be an integer")
	}
	if v < 0 || v > maxValue {
		return 0, fmt.Errorf("must be between 0 and %d", maxValue)
	}

	return v, nil
}
