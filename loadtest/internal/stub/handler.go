package stub

import (
	"errors"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-top-workplaces/internal/infra/shiftsapi"
)

const defaultRunID = "default"

type Handler struct {
	storage  *DatasetStorage
	pageSize int
}

func NewHandler(storage *DatasetStorage, pageSize int) *Handler {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Handler{storage: storage, pageSize: pageSize}
}

func (h *Handler) Register(r gin.IRouter) {
	r.POST("/seed", h.HandleSeed)
	r.POST("/reset", h.HandleReset)
	r.GET("/:resource", h.HandleList)
}

func (h *Handler) HandleReset(c *gin.Context) {
	runID := c.DefaultQuery("run_id", defaultRunID)

	h.storage.Reset(runID)

	slog.Info("reset data", slog.String("run_id", runID))

	c.JSON(http.StatusOK, gin.H{
		"status": "reset complete",
		"run_id": runID,
	})
}

func (h *Handler) HandleSeed(c *gin.Context) {
	runID := c.DefaultQuery("run_id", defaultRunID)

	var req SeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data := Dataset{
		Workplaces: req.Workplaces,
		Workers:    req.Workers,
		Shifts:     req.Shifts,
	}
	if req.Generate != nil {
		generated := Generate(runID, *req.Generate)
		data.Workplaces = append(data.Workplaces, generated.Workplaces...)
		data.Workers = append(data.Workers, generated.Workers...)
		data.Shifts = append(data.Shifts, generated.Shifts...)
	}

	h.storage.Append(runID, data)

	slog.Info("seeded data",
		slog.String("run_id", runID),
		slog.Int("workplaces", len(data.Workplaces)),
		slog.Int("workers", len(data.Workers)),
		slog.Int("shifts", len(data.Shifts)),
	)

	c.JSON(http.StatusOK, gin.H{
		"status":     "seeded",
		"run_id":     runID,
		"workplaces": len(data.Workplaces),
		"workers":    len(data.Workers),
		"shifts":     len(data.Shifts),
	})
}

// GET /:resource?page=...&page_size=...&run_id=...
// Responds with {"data": [...], "links": {"next": "<absolute url>"}}.
func (h *Handler) HandleList(c *gin.Context) {
	resource := c.Param("resource")
	runID := c.DefaultQuery("run_id", defaultRunID)

	page, err := queryInt(c, "page", 0)
	if err != nil || page < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page"})
		return
	}
	pageSize, err := queryInt(c, "page_size", h.pageSize)
	if err != nil || pageSize <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page_size"})
		return
	}
	if page > math.MaxInt/pageSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page out of range"})
		return
	}

	items, more, err := h.storage.Page(runID, resource, page, pageSize)
	if err != nil {
		if errors.Is(err, ErrUnknownResource) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := shiftsapi.Page[any]{Data: items}
	if more {
		next := nextPageURL(c.Request, page+1)
		resp.Links.Next = &next
	}

	slog.Debug("list resource",
		slog.String("run_id", runID),
		slog.String("resource", resource),
		slog.Int("page", page),
		slog.Int("count", len(items)),
	)

	c.JSON(http.StatusOK, resp)
}

func queryInt(c *gin.Context, key string, fallback int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

func nextPageURL(r *http.Request, page int) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	query := r.URL.Query()
	query.Set("page", strconv.Itoa(page))

	next := url.URL{
		Scheme:   scheme,
		Host:     r.Host,
		Path:     r.URL.Path,
		RawQuery: query.Encode(),
	}
	return next.String()
}
