package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	catalogapp "github.com/pim/backend/internal/application/catalog"
	syncapp "github.com/pim/backend/internal/application/sync"
	"github.com/pim/backend/internal/domain/rating"
	"github.com/pim/backend/internal/domain/shared"
)

// DashboardHandler aggregates catalog and sync state for the overview
// screen
type DashboardHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
	syncService    *syncapp.SyncService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(productService *catalogapp.ProductService, syncService *syncapp.SyncService) *DashboardHandler {
	return &DashboardHandler{
		productService: productService,
		syncService:    syncService,
	}
}

// RegisterRoutes registers dashboard routes on the given group
func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.Overview)
}

// ProductStats summarizes catalog counts by status and link state
type ProductStats struct {
	Total     int64 `json:"total"`
	Published int64 `json:"published"`
	Draft     int64 `json:"draft"`
	Archived  int64 `json:"archived"`
	Linked    int64 `json:"linked"`
}

// LowScoringProduct is a catalog entry flagged for content work
type LowScoringProduct struct {
	catalogapp.ProductListResponse
	ScoreColor string `json:"score_color"`
}

// OverviewResponse is the dashboard payload
type OverviewResponse struct {
	Products   ProductStats         `json:"products"`
	LowScoring []LowScoringProduct  `json:"low_scoring"`
	LatestJob  *syncapp.JobResponse `json:"latest_job"`
}

// Overview builds the dashboard summary
func (h *DashboardHandler) Overview(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.productStats(c)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	lowScoring, err := h.productService.ListLowScoring(ctx, 5)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	flagged := make([]LowScoringProduct, 0, len(lowScoring))
	for _, p := range lowScoring {
		flagged = append(flagged, LowScoringProduct{
			ProductListResponse: p,
			ScoreColor:          rating.ScoreColor(p.RatingScore),
		})
	}

	resp := OverviewResponse{
		Products:   stats,
		LowScoring: flagged,
	}

	latest, err := h.syncService.GetLatestJob(ctx)
	if err != nil {
		var domainErr *shared.DomainError
		if !errors.As(err, &domainErr) || domainErr.Code != shared.ErrNotFound.Code {
			h.HandleDomainError(c, err)
			return
		}
	} else {
		resp.LatestJob = latest
	}

	h.Success(c, resp)
}

func (h *DashboardHandler) productStats(c *gin.Context) (ProductStats, error) {
	ctx := c.Request.Context()
	linked := true

	counts := []struct {
		filter catalogapp.ProductListFilter
		dest   *int64
	}{
		{catalogapp.ProductListFilter{}, nil},
		{catalogapp.ProductListFilter{Status: "published"}, nil},
		{catalogapp.ProductListFilter{Status: "draft"}, nil},
		{catalogapp.ProductListFilter{Status: "archived"}, nil},
		{catalogapp.ProductListFilter{Linked: &linked}, nil},
	}

	var stats ProductStats
	counts[0].dest = &stats.Total
	counts[1].dest = &stats.Published
	counts[2].dest = &stats.Draft
	counts[3].dest = &stats.Archived
	counts[4].dest = &stats.Linked

	for _, q := range counts {
		q.filter.Page = 1
		q.filter.PageSize = 1
		_, total, err := h.productService.List(ctx, q.filter)
		if err != nil {
			return ProductStats{}, err
		}
		*q.dest = total
	}

	return stats, nil
}
