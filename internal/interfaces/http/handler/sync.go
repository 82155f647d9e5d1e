package handler

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	syncapp "github.com/pim/backend/internal/application/sync"
)

// SyncHandler handles synchronization API endpoints
type SyncHandler struct {
	BaseHandler
	syncService *syncapp.SyncService
}

// NewSyncHandler creates a new SyncHandler
func NewSyncHandler(syncService *syncapp.SyncService) *SyncHandler {
	return &SyncHandler{
		syncService: syncService,
	}
}

// RegisterRoutes registers synchronization routes on the given group
func (h *SyncHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sync := rg.Group("/sync")
	{
		sync.GET("/connection", h.TestConnection)
		sync.POST("/import", h.Import)
		sync.POST("/export", h.Export)
		sync.POST("/full", h.FullSync)
		sync.GET("/jobs", h.ListJobs)
		sync.GET("/jobs/latest", h.GetLatestJob)
		sync.GET("/jobs/:id", h.GetJob)
	}
}

// TestConnection verifies that the remote store is reachable with the
// configured credentials
func (h *SyncHandler) TestConnection(c *gin.Context) {
	if err := h.syncService.TestRemoteConnection(c.Request.Context()); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, gin.H{"connected": true})
}

// Import pulls the remote catalog into the local one. The response is
// the finished job; item failures are reported through its counters.
func (h *SyncHandler) Import(c *gin.Context) {
	job, err := h.syncService.ImportFromRemote(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, job)
}

// Export pushes products to the remote store. An empty body or empty
// product list exports every published product.
func (h *SyncHandler) Export(c *gin.Context) {
	var req syncapp.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil && err != io.EOF {
		h.BadRequest(c, err)
		return
	}

	job, err := h.syncService.ExportToRemote(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, job)
}

// FullSync runs an import followed by an export of all published
// products
func (h *SyncHandler) FullSync(c *gin.Context) {
	result, err := h.syncService.FullSync(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// ListJobs retrieves a paginated list of sync jobs
func (h *SyncHandler) ListJobs(c *gin.Context) {
	var filter syncapp.JobListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err)
		return
	}

	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.PageSize == 0 {
		filter.PageSize = 20
	}

	jobs, total, err := h.syncService.ListJobs(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, jobs, total, filter.Page, filter.PageSize)
}

// GetLatestJob retrieves the most recent sync job
func (h *SyncHandler) GetLatestJob(c *gin.Context) {
	job, err := h.syncService.GetLatestJob(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, job)
}

// GetJob retrieves a sync job with its per-item audit trail
func (h *SyncHandler) GetJob(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequestMessage(c, "Invalid job ID format")
		return
	}

	job, err := h.syncService.GetJob(c.Request.Context(), jobID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, job)
}
