package sync

import (
	"time"

	"github.com/google/uuid"
	"github.com/pim/backend/internal/domain/sync"
)

// JobResponse represents a sync job in API responses
type JobResponse struct {
	ID             uuid.UUID  `json:"id"`
	JobType        string     `json:"job_type"`
	Status         string     `json:"status"`
	ItemsTotal     int        `json:"items_total"`
	ItemsProcessed int        `json:"items_processed"`
	ItemsSucceeded int        `json:"items_succeeded"`
	ItemsFailed    int        `json:"items_failed"`
	StartedAt      *time.Time `json:"started_at"`
	CompletedAt    *time.Time `json:"completed_at"`
	Log            string     `json:"log"`
	CreatedAt      time.Time  `json:"created_at"`
}

// JobItemResponse represents one item outcome within a sync job
type JobItemResponse struct {
	ID           uuid.UUID  `json:"id"`
	ProductID    *uuid.UUID `json:"product_id"`
	RemoteID     *int64     `json:"remote_id"`
	Status       string     `json:"status"`
	ErrorMessage string     `json:"error_message"`
	CreatedAt    time.Time  `json:"created_at"`
}

// JobDetailResponse is a sync job with its per-item audit trail
type JobDetailResponse struct {
	Job   JobResponse       `json:"job"`
	Items []JobItemResponse `json:"items"`
}

// JobListFilter represents filter options for sync job list
type JobListFilter struct {
	JobType  string `form:"job_type" binding:"omitempty,oneof=import export"`
	Status   string `form:"status" binding:"omitempty,oneof=pending in_progress completed failed"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ExportRequest selects the products to export. An empty list exports
// every published product.
type ExportRequest struct {
	ProductIDs []uuid.UUID `json:"product_ids"`
}

// FullSyncResponse reports the two jobs of a full synchronization run.
// The export job is nil when the import did not complete.
type FullSyncResponse struct {
	ImportJob JobResponse  `json:"import_job"`
	ExportJob *JobResponse `json:"export_job"`
}

// ToJobResponse converts a domain Job to JobResponse
func ToJobResponse(j *sync.Job) JobResponse {
	return JobResponse{
		ID:             j.ID,
		JobType:        string(j.JobType),
		Status:         string(j.Status),
		ItemsTotal:     j.ItemsTotal,
		ItemsProcessed: j.ItemsProcessed,
		ItemsSucceeded: j.ItemsSucceeded,
		ItemsFailed:    j.ItemsFailed,
		StartedAt:      j.StartedAt,
		CompletedAt:    j.CompletedAt,
		Log:            j.Log,
		CreatedAt:      j.CreatedAt,
	}
}

// ToJobResponses converts a slice of domain Jobs to JobResponses
func ToJobResponses(jobs []sync.Job) []JobResponse {
	responses := make([]JobResponse, len(jobs))
	for i := range jobs {
		responses[i] = ToJobResponse(&jobs[i])
	}
	return responses
}

// ToJobItemResponses converts a slice of domain JobItems to JobItemResponses
func ToJobItemResponses(items []sync.JobItem) []JobItemResponse {
	responses := make([]JobItemResponse, len(items))
	for i, item := range items {
		responses[i] = JobItemResponse{
			ID:           item.ID,
			ProductID:    item.ProductID,
			RemoteID:     item.RemoteID,
			Status:       string(item.Status),
			ErrorMessage: item.ErrorMessage,
			CreatedAt:    item.CreatedAt,
		}
	}
	return responses
}
