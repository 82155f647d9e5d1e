package sync

import (
	"context"

	"github.com/google/uuid"
	"github.com/pim/backend/internal/domain/shared"
)

// JobRepository defines the interface for sync job persistence
type JobRepository interface {
	// FindByID finds a job by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Job, error)

	// FindLatest finds the most recently created job
	FindLatest(ctx context.Context) (*Job, error)

	// FindAll finds all jobs matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Job, error)

	// Save creates or updates a job
	Save(ctx context.Context, job *Job) error

	// Count counts jobs matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// SaveItem appends one item outcome to a job's audit trail
	SaveItem(ctx context.Context, item *JobItem) error

	// FindItems finds all item outcomes of a job
	FindItems(ctx context.Context, jobID uuid.UUID) ([]JobItem, error)
}
