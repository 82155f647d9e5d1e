package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pim/backend/internal/domain/shared"
	"github.com/pim/backend/internal/domain/sync"
	"gorm.io/gorm"
)

// GormSyncJobRepository implements JobRepository using GORM
type GormSyncJobRepository struct {
	db *gorm.DB
}

// NewGormSyncJobRepository creates a new GormSyncJobRepository
func NewGormSyncJobRepository(db *gorm.DB) *GormSyncJobRepository {
	return &GormSyncJobRepository{db: db}
}

// FindByID finds a job by its ID
func (r *GormSyncJobRepository) FindByID(ctx context.Context, id uuid.UUID) (*sync.Job, error) {
	var job sync.Job
	if err := r.db.WithContext(ctx).First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// FindLatest finds the most recently created job
func (r *GormSyncJobRepository) FindLatest(ctx context.Context) (*sync.Job, error) {
	var job sync.Job
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// FindAll finds all jobs matching the filter
func (r *GormSyncJobRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sync.Job, error) {
	var jobs []sync.Job
	query := r.applyFilter(r.db.WithContext(ctx).Model(&sync.Job{}), filter)

	if err := query.Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// Save creates or updates a job
func (r *GormSyncJobRepository) Save(ctx context.Context, job *sync.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

// Count counts jobs matching the filter
func (r *GormSyncJobRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&sync.Job{})
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SaveItem appends one item outcome to a job's audit trail
func (r *GormSyncJobRepository) SaveItem(ctx context.Context, item *sync.JobItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// FindItems finds all item outcomes of a job
func (r *GormSyncJobRepository) FindItems(ctx context.Context, jobID uuid.UUID) ([]sync.JobItem, error) {
	var items []sync.JobItem
	if err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// applyFilter applies filter options to the query
func (r *GormSyncJobRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderBy := ValidateSortField(filter.OrderBy, SyncJobSortFields, "created_at")
		query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))
	} else {
		query = query.Order("created_at DESC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormSyncJobRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "job_type":
			query = query.Where("job_type = ?", value)
		case "status":
			query = query.Where("status = ?", value)
		}
	}
	return query
}

// Ensure GormSyncJobRepository implements JobRepository
var _ sync.JobRepository = (*GormSyncJobRepository)(nil)
