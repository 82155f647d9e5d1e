package sync

import (
	"github.com/google/uuid"
	"github.com/pim/backend/internal/domain/shared"
)

// ItemStatus is the outcome of one entity within a sync job
type ItemStatus string

const (
	ItemStatusSucceeded ItemStatus = "succeeded"
	ItemStatusFailed    ItemStatus = "failed"
)

// JobItem is the per-entity audit trail of a sync job. Failed items
// carry the error text that caused the failure.
type JobItem struct {
	shared.BaseEntity
	JobID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProductID    *uuid.UUID `gorm:"type:uuid;index"`
	RemoteID     *int64     `gorm:"column:remote_id"`
	Status       ItemStatus `gorm:"type:varchar(20);not null"`
	ErrorMessage string     `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (JobItem) TableName() string {
	return "sync_job_items"
}

// NewSucceededItem records a successful item outcome
func NewSucceededItem(jobID uuid.UUID, productID *uuid.UUID, remoteID *int64) *JobItem {
	return &JobItem{
		BaseEntity: shared.NewBaseEntity(),
		JobID:      jobID,
		ProductID:  productID,
		RemoteID:   remoteID,
		Status:     ItemStatusSucceeded,
	}
}

// NewFailedItem records a failed item outcome with its error text
func NewFailedItem(jobID uuid.UUID, productID *uuid.UUID, remoteID *int64, errMsg string) *JobItem {
	return &JobItem{
		BaseEntity:   shared.NewBaseEntity(),
		JobID:        jobID,
		ProductID:    productID,
		RemoteID:     remoteID,
		Status:       ItemStatusFailed,
		ErrorMessage: errMsg,
	}
}
