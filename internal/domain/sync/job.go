package sync

import (
	"time"

	"github.com/pim/backend/internal/domain/shared"
)

// JobType identifies the direction of a sync job
type JobType string

const (
	JobTypeImport JobType = "import"
	JobTypeExport JobType = "export"
)

// JobStatus is the lifecycle status of a sync job.
// Transitions: pending -> in_progress -> completed | failed.
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// Job tracks one import or export invocation: progress counters,
// timestamps, and a free-text log for operator review.
type Job struct {
	shared.BaseAggregateRoot
	JobType        JobType    `gorm:"type:varchar(20);not null;index"`
	Status         JobStatus  `gorm:"type:varchar(20);not null;default:'pending';index"`
	ItemsTotal     int        `gorm:"not null;default:0"`
	ItemsProcessed int        `gorm:"not null;default:0"`
	ItemsSucceeded int        `gorm:"not null;default:0"`
	ItemsFailed    int        `gorm:"not null;default:0"`
	StartedAt      *time.Time `gorm:""`
	CompletedAt    *time.Time `gorm:""`
	Log            string     `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Job) TableName() string {
	return "sync_jobs"
}

// NewJob creates a pending sync job
func NewJob(jobType JobType) (*Job, error) {
	switch jobType {
	case JobTypeImport, JobTypeExport:
	default:
		return nil, shared.NewDomainError("INVALID_JOB_TYPE", "Unknown sync job type")
	}

	return &Job{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		JobType:           jobType,
		Status:            JobStatusPending,
	}, nil
}

// Start transitions the job into in_progress. The start timestamp is
// set exactly once; restarting a job that already started is rejected.
func (j *Job) Start() error {
	if j.Status != JobStatusPending {
		return shared.ErrInvalidState
	}

	now := time.Now()
	j.Status = JobStatusInProgress
	j.StartedAt = &now
	j.UpdatedAt = now
	j.IncrementVersion()

	return nil
}

// SetTotal records the remote-reported total item count
func (j *Job) SetTotal(total int) {
	if total < 0 {
		total = 0
	}
	j.ItemsTotal = total
	j.UpdatedAt = time.Now()
}

// RecordSuccess counts one successfully processed item
func (j *Job) RecordSuccess() {
	j.ItemsProcessed++
	j.ItemsSucceeded++
	j.UpdatedAt = time.Now()
}

// RecordFailure counts one failed item
func (j *Job) RecordFailure() {
	j.ItemsProcessed++
	j.ItemsFailed++
	j.UpdatedAt = time.Now()
}

// Complete transitions the job into the completed terminal state
func (j *Job) Complete() error {
	if j.Status != JobStatusInProgress {
		return shared.ErrInvalidState
	}

	now := time.Now()
	j.Status = JobStatusCompleted
	j.CompletedAt = &now
	j.UpdatedAt = now
	j.IncrementVersion()

	return nil
}

// Fail transitions the job into the failed terminal state and retains
// the fatal error text in the job log.
func (j *Job) Fail(logText string) error {
	if j.Status != JobStatusInProgress && j.Status != JobStatusPending {
		return shared.ErrInvalidState
	}

	now := time.Now()
	j.Status = JobStatusFailed
	j.CompletedAt = &now
	j.Log = logText
	j.UpdatedAt = now
	j.IncrementVersion()

	return nil
}

// IsTerminal returns true once the job reached a terminal status
func (j *Job) IsTerminal() bool {
	return j.Status == JobStatusCompleted || j.Status == JobStatusFailed
}
