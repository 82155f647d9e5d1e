package integration

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pim/backend/internal/domain/catalog"
	"github.com/pim/backend/internal/domain/shared"
	"github.com/pim/backend/internal/domain/sync"
	"github.com/pim/backend/internal/infrastructure/persistence"
)

func TestGormSyncJobRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tdb := NewTestDB(t)
	jobRepo := persistence.NewGormSyncJobRepository(tdb.DB)
	productRepo := persistence.NewGormProductRepository(tdb.DB)
	ctx := context.Background()

	t.Run("persists a job through its lifecycle", func(t *testing.T) {
		job, err := sync.NewJob(sync.JobTypeImport)
		require.NoError(t, err)
		require.NoError(t, jobRepo.Save(ctx, job))

		require.NoError(t, job.Start())
		job.SetTotal(3)
		job.RecordSuccess()
		job.RecordSuccess()
		job.RecordFailure()
		require.NoError(t, job.Complete())
		require.NoError(t, jobRepo.Save(ctx, job))

		found, err := jobRepo.FindByID(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, sync.JobStatusCompleted, found.Status)
		assert.Equal(t, 3, found.ItemsTotal)
		assert.Equal(t, 2, found.ItemsSucceeded)
		assert.Equal(t, 1, found.ItemsFailed)
		assert.NotNil(t, found.StartedAt)
		assert.NotNil(t, found.CompletedAt)
	})

	t.Run("records per item outcomes", func(t *testing.T) {
		product, err := catalog.NewProduct("Sander", "SND-001", catalog.ProductTypeSimple)
		require.NoError(t, err)
		require.NoError(t, productRepo.Save(ctx, product))

		job, err := sync.NewJob(sync.JobTypeExport)
		require.NoError(t, err)
		require.NoError(t, jobRepo.Save(ctx, job))

		remoteID := int64(321)
		succeeded := sync.NewSucceededItem(job.ID, &product.ID, &remoteID)
		require.NoError(t, jobRepo.SaveItem(ctx, succeeded))

		failed := sync.NewFailedItem(job.ID, nil, nil, "product not found")
		require.NoError(t, jobRepo.SaveItem(ctx, failed))

		items, err := jobRepo.FindItems(ctx, job.ID)
		require.NoError(t, err)
		require.Len(t, items, 2)

		byStatus := map[sync.ItemStatus]sync.JobItem{}
		for _, item := range items {
			byStatus[item.Status] = item
		}
		assert.Equal(t, product.ID, *byStatus[sync.ItemStatusSucceeded].ProductID)
		assert.Equal(t, remoteID, *byStatus[sync.ItemStatusSucceeded].RemoteID)
		assert.Equal(t, "product not found", byStatus[sync.ItemStatusFailed].ErrorMessage)
	})

	t.Run("finds the latest job and filters history", func(t *testing.T) {
		tdb.CleanTables()

		older, err := sync.NewJob(sync.JobTypeImport)
		require.NoError(t, err)
		require.NoError(t, jobRepo.Save(ctx, older))

		newer, err := sync.NewJob(sync.JobTypeExport)
		require.NoError(t, err)
		require.NoError(t, jobRepo.Save(ctx, newer))

		latest, err := jobRepo.FindLatest(ctx)
		require.NoError(t, err)
		assert.Equal(t, newer.ID, latest.ID)

		filter := shared.DefaultFilter()
		filter.Filters["job_type"] = string(sync.JobTypeImport)

		jobs, err := jobRepo.FindAll(ctx, filter)
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, older.ID, jobs[0].ID)

		count, err := jobRepo.Count(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("returns not found for an unknown job", func(t *testing.T) {
		_, err := jobRepo.FindByID(ctx, uuid.New())

		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
	})
}
