package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/pim/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockProductRepository creates a GormProductRepository with a mocked SQL connection
func newMockProductRepository(t *testing.T) (*GormProductRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormProductRepository(gormDB), mock, mockDB
}

func TestNewGormProductRepository(t *testing.T) {
	t.Run("creates repository with valid DB", func(t *testing.T) {
		repo, _, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		assert.NotNil(t, repo)
		assert.NotNil(t, repo.db)
	})
}

func TestGormProductRepository_FindByID(t *testing.T) {
	t.Run("finds existing product", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		productID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "name", "sku", "type", "status", "regular_price", "rating_score"}).
			AddRow(productID, "Trail Backpack", "PACK-001", "simple", "published", decimal.NewFromInt(59), 72.5)

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(productID, 1).
			WillReturnRows(rows)

		product, err := repo.FindByID(context.Background(), productID)

		assert.NoError(t, err)
		assert.NotNil(t, product)
		assert.Equal(t, productID, product.ID)
		assert.Equal(t, "PACK-001", product.SKU)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns error for non-existent product", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		productID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(productID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		product, err := repo.FindByID(context.Background(), productID)

		assert.Error(t, err)
		assert.Nil(t, product)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProductRepository_FindByRemoteID(t *testing.T) {
	t.Run("finds product linked to remote identifier", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		productID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "remote_id", "name", "status"}).
			AddRow(productID, int64(4821), "Trail Backpack", "published")

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE remote_id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(int64(4821), 1).
			WillReturnRows(rows)

		product, err := repo.FindByRemoteID(context.Background(), 4821)

		assert.NoError(t, err)
		require.NotNil(t, product)
		require.NotNil(t, product.RemoteID)
		assert.Equal(t, int64(4821), *product.RemoteID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found for an unlinked identifier", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE remote_id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(int64(999), 1).
			WillReturnError(gorm.ErrRecordNotFound)

		product, err := repo.FindByRemoteID(context.Background(), 999)

		assert.Error(t, err)
		assert.Nil(t, product)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProductRepository_FindBySKU(t *testing.T) {
	t.Run("rejects empty SKU", func(t *testing.T) {
		repo, _, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		product, err := repo.FindBySKU(context.Background(), "")

		assert.Error(t, err)
		assert.Nil(t, product)
	})

	t.Run("finds product by SKU", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		productID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "name", "sku"}).
			AddRow(productID, "Trail Backpack", "PACK-001")

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE sku = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("PACK-001", 1).
			WillReturnRows(rows)

		product, err := repo.FindBySKU(context.Background(), "PACK-001")

		assert.NoError(t, err)
		require.NotNil(t, product)
		assert.Equal(t, "PACK-001", product.SKU)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProductRepository_FindLowScoring(t *testing.T) {
	t.Run("orders by rating score ascending and skips archived", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"id", "name", "status", "rating_score"}).
			AddRow(uuid.New(), "Bare Product", "draft", 12.0).
			AddRow(uuid.New(), "Half Done", "published", 45.0)

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE status != \$1 ORDER BY rating_score ASC LIMIT .*`).
			WithArgs("archived", 10).
			WillReturnRows(rows)

		products, err := repo.FindLowScoring(context.Background(), 10)

		assert.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "Bare Product", products[0].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProductRepository_FindByIDs(t *testing.T) {
	t.Run("returns empty slice for empty input", func(t *testing.T) {
		repo, _, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		products, err := repo.FindByIDs(context.Background(), nil)

		assert.NoError(t, err)
		assert.Empty(t, products)
	})
}

func TestGormProductRepository_Delete(t *testing.T) {
	t.Run("deletes existing product", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		productID := uuid.New()

		mock.ExpectExec(`DELETE FROM "products" WHERE id = \$1`).
			WithArgs(productID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), productID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found when nothing was deleted", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		productID := uuid.New()

		mock.ExpectExec(`DELETE FROM "products" WHERE id = \$1`).
			WithArgs(productID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), productID)

		assert.Error(t, err)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProductRepository_UpdateRatingScore(t *testing.T) {
	t.Run("updates cached score", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		productID := uuid.New()

		mock.ExpectExec(`UPDATE "products" SET "rating_score"=\$1,"updated_at"=\$2 WHERE id = \$3`).
			WithArgs(83.5, sqlmock.AnyArg(), productID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateRatingScore(context.Background(), productID, 83.5)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found for unknown product", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		productID := uuid.New()

		mock.ExpectExec(`UPDATE "products" SET "rating_score"=\$1,"updated_at"=\$2 WHERE id = \$3`).
			WithArgs(83.5, sqlmock.AnyArg(), productID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateRatingScore(context.Background(), productID, 83.5)

		assert.Error(t, err)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProductRepository_Count(t *testing.T) {
	t.Run("counts with status filter", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "products" WHERE status = \$1`).
			WithArgs("published").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

		count, err := repo.Count(context.Background(), shared.Filter{
			Filters: map[string]interface{}{"status": "published"},
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(7), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
