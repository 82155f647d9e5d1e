package persistence

import (
	"context"

	appsync "github.com/pim/backend/internal/application/sync"
	"github.com/pim/backend/internal/domain/catalog"
	"github.com/pim/backend/internal/domain/rating"
	"github.com/pim/backend/internal/domain/sync"
	"gorm.io/gorm"
)

// GormTransactionScope implements TransactionScope using GORM transactions.
// It provides atomic execution of multiple repository operations.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope.
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// If the function succeeds, the transaction is committed.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos appsync.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormTransactionalRepositories{tx: tx}
		return fn(repos)
	})
}

// gormTransactionalRepositories provides access to all repositories within a transaction.
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

// ProductRepo returns the product repository scoped to the current transaction.
func (r *gormTransactionalRepositories) ProductRepo() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

// CategoryRepo returns the category repository scoped to the current transaction.
func (r *gormTransactionalRepositories) CategoryRepo() catalog.CategoryRepository {
	return NewGormCategoryRepository(r.tx)
}

// AttributeRepo returns the attribute repository scoped to the current transaction.
func (r *gormTransactionalRepositories) AttributeRepo() catalog.AttributeRepository {
	return NewGormAttributeRepository(r.tx)
}

// AttributeValueRepo returns the product attribute value repository scoped to the current transaction.
func (r *gormTransactionalRepositories) AttributeValueRepo() catalog.ProductAttributeValueRepository {
	return NewGormProductAttributeValueRepository(r.tx)
}

// ImageRepo returns the product image repository scoped to the current transaction.
func (r *gormTransactionalRepositories) ImageRepo() catalog.ProductImageRepository {
	return NewGormProductImageRepository(r.tx)
}

// SEORepo returns the SEO record repository scoped to the current transaction.
func (r *gormTransactionalRepositories) SEORepo() catalog.ProductSEORepository {
	return NewGormProductSEORepository(r.tx)
}

// CriterionRepo returns the rating criterion repository scoped to the current transaction.
func (r *gormTransactionalRepositories) CriterionRepo() rating.CriterionRepository {
	return NewGormCriterionRepository(r.tx)
}

// DetailRepo returns the rating detail repository scoped to the current transaction.
func (r *gormTransactionalRepositories) DetailRepo() rating.DetailRepository {
	return NewGormDetailRepository(r.tx)
}

// JobRepo returns the sync job repository scoped to the current transaction.
func (r *gormTransactionalRepositories) JobRepo() sync.JobRepository {
	return NewGormSyncJobRepository(r.tx)
}

// Ensure GormTransactionScope implements TransactionScope
var _ appsync.TransactionScope = (*GormTransactionScope)(nil)

// Ensure gormTransactionalRepositories implements TransactionalRepositories
var _ appsync.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
