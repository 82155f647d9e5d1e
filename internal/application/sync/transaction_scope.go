package sync

import (
	"context"

	"github.com/pim/backend/internal/domain/catalog"
	"github.com/pim/backend/internal/domain/rating"
	"github.com/pim/backend/internal/domain/sync"
)

// TransactionScope provides transactional access to the repositories a
// synchronization run touches. When a function is executed within a
// transaction scope, all repository operations will be part of the same
// database transaction and will be committed or rolled back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the repositories involved in
// persisting one synchronized product. All repositories returned share the
// same underlying database transaction.
type TransactionalRepositories interface {
	// ProductRepo returns the product repository scoped to the current transaction
	ProductRepo() catalog.ProductRepository
	// CategoryRepo returns the category repository scoped to the current transaction
	CategoryRepo() catalog.CategoryRepository
	// AttributeRepo returns the attribute repository scoped to the current transaction
	AttributeRepo() catalog.AttributeRepository
	// AttributeValueRepo returns the product attribute value repository scoped to the current transaction
	AttributeValueRepo() catalog.ProductAttributeValueRepository
	// ImageRepo returns the product image repository scoped to the current transaction
	ImageRepo() catalog.ProductImageRepository
	// SEORepo returns the SEO record repository scoped to the current transaction
	SEORepo() catalog.ProductSEORepository
	// CriterionRepo returns the rating criterion repository scoped to the current transaction
	CriterionRepo() rating.CriterionRepository
	// DetailRepo returns the rating detail repository scoped to the current transaction
	DetailRepo() rating.DetailRepository
	// JobRepo returns the sync job repository scoped to the current transaction
	JobRepo() sync.JobRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. This is useful for testing or when transaction support is
// not required.
type NoOpTransactionScope struct {
	productRepo        catalog.ProductRepository
	categoryRepo       catalog.CategoryRepository
	attributeRepo      catalog.AttributeRepository
	attributeValueRepo catalog.ProductAttributeValueRepository
	imageRepo          catalog.ProductImageRepository
	seoRepo            catalog.ProductSEORepository
	criterionRepo      rating.CriterionRepository
	detailRepo         rating.DetailRepository
	jobRepo            sync.JobRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	productRepo catalog.ProductRepository,
	categoryRepo catalog.CategoryRepository,
	attributeRepo catalog.AttributeRepository,
	attributeValueRepo catalog.ProductAttributeValueRepository,
	imageRepo catalog.ProductImageRepository,
	seoRepo catalog.ProductSEORepository,
	criterionRepo rating.CriterionRepository,
	detailRepo rating.DetailRepository,
	jobRepo sync.JobRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		productRepo:        productRepo,
		categoryRepo:       categoryRepo,
		attributeRepo:      attributeRepo,
		attributeValueRepo: attributeValueRepo,
		imageRepo:          imageRepo,
		seoRepo:            seoRepo,
		criterionRepo:      criterionRepo,
		detailRepo:         detailRepo,
		jobRepo:            jobRepo,
	}
}

// Execute runs the function without a real transaction (for testing/compatibility).
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// ProductRepo returns the product repository.
func (s *NoOpTransactionScope) ProductRepo() catalog.ProductRepository {
	return s.productRepo
}

// CategoryRepo returns the category repository.
func (s *NoOpTransactionScope) CategoryRepo() catalog.CategoryRepository {
	return s.categoryRepo
}

// AttributeRepo returns the attribute repository.
func (s *NoOpTransactionScope) AttributeRepo() catalog.AttributeRepository {
	return s.attributeRepo
}

// AttributeValueRepo returns the product attribute value repository.
func (s *NoOpTransactionScope) AttributeValueRepo() catalog.ProductAttributeValueRepository {
	return s.attributeValueRepo
}

// ImageRepo returns the product image repository.
func (s *NoOpTransactionScope) ImageRepo() catalog.ProductImageRepository {
	return s.imageRepo
}

// SEORepo returns the SEO record repository.
func (s *NoOpTransactionScope) SEORepo() catalog.ProductSEORepository {
	return s.seoRepo
}

// CriterionRepo returns the rating criterion repository.
func (s *NoOpTransactionScope) CriterionRepo() rating.CriterionRepository {
	return s.criterionRepo
}

// DetailRepo returns the rating detail repository.
func (s *NoOpTransactionScope) DetailRepo() rating.DetailRepository {
	return s.detailRepo
}

// JobRepo returns the sync job repository.
func (s *NoOpTransactionScope) JobRepo() sync.JobRepository {
	return s.jobRepo
}

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
