package sync

import (
	"context"

	"github.com/google/uuid"
	"github.com/pim/backend/internal/domain/catalog"
	"github.com/pim/backend/internal/domain/rating"
	"github.com/pim/backend/internal/domain/shared"
	"github.com/pim/backend/internal/domain/sync"
	"github.com/stretchr/testify/mock"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByRemoteID(ctx context.Context, remoteID int64) (*catalog.Product, error) {
	args := m.Called(ctx, remoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindBySKU(ctx context.Context, sku string) (*catalog.Product, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindPublished(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindLowScoring(ctx context.Context, limit int) ([]catalog.Product, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) UpdateRatingScore(ctx context.Context, id uuid.UUID, score float64) error {
	args := m.Called(ctx, id, score)
	return args.Error(0)
}

// MockCategoryRepository is a mock implementation of CategoryRepository
type MockAttributeRepository struct {
	mock.Mock
}

func (m *MockAttributeRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Attribute, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Attribute), args.Error(1)
}

func (m *MockAttributeRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Attribute, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Attribute), args.Error(1)
}

func (m *MockAttributeRepository) FindByName(ctx context.Context, name string) (*catalog.Attribute, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Attribute), args.Error(1)
}

func (m *MockAttributeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Attribute, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Attribute), args.Error(1)
}

func (m *MockAttributeRepository) Save(ctx context.Context, attribute *catalog.Attribute) error {
	args := m.Called(ctx, attribute)
	return args.Error(0)
}

func (m *MockAttributeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAttributeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAttributeRepository) CountAssignments(ctx context.Context, attributeID uuid.UUID) (int64, error) {
	args := m.Called(ctx, attributeID)
	return args.Get(0).(int64), args.Error(1)
}

// MockProductAttributeValueRepository is a mock implementation of ProductAttributeValueRepository

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByRemoteID(ctx context.Context, remoteID int64) (*catalog.Category, error) {
	args := m.Called(ctx, remoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Category, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindChildren(ctx context.Context, parentID uuid.UUID) ([]catalog.Category, error) {
	args := m.Called(ctx, parentID)
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindRootCategories(ctx context.Context) ([]catalog.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]catalog.Category, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) ReplaceProductLinks(ctx context.Context, productID uuid.UUID, categoryIDs []uuid.UUID) error {
	args := m.Called(ctx, productID, categoryIDs)
	return args.Error(0)
}

func (m *MockCategoryRepository) CountProductLinks(ctx context.Context, productID uuid.UUID) (int64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryRepository) Save(ctx context.Context, category *catalog.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryRepository) HasChildren(ctx context.Context, categoryID uuid.UUID) (bool, error) {
	args := m.Called(ctx, categoryID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) HasProducts(ctx context.Context, categoryID uuid.UUID) (bool, error) {
	args := m.Called(ctx, categoryID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

// MockProductAttributeValueRepository is a mock implementation of ProductAttributeValueRepository
type MockProductAttributeValueRepository struct {
	mock.Mock
}

func (m *MockProductAttributeValueRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]catalog.ProductAttributeValue, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]catalog.ProductAttributeValue), args.Error(1)
}

func (m *MockProductAttributeValueRepository) ReplaceForProduct(ctx context.Context, productID uuid.UUID, values []catalog.ProductAttributeValue) error {
	args := m.Called(ctx, productID, values)
	return args.Error(0)
}

func (m *MockProductAttributeValueRepository) CountForProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductAttributeValueRepository) DeleteForProduct(ctx context.Context, productID uuid.UUID) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

// MockProductImageRepository is a mock implementation of ProductImageRepository
type MockProductImageRepository struct {
	mock.Mock
}

func (m *MockProductImageRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]catalog.ProductImage, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]catalog.ProductImage), args.Error(1)
}

func (m *MockProductImageRepository) ReplaceForProduct(ctx context.Context, productID uuid.UUID, images []catalog.ProductImage) error {
	args := m.Called(ctx, productID, images)
	return args.Error(0)
}

func (m *MockProductImageRepository) CountForProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductImageRepository) CountWithAltText(ctx context.Context, productID uuid.UUID) (int64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductImageRepository) Save(ctx context.Context, image *catalog.ProductImage) error {
	args := m.Called(ctx, image)
	return args.Error(0)
}

func (m *MockProductImageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductImageRepository) DeleteForProduct(ctx context.Context, productID uuid.UUID) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

// MockProductSEORepository is a mock implementation of ProductSEORepository
type MockProductSEORepository struct {
	mock.Mock
}

func (m *MockProductSEORepository) FindByProduct(ctx context.Context, productID uuid.UUID) (*catalog.ProductSEO, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ProductSEO), args.Error(1)
}

func (m *MockProductSEORepository) Upsert(ctx context.Context, seo *catalog.ProductSEO) error {
	args := m.Called(ctx, seo)
	return args.Error(0)
}

func (m *MockProductSEORepository) DeleteForProduct(ctx context.Context, productID uuid.UUID) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

// MockCriterionRepository is a mock implementation of CriterionRepository
type MockCriterionRepository struct {
	mock.Mock
}

func (m *MockCriterionRepository) FindByID(ctx context.Context, id uuid.UUID) (*rating.Criterion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rating.Criterion), args.Error(1)
}

func (m *MockCriterionRepository) FindByName(ctx context.Context, name rating.CriterionName) (*rating.Criterion, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rating.Criterion), args.Error(1)
}

func (m *MockCriterionRepository) FindActive(ctx context.Context) ([]rating.Criterion, error) {
	args := m.Called(ctx)
	return args.Get(0).([]rating.Criterion), args.Error(1)
}

func (m *MockCriterionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]rating.Criterion, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]rating.Criterion), args.Error(1)
}

func (m *MockCriterionRepository) Save(ctx context.Context, criterion *rating.Criterion) error {
	args := m.Called(ctx, criterion)
	return args.Error(0)
}

// MockDetailRepository is a mock implementation of DetailRepository
type MockDetailRepository struct {
	mock.Mock
}

func (m *MockDetailRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]rating.Detail, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]rating.Detail), args.Error(1)
}

func (m *MockDetailRepository) ReplaceForProduct(ctx context.Context, productID uuid.UUID, details []rating.Detail) error {
	args := m.Called(ctx, productID, details)
	return args.Error(0)
}

func (m *MockDetailRepository) DeleteForProduct(ctx context.Context, productID uuid.UUID) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) FindByID(ctx context.Context, id uuid.UUID) (*sync.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sync.Job), args.Error(1)
}

func (m *MockJobRepository) FindLatest(ctx context.Context) (*sync.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sync.Job), args.Error(1)
}

func (m *MockJobRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sync.Job, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]sync.Job), args.Error(1)
}

func (m *MockJobRepository) Save(ctx context.Context, job *sync.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockJobRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJobRepository) SaveItem(ctx context.Context, item *sync.JobItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockJobRepository) FindItems(ctx context.Context, jobID uuid.UUID) ([]sync.JobItem, error) {
	args := m.Called(ctx, jobID)
	return args.Get(0).([]sync.JobItem), args.Error(1)
}
