package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pim/backend/internal/domain/rating"
	"github.com/pim/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormCriterionRepository implements CriterionRepository using GORM
type GormCriterionRepository struct {
	db *gorm.DB
}

// NewGormCriterionRepository creates a new GormCriterionRepository
func NewGormCriterionRepository(db *gorm.DB) *GormCriterionRepository {
	return &GormCriterionRepository{db: db}
}

// FindByID finds a criterion by its ID
func (r *GormCriterionRepository) FindByID(ctx context.Context, id uuid.UUID) (*rating.Criterion, error) {
	var criterion rating.Criterion
	if err := r.db.WithContext(ctx).First(&criterion, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &criterion, nil
}

// FindByName finds a criterion by its name
func (r *GormCriterionRepository) FindByName(ctx context.Context, name rating.CriterionName) (*rating.Criterion, error) {
	var criterion rating.Criterion
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&criterion).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &criterion, nil
}

// FindActive finds all active criteria
func (r *GormCriterionRepository) FindActive(ctx context.Context) ([]rating.Criterion, error) {
	var criteria []rating.Criterion
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&criteria).Error; err != nil {
		return nil, err
	}
	return criteria, nil
}

// FindAll finds all criteria matching the filter
func (r *GormCriterionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]rating.Criterion, error) {
	var criteria []rating.Criterion
	query := r.db.WithContext(ctx).Model(&rating.Criterion{})

	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	if active, ok := filter.Filters["is_active"]; ok {
		query = query.Where("is_active = ?", active)
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	query = query.Order("name ASC")

	if err := query.Find(&criteria).Error; err != nil {
		return nil, err
	}
	return criteria, nil
}

// Save creates or updates a criterion
func (r *GormCriterionRepository) Save(ctx context.Context, criterion *rating.Criterion) error {
	return r.db.WithContext(ctx).Save(criterion).Error
}

// GormDetailRepository implements DetailRepository using GORM
type GormDetailRepository struct {
	db *gorm.DB
}

// NewGormDetailRepository creates a new GormDetailRepository
func NewGormDetailRepository(db *gorm.DB) *GormDetailRepository {
	return &GormDetailRepository{db: db}
}

// FindByProduct finds all rating details of a product
func (r *GormDetailRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]rating.Detail, error) {
	var details []rating.Detail
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("score ASC").
		Find(&details).Error; err != nil {
		return nil, err
	}
	return details, nil
}

// ReplaceForProduct deletes the previous details of a product and inserts the new set
func (r *GormDetailRepository) ReplaceForProduct(ctx context.Context, productID uuid.UUID, details []rating.Detail) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&rating.Detail{}, "product_id = ?", productID).Error; err != nil {
			return err
		}
		if len(details) == 0 {
			return nil
		}
		return tx.Create(&details).Error
	})
}

// DeleteForProduct deletes all rating details of a product
func (r *GormDetailRepository) DeleteForProduct(ctx context.Context, productID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&rating.Detail{}, "product_id = ?", productID).Error
}

// Ensure the repositories implement their interfaces
var (
	_ rating.CriterionRepository = (*GormCriterionRepository)(nil)
	_ rating.DetailRepository    = (*GormDetailRepository)(nil)
)
