package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/pim/backend/internal/domain/catalog"
	"github.com/pim/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormProductImageRepository implements ProductImageRepository using GORM
type GormProductImageRepository struct {
	db *gorm.DB
}

// NewGormProductImageRepository creates a new GormProductImageRepository
func NewGormProductImageRepository(db *gorm.DB) *GormProductImageRepository {
	return &GormProductImageRepository{db: db}
}

// FindByProduct finds the images of a product, featured first, then by position
func (r *GormProductImageRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]catalog.ProductImage, error) {
	var images []catalog.ProductImage
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("is_featured DESC, position ASC").
		Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

// ReplaceForProduct replaces all images of a product
func (r *GormProductImageRepository) ReplaceForProduct(ctx context.Context, productID uuid.UUID, images []catalog.ProductImage) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&catalog.ProductImage{}, "product_id = ?", productID).Error; err != nil {
			return err
		}
		if len(images) == 0 {
			return nil
		}
		return tx.Create(&images).Error
	})
}

// CountForProduct counts the images of a product
func (r *GormProductImageRepository) CountForProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.ProductImage{}).
		Where("product_id = ?", productID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountWithAltText counts the images of a product that carry alt text
func (r *GormProductImageRepository) CountWithAltText(ctx context.Context, productID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.ProductImage{}).
		Where("product_id = ? AND TRIM(alt_text) != ''", productID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a single image
func (r *GormProductImageRepository) Save(ctx context.Context, image *catalog.ProductImage) error {
	return r.db.WithContext(ctx).Save(image).Error
}

// Delete deletes a single image
func (r *GormProductImageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.ProductImage{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteForProduct deletes all images of a product
func (r *GormProductImageRepository) DeleteForProduct(ctx context.Context, productID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&catalog.ProductImage{}, "product_id = ?", productID).Error
}

// Ensure GormProductImageRepository implements ProductImageRepository
var _ catalog.ProductImageRepository = (*GormProductImageRepository)(nil)
