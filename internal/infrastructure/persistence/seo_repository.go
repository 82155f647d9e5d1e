package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pim/backend/internal/domain/catalog"
	"github.com/pim/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProductSEORepository implements ProductSEORepository using GORM
type GormProductSEORepository struct {
	db *gorm.DB
}

// NewGormProductSEORepository creates a new GormProductSEORepository
func NewGormProductSEORepository(db *gorm.DB) *GormProductSEORepository {
	return &GormProductSEORepository{db: db}
}

// FindByProduct finds the SEO record of a product
func (r *GormProductSEORepository) FindByProduct(ctx context.Context, productID uuid.UUID) (*catalog.ProductSEO, error) {
	var seo catalog.ProductSEO
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		First(&seo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &seo, nil
}

// Upsert creates or updates the SEO record of a product
func (r *GormProductSEORepository) Upsert(ctx context.Context, seo *catalog.ProductSEO) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"meta_title", "meta_description", "meta_keywords",
				"focus_keyword", "canonical_url", "updated_at",
			}),
		}).
		Create(seo).Error
}

// DeleteForProduct deletes the SEO record of a product
func (r *GormProductSEORepository) DeleteForProduct(ctx context.Context, productID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&catalog.ProductSEO{}, "product_id = ?", productID).Error
}

// Ensure GormProductSEORepository implements ProductSEORepository
var _ catalog.ProductSEORepository = (*GormProductSEORepository)(nil)
