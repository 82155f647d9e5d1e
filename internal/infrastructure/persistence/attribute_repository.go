package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/pim/backend/internal/domain/catalog"
	"github.com/pim/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormAttributeRepository implements AttributeRepository using GORM
type GormAttributeRepository struct {
	db *gorm.DB
}

// NewGormAttributeRepository creates a new GormAttributeRepository
func NewGormAttributeRepository(db *gorm.DB) *GormAttributeRepository {
	return &GormAttributeRepository{db: db}
}

// FindByID finds an attribute with its vocabulary values
func (r *GormAttributeRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Attribute, error) {
	var attribute catalog.Attribute
	if err := r.db.WithContext(ctx).
		Preload("Values", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, value ASC")
		}).
		First(&attribute, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &attribute, nil
}

// FindBySlug finds an attribute by its slug
func (r *GormAttributeRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Attribute, error) {
	var attribute catalog.Attribute
	if err := r.db.WithContext(ctx).
		Preload("Values", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, value ASC")
		}).
		Where("slug = ?", slug).
		First(&attribute).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &attribute, nil
}

// FindByName finds an attribute by its name
func (r *GormAttributeRepository) FindByName(ctx context.Context, name string) (*catalog.Attribute, error) {
	var attribute catalog.Attribute
	if err := r.db.WithContext(ctx).
		Preload("Values", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, value ASC")
		}).
		Where("LOWER(name) = ?", strings.ToLower(name)).
		First(&attribute).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &attribute, nil
}

// FindAll finds all attributes matching the filter
func (r *GormAttributeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Attribute, error) {
	var attributes []catalog.Attribute
	query := r.applyFilter(r.db.WithContext(ctx).Model(&catalog.Attribute{}), filter)

	if err := query.Preload("Values", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC, value ASC")
	}).Find(&attributes).Error; err != nil {
		return nil, err
	}
	return attributes, nil
}

// Save creates or updates an attribute and its vocabulary
func (r *GormAttributeRepository) Save(ctx context.Context, attribute *catalog.Attribute) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Values").Save(attribute).Error; err != nil {
			return err
		}
		// Vocabulary rows are replaced wholesale so removed values disappear.
		if err := tx.Delete(&catalog.AttributeValue{}, "attribute_id = ?", attribute.ID).Error; err != nil {
			return err
		}
		if len(attribute.Values) == 0 {
			return nil
		}
		return tx.Create(&attribute.Values).Error
	})
}

// Delete deletes an attribute and its vocabulary values
func (r *GormAttributeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&catalog.AttributeValue{}, "attribute_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&catalog.Attribute{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Count counts attributes matching the filter
func (r *GormAttributeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&catalog.Attribute{})
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountAssignments counts product assignments referencing the attribute
func (r *GormAttributeRepository) CountAssignments(ctx context.Context, attributeID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.ProductAttributeValue{}).
		Where("attribute_id = ?", attributeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormAttributeRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderBy := ValidateSortField(filter.OrderBy, AttributeSortFields, "name")
		query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))
	} else {
		query = query.Order("name ASC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormAttributeRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR slug ILIKE ? OR label ILIKE ?", searchPattern, searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "type":
			query = query.Where("type = ?", value)
		case "visible":
			query = query.Where("visible = ?", value)
		case "used_for_variation":
			query = query.Where("used_for_variation = ?", value)
		}
	}

	return query
}

// GormProductAttributeValueRepository implements ProductAttributeValueRepository using GORM
type GormProductAttributeValueRepository struct {
	db *gorm.DB
}

// NewGormProductAttributeValueRepository creates a new GormProductAttributeValueRepository
func NewGormProductAttributeValueRepository(db *gorm.DB) *GormProductAttributeValueRepository {
	return &GormProductAttributeValueRepository{db: db}
}

// FindByProduct finds all attribute values assigned to a product
func (r *GormProductAttributeValueRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]catalog.ProductAttributeValue, error) {
	var values []catalog.ProductAttributeValue
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at ASC").
		Find(&values).Error; err != nil {
		return nil, err
	}
	return values, nil
}

// ReplaceForProduct replaces all attribute values of a product
func (r *GormProductAttributeValueRepository) ReplaceForProduct(ctx context.Context, productID uuid.UUID, values []catalog.ProductAttributeValue) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&catalog.ProductAttributeValue{}, "product_id = ?", productID).Error; err != nil {
			return err
		}
		if len(values) == 0 {
			return nil
		}
		return tx.Create(&values).Error
	})
}

// CountForProduct counts the attribute values assigned to a product
func (r *GormProductAttributeValueRepository) CountForProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.ProductAttributeValue{}).
		Where("product_id = ?", productID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteForProduct deletes all attribute values of a product
func (r *GormProductAttributeValueRepository) DeleteForProduct(ctx context.Context, productID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&catalog.ProductAttributeValue{}, "product_id = ?", productID).Error
}

// Ensure the repositories implement their interfaces
var (
	_ catalog.AttributeRepository             = (*GormAttributeRepository)(nil)
	_ catalog.ProductAttributeValueRepository = (*GormProductAttributeValueRepository)(nil)
)
