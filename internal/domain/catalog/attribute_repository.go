package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/pim/backend/internal/domain/shared"
)

// AttributeRepository defines the interface for attribute persistence
type AttributeRepository interface {
	// FindByID finds an attribute with its vocabulary values
	FindByID(ctx context.Context, id uuid.UUID) (*Attribute, error)

	// FindBySlug finds an attribute by its slug
	FindBySlug(ctx context.Context, slug string) (*Attribute, error)

	// FindByName finds an attribute by its name
	FindByName(ctx context.Context, name string) (*Attribute, error)

	// FindAll finds all attributes matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Attribute, error)

	// Save creates or updates an attribute and its vocabulary
	Save(ctx context.Context, attribute *Attribute) error

	// Delete deletes an attribute and its vocabulary values
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts attributes matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountAssignments counts product assignments referencing the attribute
	CountAssignments(ctx context.Context, attributeID uuid.UUID) (int64, error)
}

// ProductAttributeValueRepository manages the attribute values assigned
// to products
type ProductAttributeValueRepository interface {
	// FindByProduct finds all attribute values assigned to a product
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]ProductAttributeValue, error)

	// ReplaceForProduct replaces all attribute values of a product
	ReplaceForProduct(ctx context.Context, productID uuid.UUID, values []ProductAttributeValue) error

	// CountForProduct counts the attribute values assigned to a product
	CountForProduct(ctx context.Context, productID uuid.UUID) (int64, error)

	// DeleteForProduct deletes all attribute values of a product
	DeleteForProduct(ctx context.Context, productID uuid.UUID) error
}
