package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductSEORepository defines the interface for SEO record persistence
type ProductSEORepository interface {
	// FindByProduct finds the SEO record of a product
	FindByProduct(ctx context.Context, productID uuid.UUID) (*ProductSEO, error)

	// Upsert creates or updates the SEO record of a product
	Upsert(ctx context.Context, seo *ProductSEO) error

	// DeleteForProduct deletes the SEO record of a product
	DeleteForProduct(ctx context.Context, productID uuid.UUID) error
}
