package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductImageRepository defines the interface for product image persistence
type ProductImageRepository interface {
	// FindByProduct finds the images of a product, featured first, then by position
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]ProductImage, error)

	// ReplaceForProduct replaces all images of a product
	ReplaceForProduct(ctx context.Context, productID uuid.UUID, images []ProductImage) error

	// CountForProduct counts the images of a product
	CountForProduct(ctx context.Context, productID uuid.UUID) (int64, error)

	// CountWithAltText counts the images of a product that carry alt text
	CountWithAltText(ctx context.Context, productID uuid.UUID) (int64, error)

	// Save creates or updates a single image
	Save(ctx context.Context, image *ProductImage) error

	// Delete deletes a single image
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteForProduct deletes all images of a product
	DeleteForProduct(ctx context.Context, productID uuid.UUID) error
}
