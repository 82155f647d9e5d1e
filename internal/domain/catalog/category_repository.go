package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/pim/backend/internal/domain/shared"
)

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	// FindByID finds a category by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)

	// FindByRemoteID finds a category by the identifier assigned by the remote store
	FindByRemoteID(ctx context.Context, remoteID int64) (*Category, error)

	// FindBySlug finds a category by its slug
	FindBySlug(ctx context.Context, slug string) (*Category, error)

	// FindAll finds all categories matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Category, error)

	// FindChildren finds all direct children of a category
	FindChildren(ctx context.Context, parentID uuid.UUID) ([]Category, error)

	// FindRootCategories finds all categories without a parent
	FindRootCategories(ctx context.Context) ([]Category, error)

	// FindByProduct finds all categories linked to a product
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]Category, error)

	// ReplaceProductLinks replaces all category links of a product
	ReplaceProductLinks(ctx context.Context, productID uuid.UUID, categoryIDs []uuid.UUID) error

	// CountProductLinks counts the category links of a product
	CountProductLinks(ctx context.Context, productID uuid.UUID) (int64, error)

	// Save creates or updates a category
	Save(ctx context.Context, category *Category) error

	// Delete deletes a category
	Delete(ctx context.Context, id uuid.UUID) error

	// HasChildren checks if a category has any child categories
	HasChildren(ctx context.Context, categoryID uuid.UUID) (bool, error)

	// HasProducts checks if any product is linked to the category
	HasProducts(ctx context.Context, categoryID uuid.UUID) (bool, error)

	// Count counts categories matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// ExistsBySlug checks if a category with the given slug exists
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}
