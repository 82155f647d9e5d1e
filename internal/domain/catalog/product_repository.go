package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/pim/backend/internal/domain/shared"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by its local ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindByRemoteID finds a product by the identifier assigned by the remote store
	FindByRemoteID(ctx context.Context, remoteID int64) (*Product, error)

	// FindBySKU finds a product by its SKU
	FindBySKU(ctx context.Context, sku string) (*Product, error)

	// FindAll finds all products matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)

	// FindByIDs finds products by a list of local IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Product, error)

	// FindPublished finds all products in published status
	FindPublished(ctx context.Context) ([]Product, error)

	// FindLowScoring finds non-archived products ordered by rating score ascending
	FindLowScoring(ctx context.Context, limit int) ([]Product, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// Delete deletes a product and all of its owned child rows
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts products matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// UpdateRatingScore updates the cached quality score of a product
	UpdateRatingScore(ctx context.Context, id uuid.UUID, score float64) error
}
