package rating

import (
	"context"

	"github.com/google/uuid"
	"github.com/pim/backend/internal/domain/shared"
)

// CriterionRepository defines the interface for criterion persistence
type CriterionRepository interface {
	// FindByID finds a criterion by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Criterion, error)

	// FindByName finds a criterion by its name
	FindByName(ctx context.Context, name CriterionName) (*Criterion, error)

	// FindActive finds all active criteria
	FindActive(ctx context.Context) ([]Criterion, error)

	// FindAll finds all criteria matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Criterion, error)

	// Save creates or updates a criterion
	Save(ctx context.Context, criterion *Criterion) error
}

// DetailRepository defines the interface for rating detail persistence
type DetailRepository interface {
	// FindByProduct finds all rating details of a product
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]Detail, error)

	// ReplaceForProduct deletes the previous details of a product and
	// inserts the new set
	ReplaceForProduct(ctx context.Context, productID uuid.UUID, details []Detail) error

	// DeleteForProduct deletes all rating details of a product
	DeleteForProduct(ctx context.Context, productID uuid.UUID) error
}
