package catalog

import (
	"github.com/google/uuid"
	"github.com/pim/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeProduct = "Product"

// Event type constants
const (
	EventTypeProductCreated       = "ProductCreated"
	EventTypeProductUpdated       = "ProductUpdated"
	EventTypeProductStatusChanged = "ProductStatusChanged"
	EventTypeProductScored        = "ProductScored"
	EventTypeProductSynced        = "ProductSynced"
	EventTypeProductDeleted       = "ProductDeleted"
)

// ProductCreatedEvent is published when a new product is created
type ProductCreatedEvent struct {
	shared.BaseDomainEvent
	ProductID uuid.UUID   `json:"product_id"`
	Name      string      `json:"name"`
	SKU       string      `json:"sku"`
	Type      ProductType `json:"type"`
}

// NewProductCreatedEvent creates a new ProductCreatedEvent
func NewProductCreatedEvent(product *Product) *ProductCreatedEvent {
	return &ProductCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductCreated, AggregateTypeProduct, product.ID),
		ProductID:       product.ID,
		Name:            product.Name,
		SKU:             product.SKU,
		Type:            product.Type,
	}
}

// ProductUpdatedEvent is published when a product's information changes
type ProductUpdatedEvent struct {
	shared.BaseDomainEvent
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	SKU       string    `json:"sku"`
}

// NewProductUpdatedEvent creates a new ProductUpdatedEvent
func NewProductUpdatedEvent(product *Product) *ProductUpdatedEvent {
	return &ProductUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductUpdated, AggregateTypeProduct, product.ID),
		ProductID:       product.ID,
		Name:            product.Name,
		SKU:             product.SKU,
	}
}

// ProductStatusChangedEvent is published when a product's lifecycle status changes
type ProductStatusChangedEvent struct {
	shared.BaseDomainEvent
	ProductID uuid.UUID     `json:"product_id"`
	OldStatus ProductStatus `json:"old_status"`
	NewStatus ProductStatus `json:"new_status"`
}

// NewProductStatusChangedEvent creates a new ProductStatusChangedEvent
func NewProductStatusChangedEvent(product *Product, oldStatus, newStatus ProductStatus) *ProductStatusChangedEvent {
	return &ProductStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductStatusChanged, AggregateTypeProduct, product.ID),
		ProductID:       product.ID,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}

// ProductScoredEvent is published when a product's quality score is recomputed
type ProductScoredEvent struct {
	shared.BaseDomainEvent
	ProductID uuid.UUID `json:"product_id"`
	Score     float64   `json:"score"`
}

// NewProductScoredEvent creates a new ProductScoredEvent
func NewProductScoredEvent(product *Product, score float64) *ProductScoredEvent {
	return &ProductScoredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductScored, AggregateTypeProduct, product.ID),
		ProductID:       product.ID,
		Score:           score,
	}
}

// ProductSyncedEvent is published after a successful round-trip with the remote store
type ProductSyncedEvent struct {
	shared.BaseDomainEvent
	ProductID uuid.UUID `json:"product_id"`
	RemoteID  int64     `json:"remote_id"`
}

// NewProductSyncedEvent creates a new ProductSyncedEvent
func NewProductSyncedEvent(product *Product, remoteID int64) *ProductSyncedEvent {
	return &ProductSyncedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductSynced, AggregateTypeProduct, product.ID),
		ProductID:       product.ID,
		RemoteID:        remoteID,
	}
}

// ProductDeletedEvent is published when a product is deleted
type ProductDeletedEvent struct {
	shared.BaseDomainEvent
	ProductID uuid.UUID `json:"product_id"`
	SKU       string    `json:"sku"`
}

// NewProductDeletedEvent creates a new ProductDeletedEvent
func NewProductDeletedEvent(product *Product) *ProductDeletedEvent {
	return &ProductDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductDeleted, AggregateTypeProduct, product.ID),
		ProductID:       product.ID,
		SKU:             product.SKU,
	}
}
