package catalog

import (
	"strings"
	"time"

	"github.com/pim/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ProductType represents the kind of product
type ProductType string

const (
	ProductTypeSimple   ProductType = "simple"
	ProductTypeVariable ProductType = "variable"
	ProductTypeGrouped  ProductType = "grouped"
	ProductTypeExternal ProductType = "external"
)

// ProductStatus represents the lifecycle status of a product
type ProductStatus string

const (
	ProductStatusDraft     ProductStatus = "draft"
	ProductStatusPublished ProductStatus = "published"
	ProductStatusArchived  ProductStatus = "archived"
)

// StockStatus represents the stock availability of a product
type StockStatus string

const (
	StockStatusInStock     StockStatus = "instock"
	StockStatusOutOfStock  StockStatus = "outofstock"
	StockStatusOnBackorder StockStatus = "onbackorder"
)

// Dimensions holds the physical dimensions of a product
type Dimensions struct {
	Length decimal.Decimal `gorm:"type:decimal(12,4);not null;default:0" json:"length"`
	Width  decimal.Decimal `gorm:"type:decimal(12,4);not null;default:0" json:"width"`
	Height decimal.Decimal `gorm:"type:decimal(12,4);not null;default:0" json:"height"`
}

// IsZero returns true when no dimension is set
func (d Dimensions) IsZero() bool {
	return d.Length.IsZero() && d.Width.IsZero() && d.Height.IsZero()
}

// Product is a catalog entry mirrored against the remote store.
// It carries a dual identity: the local UUID and an optional remote
// identifier assigned by the remote platform. The remote identifier is
// unique across all local products once set.
type Product struct {
	shared.BaseAggregateRoot
	RemoteID         *int64          `gorm:"uniqueIndex;column:remote_id"`
	Name             string          `gorm:"type:varchar(255);not null"`
	SKU              string          `gorm:"type:varchar(100);index;column:sku"`
	Type             ProductType     `gorm:"type:varchar(20);not null;default:'simple'"`
	Status           ProductStatus   `gorm:"type:varchar(20);not null;default:'draft';index"`
	Description      string          `gorm:"type:text"`
	ShortDescription string          `gorm:"type:text"`
	RegularPrice     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	SalePrice        decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	ManageStock      bool            `gorm:"not null;default:false"`
	StockQuantity    *int            `gorm:""`
	StockStatus      StockStatus     `gorm:"type:varchar(20);not null;default:'instock'"`
	Weight           decimal.Decimal `gorm:"type:decimal(12,4);not null;default:0"`
	Dimensions       Dimensions      `gorm:"embedded;embeddedPrefix:dim_"`
	Metadata         string          `gorm:"type:jsonb;not null;default:'{}'"`
	RatingScore      float64         `gorm:"not null;default:0;index"`
	LastSyncedAt     *time.Time      `gorm:""`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product in draft status
func NewProduct(name, sku string, productType ProductType) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if err := validateSKU(sku); err != nil {
		return nil, err
	}
	if productType == "" {
		productType = ProductTypeSimple
	}

	product := &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		SKU:               strings.ToUpper(sku),
		Type:              productType,
		Status:            ProductStatusDraft,
		RegularPrice:      decimal.Zero,
		SalePrice:         decimal.Zero,
		StockStatus:       StockStatusInStock,
		Metadata:          "{}",
	}

	product.AddDomainEvent(NewProductCreatedEvent(product))

	return product, nil
}

// Update updates the product's basic information
func (p *Product) Update(name, description, shortDescription string) error {
	if err := validateProductName(name); err != nil {
		return err
	}

	p.Name = name
	p.Description = description
	p.ShortDescription = shortDescription
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductUpdatedEvent(p))

	return nil
}

// UpdateSKU updates the product's SKU
// Note: This should be used with caution as the remote store references SKUs
func (p *Product) UpdateSKU(sku string) error {
	if err := validateSKU(sku); err != nil {
		return err
	}

	p.SKU = strings.ToUpper(sku)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductUpdatedEvent(p))

	return nil
}

// SetType changes the product type
func (p *Product) SetType(productType ProductType) error {
	switch productType {
	case ProductTypeSimple, ProductTypeVariable, ProductTypeGrouped, ProductTypeExternal:
	default:
		return shared.NewDomainError("INVALID_TYPE", "Unknown product type")
	}

	p.Type = productType
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetPrices sets the regular and sale prices
func (p *Product) SetPrices(regular, sale decimal.Decimal) error {
	if regular.IsNegative() || sale.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if !sale.IsZero() && sale.GreaterThan(regular) {
		return shared.NewDomainError("INVALID_PRICE", "Sale price cannot exceed regular price")
	}

	p.RegularPrice = regular
	p.SalePrice = sale
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductUpdatedEvent(p))

	return nil
}

// SetStock sets the stock management fields.
// A nil quantity means the quantity is not tracked, which is distinct
// from an explicit zero.
func (p *Product) SetStock(manage bool, quantity *int, status StockStatus) error {
	if quantity != nil && *quantity < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Stock quantity cannot be negative")
	}
	switch status {
	case StockStatusInStock, StockStatusOutOfStock, StockStatusOnBackorder:
	default:
		return shared.NewDomainError("INVALID_STOCK", "Unknown stock status")
	}

	p.ManageStock = manage
	p.StockQuantity = quantity
	p.StockStatus = status
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetShipping sets the weight and physical dimensions
func (p *Product) SetShipping(weight decimal.Decimal, dims Dimensions) error {
	if weight.IsNegative() {
		return shared.NewDomainError("INVALID_WEIGHT", "Weight cannot be negative")
	}

	p.Weight = weight
	p.Dimensions = dims
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetMetadata stores free-form key-value metadata as JSON
func (p *Product) SetMetadata(metadata string) error {
	if metadata == "" {
		metadata = "{}"
	}

	p.Metadata = metadata
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetStatus changes the lifecycle status
func (p *Product) SetStatus(status ProductStatus) error {
	switch status {
	case ProductStatusDraft, ProductStatusPublished, ProductStatusArchived:
	default:
		return shared.NewDomainError("INVALID_STATUS", "Unknown product status")
	}
	if p.Status == status {
		return nil
	}

	old := p.Status
	p.Status = status
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductStatusChangedEvent(p, old, status))

	return nil
}

// Publish moves the product into published status
func (p *Product) Publish() error {
	return p.SetStatus(ProductStatusPublished)
}

// Archive moves the product into archived status
func (p *Product) Archive() error {
	return p.SetStatus(ProductStatusArchived)
}

// LinkRemote assigns the remote identifier after a successful export or import
func (p *Product) LinkRemote(remoteID int64) error {
	if remoteID <= 0 {
		return shared.NewDomainError("INVALID_REMOTE_ID", "Remote identifier must be positive")
	}
	if p.RemoteID != nil && *p.RemoteID != remoteID {
		return shared.NewDomainError("REMOTE_ID_CONFLICT", "Product is already linked to a different remote identifier")
	}

	p.RemoteID = &remoteID
	p.UpdatedAt = time.Now()

	return nil
}

// MarkSynced records a completed round-trip with the remote store
func (p *Product) MarkSynced(at time.Time) {
	p.LastSyncedAt = &at
	p.UpdatedAt = time.Now()
}

// UpdateRatingScore updates the cached quality score
func (p *Product) UpdateRatingScore(score float64) {
	p.RatingScore = score
	p.UpdatedAt = time.Now()

	p.AddDomainEvent(NewProductScoredEvent(p, score))
}

// IsPublished returns true if the product is published
func (p *Product) IsPublished() bool {
	return p.Status == ProductStatusPublished
}

// IsLinked returns true if the product has a remote identifier
func (p *Product) IsLinked() bool {
	return p.RemoteID != nil
}

// EffectivePrice returns the sale price when set, the regular price otherwise
func (p *Product) EffectivePrice() decimal.Decimal {
	if !p.SalePrice.IsZero() {
		return p.SalePrice
	}
	return p.RegularPrice
}

// validateProductName validates the product name
func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 255 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 255 characters")
	}
	return nil
}

// validateSKU validates the product SKU
func validateSKU(sku string) error {
	if len(sku) > 100 {
		return shared.NewDomainError("INVALID_SKU", "SKU cannot exceed 100 characters")
	}
	for _, r := range sku {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_SKU", "SKU can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}
