package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/pim/backend/internal/domain/shared"
)

// ProductImage belongs to exactly one product. Position drives gallery
// ordering and the featured flag marks the primary image. At most one
// featured image per product is intended but not enforced atomically;
// two racing updates can both set the flag.
type ProductImage struct {
	shared.BaseEntity
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index"`
	RemoteID   *int64    `gorm:"column:remote_id"`
	URL        string    `gorm:"type:varchar(1000);not null"`
	Position   int       `gorm:"not null;default:0"`
	IsFeatured bool      `gorm:"not null;default:false"`
	AltText    string    `gorm:"type:varchar(255)"`
	Title      string    `gorm:"type:varchar(255)"`
}

// TableName returns the table name for GORM
func (ProductImage) TableName() string {
	return "product_images"
}

// NewProductImage creates a new product image
func NewProductImage(productID uuid.UUID, url string, position int) (*ProductImage, error) {
	if url == "" {
		return nil, shared.NewDomainError("INVALID_URL", "Image URL cannot be empty")
	}
	if position < 0 {
		return nil, shared.NewDomainError("INVALID_POSITION", "Image position cannot be negative")
	}

	return &ProductImage{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  productID,
		URL:        url,
		Position:   position,
	}, nil
}

// SetAltText sets the image alt text and title
func (i *ProductImage) SetAltText(alt, title string) {
	i.AltText = alt
	i.Title = title
	i.UpdatedAt = time.Now()
}

// Feature marks the image as the product's featured image
func (i *ProductImage) Feature() {
	i.IsFeatured = true
	i.UpdatedAt = time.Now()
}

// HasAltText returns true when alt text is set
func (i *ProductImage) HasAltText() bool {
	return i.AltText != ""
}
