package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pim/backend/internal/domain/shared"
)

// AttributeType represents the kind of values an attribute accepts
type AttributeType string

const (
	AttributeTypeText     AttributeType = "text"
	AttributeTypeSelect   AttributeType = "select"
	AttributeTypeCheckbox AttributeType = "checkbox"
	AttributeTypeNumber   AttributeType = "number"
	AttributeTypeDate     AttributeType = "date"
)

// Attribute is a catalog-level attribute definition. Select-type
// attributes own a controlled vocabulary of AttributeValue rows.
type Attribute struct {
	shared.BaseAggregateRoot
	Name             string        `gorm:"type:varchar(100);not null;uniqueIndex"`
	Slug             string        `gorm:"type:varchar(100);not null;uniqueIndex"`
	Label            string        `gorm:"type:varchar(150)"`
	Type             AttributeType `gorm:"type:varchar(20);not null;default:'text'"`
	Visible          bool          `gorm:"not null;default:true"`
	UsedForVariation bool          `gorm:"not null;default:false"`
	Values           []AttributeValue `gorm:"foreignKey:AttributeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Attribute) TableName() string {
	return "attributes"
}

// AttributeValue is one entry of a select-type attribute's vocabulary
type AttributeValue struct {
	shared.BaseEntity
	AttributeID uuid.UUID `gorm:"type:uuid;not null;index"`
	Value       string    `gorm:"type:varchar(255);not null"`
	SortOrder   int       `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (AttributeValue) TableName() string {
	return "attribute_values"
}

// ProductAttributeValue assigns a literal attribute value to a product.
// It carries its own visibility and variation flags, independent of the
// defaults on the attribute definition.
type ProductAttributeValue struct {
	shared.BaseEntity
	ProductID        uuid.UUID `gorm:"type:uuid;not null;index:idx_pav_product;uniqueIndex:idx_pav_product_attr,priority:1"`
	AttributeID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_pav_product_attr,priority:2"`
	Value            string    `gorm:"type:text;not null"`
	Visible          bool      `gorm:"not null;default:true"`
	UsedForVariation bool      `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (ProductAttributeValue) TableName() string {
	return "product_attribute_values"
}

// NewAttribute creates a new attribute definition
func NewAttribute(name, slug string, attrType AttributeType) (*Attribute, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Attribute name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_NAME", "Attribute name cannot exceed 100 characters")
	}
	slug = normalizeSlug(slug, name)
	if err := validateSlug(slug); err != nil {
		return nil, err
	}
	switch attrType {
	case AttributeTypeText, AttributeTypeSelect, AttributeTypeCheckbox, AttributeTypeNumber, AttributeTypeDate:
	case "":
		attrType = AttributeTypeText
	default:
		return nil, shared.NewDomainError("INVALID_TYPE", "Unknown attribute type")
	}

	return &Attribute{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Slug:              slug,
		Label:             name,
		Type:              attrType,
		Visible:           true,
	}, nil
}

// Update updates the attribute definition
func (a *Attribute) Update(label string, visible, usedForVariation bool) {
	if label != "" {
		a.Label = label
	}
	a.Visible = visible
	a.UsedForVariation = usedForVariation
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
}

// AddValue appends a vocabulary entry. Only select-type attributes carry
// a controlled vocabulary.
func (a *Attribute) AddValue(value string) (*AttributeValue, error) {
	if a.Type != AttributeTypeSelect {
		return nil, shared.NewDomainError("INVALID_TYPE", "Only select attributes accept vocabulary values")
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, shared.NewDomainError("INVALID_VALUE", "Attribute value cannot be empty")
	}
	for _, v := range a.Values {
		if strings.EqualFold(v.Value, value) {
			return nil, shared.ErrAlreadyExists
		}
	}

	av := AttributeValue{
		BaseEntity:  shared.NewBaseEntity(),
		AttributeID: a.ID,
		Value:       value,
		SortOrder:   len(a.Values),
	}
	a.Values = append(a.Values, av)
	a.UpdatedAt = time.Now()
	a.IncrementVersion()

	return &a.Values[len(a.Values)-1], nil
}

// HasValue reports whether the vocabulary contains the value,
// case-insensitively
func (a *Attribute) HasValue(value string) bool {
	for _, v := range a.Values {
		if strings.EqualFold(v.Value, value) {
			return true
		}
	}
	return false
}

// NewProductAttributeValue assigns an attribute value to a product
func NewProductAttributeValue(productID, attributeID uuid.UUID, value string, visible, usedForVariation bool) (*ProductAttributeValue, error) {
	if value == "" {
		return nil, shared.NewDomainError("INVALID_VALUE", "Attribute value cannot be empty")
	}

	return &ProductAttributeValue{
		BaseEntity:       shared.NewBaseEntity(),
		ProductID:        productID,
		AttributeID:      attributeID,
		Value:            value,
		Visible:          visible,
		UsedForVariation: usedForVariation,
	}, nil
}
