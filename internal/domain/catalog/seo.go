package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pim/backend/internal/domain/shared"
)

// ProductSEO is the optional one-to-one SEO record of a product
type ProductSEO struct {
	shared.BaseEntity
	ProductID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	MetaTitle       string    `gorm:"type:varchar(255)"`
	MetaDescription string    `gorm:"type:text"`
	MetaKeywords    string    `gorm:"type:text"`
	FocusKeyword    string    `gorm:"type:varchar(255)"`
	CanonicalURL    string    `gorm:"type:varchar(1000)"`
}

// TableName returns the table name for GORM
func (ProductSEO) TableName() string {
	return "product_seo"
}

// NewProductSEO creates an SEO record for a product
func NewProductSEO(productID uuid.UUID) *ProductSEO {
	return &ProductSEO{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  productID,
	}
}

// Update replaces the SEO fields
func (s *ProductSEO) Update(metaTitle, metaDescription, metaKeywords, focusKeyword, canonicalURL string) {
	s.MetaTitle = metaTitle
	s.MetaDescription = metaDescription
	s.MetaKeywords = metaKeywords
	s.FocusKeyword = focusKeyword
	s.CanonicalURL = canonicalURL
	s.UpdatedAt = time.Now()
}

// IsEmpty returns true when no SEO field is set
func (s *ProductSEO) IsEmpty() bool {
	return s.MetaTitle == "" && s.MetaDescription == "" && s.MetaKeywords == "" &&
		s.FocusKeyword == "" && s.CanonicalURL == ""
}

// KeywordInTitle reports whether the focus keyword appears in the meta
// title, case-insensitively
func (s *ProductSEO) KeywordInTitle() bool {
	if s.FocusKeyword == "" || s.MetaTitle == "" {
		return false
	}
	return strings.Contains(strings.ToLower(s.MetaTitle), strings.ToLower(s.FocusKeyword))
}

// KeywordInDescription reports whether the focus keyword appears in the
// meta description, case-insensitively
func (s *ProductSEO) KeywordInDescription() bool {
	if s.FocusKeyword == "" || s.MetaDescription == "" {
		return false
	}
	return strings.Contains(strings.ToLower(s.MetaDescription), strings.ToLower(s.FocusKeyword))
}
