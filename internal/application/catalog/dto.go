package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/pim/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	Name             string           `json:"name" binding:"required,min=1,max=255"`
	SKU              string           `json:"sku" binding:"max=100"`
	Type             string           `json:"type" binding:"omitempty,oneof=simple variable grouped external"`
	Status           string           `json:"status" binding:"omitempty,oneof=draft published archived"`
	Description      string           `json:"description"`
	ShortDescription string           `json:"short_description"`
	RegularPrice     *decimal.Decimal `json:"regular_price"`
	SalePrice        *decimal.Decimal `json:"sale_price"`
	ManageStock      bool             `json:"manage_stock"`
	StockQuantity    *int             `json:"stock_quantity"`
	StockStatus      string           `json:"stock_status" binding:"omitempty,oneof=instock outofstock onbackorder"`
	Weight           *decimal.Decimal `json:"weight"`
	Length           *decimal.Decimal `json:"length"`
	Width            *decimal.Decimal `json:"width"`
	Height           *decimal.Decimal `json:"height"`
	Metadata         string           `json:"metadata"`
}

// UpdateProductRequest represents a request to update a product.
// Nil fields are left unchanged.
type UpdateProductRequest struct {
	Name             *string          `json:"name" binding:"omitempty,min=1,max=255"`
	SKU              *string          `json:"sku" binding:"omitempty,max=100"`
	Type             *string          `json:"type" binding:"omitempty,oneof=simple variable grouped external"`
	Status           *string          `json:"status" binding:"omitempty,oneof=draft published archived"`
	Description      *string          `json:"description"`
	ShortDescription *string          `json:"short_description"`
	RegularPrice     *decimal.Decimal `json:"regular_price"`
	SalePrice        *decimal.Decimal `json:"sale_price"`
	ManageStock      *bool            `json:"manage_stock"`
	StockQuantity    *int             `json:"stock_quantity"`
	StockStatus      *string          `json:"stock_status" binding:"omitempty,oneof=instock outofstock onbackorder"`
	Weight           *decimal.Decimal `json:"weight"`
	Length           *decimal.Decimal `json:"length"`
	Width            *decimal.Decimal `json:"width"`
	Height           *decimal.Decimal `json:"height"`
	Metadata         *string          `json:"metadata"`
}

// ProductListFilter represents filter options for product list
type ProductListFilter struct {
	Search      string     `form:"search"`
	Status      string     `form:"status" binding:"omitempty,oneof=draft published archived"`
	Type        string     `form:"type" binding:"omitempty,oneof=simple variable grouped external"`
	StockStatus string     `form:"stock_status" binding:"omitempty,oneof=instock outofstock onbackorder"`
	SKU         string     `form:"sku"`
	CategoryID  *uuid.UUID `form:"category_id"`
	Linked      *bool      `form:"linked"`
	MinScore    *float64   `form:"min_score"`
	MaxScore    *float64   `form:"max_score"`
	Page        int        `form:"page" binding:"omitempty,min=1"`
	PageSize    int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy     string     `form:"order_by"`
	OrderDir    string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID               uuid.UUID       `json:"id"`
	RemoteID         *int64          `json:"remote_id"`
	Name             string          `json:"name"`
	SKU              string          `json:"sku"`
	Type             string          `json:"type"`
	Status           string          `json:"status"`
	Description      string          `json:"description"`
	ShortDescription string          `json:"short_description"`
	RegularPrice     decimal.Decimal `json:"regular_price"`
	SalePrice        decimal.Decimal `json:"sale_price"`
	EffectivePrice   decimal.Decimal `json:"effective_price"`
	ManageStock      bool            `json:"manage_stock"`
	StockQuantity    *int            `json:"stock_quantity"`
	StockStatus      string          `json:"stock_status"`
	Weight           decimal.Decimal `json:"weight"`
	Length           decimal.Decimal `json:"length"`
	Width            decimal.Decimal `json:"width"`
	Height           decimal.Decimal `json:"height"`
	Metadata         string          `json:"metadata"`
	RatingScore      float64         `json:"rating_score"`
	LastSyncedAt     *time.Time      `json:"last_synced_at"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	Version          int             `json:"version"`
}

// ProductListResponse represents a list item for products
type ProductListResponse struct {
	ID           uuid.UUID       `json:"id"`
	RemoteID     *int64          `json:"remote_id"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	Type         string          `json:"type"`
	Status       string          `json:"status"`
	RegularPrice decimal.Decimal `json:"regular_price"`
	SalePrice    decimal.Decimal `json:"sale_price"`
	StockStatus  string          `json:"stock_status"`
	RatingScore  float64         `json:"rating_score"`
	LastSyncedAt *time.Time      `json:"last_synced_at"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ProductDetailResponse aggregates a product with its owned child records
type ProductDetailResponse struct {
	Product    ProductResponse             `json:"product"`
	Categories []CategoryResponse          `json:"categories"`
	Attributes []ProductAttributeResponse  `json:"attributes"`
	Images     []ImageResponse             `json:"images"`
	SEO        *SEOResponse                `json:"seo"`
}

// AssignCategoriesRequest replaces the category links of a product
type AssignCategoriesRequest struct {
	CategoryIDs []uuid.UUID `json:"category_ids" binding:"required"`
}

// AttributeAssignment is one attribute value to assign to a product
type AttributeAssignment struct {
	AttributeID      uuid.UUID `json:"attribute_id" binding:"required"`
	Value            string    `json:"value" binding:"required"`
	Visible          *bool     `json:"visible"`
	UsedForVariation *bool     `json:"used_for_variation"`
}

// AssignAttributesRequest replaces the attribute values of a product
type AssignAttributesRequest struct {
	Attributes []AttributeAssignment `json:"attributes" binding:"required,dive"`
}

// ProductAttributeResponse represents an assigned attribute value
type ProductAttributeResponse struct {
	AttributeID      uuid.UUID `json:"attribute_id"`
	Value            string    `json:"value"`
	Visible          bool      `json:"visible"`
	UsedForVariation bool      `json:"used_for_variation"`
}

// ImageRequest is one gallery image in a replace request
type ImageRequest struct {
	URL        string `json:"url" binding:"required,max=1000"`
	Position   *int   `json:"position"`
	IsFeatured bool   `json:"is_featured"`
	AltText    string `json:"alt_text" binding:"max=255"`
	Title      string `json:"title" binding:"max=255"`
}

// ReplaceImagesRequest replaces the gallery of a product
type ReplaceImagesRequest struct {
	Images []ImageRequest `json:"images" binding:"dive"`
}

// ImageResponse represents a product image in API responses
type ImageResponse struct {
	ID         uuid.UUID `json:"id"`
	RemoteID   *int64    `json:"remote_id"`
	URL        string    `json:"url"`
	Position   int       `json:"position"`
	IsFeatured bool      `json:"is_featured"`
	AltText    string    `json:"alt_text"`
	Title      string    `json:"title"`
}

// UpsertSEORequest creates or replaces the SEO record of a product
type UpsertSEORequest struct {
	MetaTitle       string `json:"meta_title" binding:"max=255"`
	MetaDescription string `json:"meta_description"`
	MetaKeywords    string `json:"meta_keywords"`
	FocusKeyword    string `json:"focus_keyword" binding:"max=255"`
	CanonicalURL    string `json:"canonical_url" binding:"max=1000"`
}

// SEOResponse represents the SEO record of a product
type SEOResponse struct {
	ProductID       uuid.UUID `json:"product_id"`
	MetaTitle       string    `json:"meta_title"`
	MetaDescription string    `json:"meta_description"`
	MetaKeywords    string    `json:"meta_keywords"`
	FocusKeyword    string    `json:"focus_keyword"`
	CanonicalURL    string    `json:"canonical_url"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CreateCategoryRequest represents a request to create a category
type CreateCategoryRequest struct {
	Name        string     `json:"name" binding:"required,min=1,max=150"`
	Slug        string     `json:"slug" binding:"max=150"`
	Description string     `json:"description"`
	ParentID    *uuid.UUID `json:"parent_id"`
	ImageURL    string     `json:"image_url" binding:"max=500"`
}

// UpdateCategoryRequest represents a request to update a category
type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=150"`
	Slug        *string `json:"slug" binding:"omitempty,max=150"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url" binding:"omitempty,max=500"`
}

// MoveCategoryRequest re-parents a category. A nil parent makes it a root.
type MoveCategoryRequest struct {
	ParentID *uuid.UUID `json:"parent_id"`
}

// CategoryListFilter represents filter options for category list
type CategoryListFilter struct {
	Search    string     `form:"search"`
	ParentID  *uuid.UUID `form:"parent_id"`
	RootsOnly bool       `form:"roots_only"`
	Linked    *bool      `form:"linked"`
	Page      int        `form:"page" binding:"omitempty,min=1"`
	PageSize  int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy   string     `form:"order_by"`
	OrderDir  string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID          uuid.UUID  `json:"id"`
	RemoteID    *int64     `json:"remote_id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	ParentID    *uuid.UUID `json:"parent_id"`
	ImageURL    string     `json:"image_url"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CategoryTreeNode is a category with its nested children
type CategoryTreeNode struct {
	CategoryResponse
	Children []CategoryTreeNode `json:"children"`
}

// CreateAttributeRequest represents a request to create an attribute
type CreateAttributeRequest struct {
	Name             string   `json:"name" binding:"required,min=1,max=100"`
	Slug             string   `json:"slug" binding:"max=100"`
	Label            string   `json:"label" binding:"max=150"`
	Type             string   `json:"type" binding:"omitempty,oneof=text select checkbox number date"`
	Visible          *bool    `json:"visible"`
	UsedForVariation bool     `json:"used_for_variation"`
	Values           []string `json:"values"`
}

// UpdateAttributeRequest represents a request to update an attribute
type UpdateAttributeRequest struct {
	Label            *string `json:"label" binding:"omitempty,max=150"`
	Visible          *bool   `json:"visible"`
	UsedForVariation *bool   `json:"used_for_variation"`
}

// AddAttributeValueRequest appends one vocabulary value
type AddAttributeValueRequest struct {
	Value string `json:"value" binding:"required,min=1,max=255"`
}

// AttributeListFilter represents filter options for attribute list
type AttributeListFilter struct {
	Search           string `form:"search"`
	Type             string `form:"type" binding:"omitempty,oneof=text select checkbox number date"`
	Visible          *bool  `form:"visible"`
	UsedForVariation *bool  `form:"used_for_variation"`
	Page             int    `form:"page" binding:"omitempty,min=1"`
	PageSize         int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy          string `form:"order_by"`
	OrderDir         string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// AttributeValueResponse represents one vocabulary entry
type AttributeValueResponse struct {
	ID        uuid.UUID `json:"id"`
	Value     string    `json:"value"`
	SortOrder int       `json:"sort_order"`
}

// AttributeResponse represents an attribute in API responses
type AttributeResponse struct {
	ID               uuid.UUID                `json:"id"`
	Name             string                   `json:"name"`
	Slug             string                   `json:"slug"`
	Label            string                   `json:"label"`
	Type             string                   `json:"type"`
	Visible          bool                     `json:"visible"`
	UsedForVariation bool                     `json:"used_for_variation"`
	Values           []AttributeValueResponse `json:"values"`
	CreatedAt        time.Time                `json:"created_at"`
	UpdatedAt        time.Time                `json:"updated_at"`
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:               p.ID,
		RemoteID:         p.RemoteID,
		Name:             p.Name,
		SKU:              p.SKU,
		Type:             string(p.Type),
		Status:           string(p.Status),
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		RegularPrice:     p.RegularPrice,
		SalePrice:        p.SalePrice,
		EffectivePrice:   p.EffectivePrice(),
		ManageStock:      p.ManageStock,
		StockQuantity:    p.StockQuantity,
		StockStatus:      string(p.StockStatus),
		Weight:           p.Weight,
		Length:           p.Dimensions.Length,
		Width:            p.Dimensions.Width,
		Height:           p.Dimensions.Height,
		Metadata:         p.Metadata,
		RatingScore:      p.RatingScore,
		LastSyncedAt:     p.LastSyncedAt,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
		Version:          p.Version,
	}
}

// ToProductListResponse converts a domain Product to ProductListResponse
func ToProductListResponse(p *catalog.Product) ProductListResponse {
	return ProductListResponse{
		ID:           p.ID,
		RemoteID:     p.RemoteID,
		Name:         p.Name,
		SKU:          p.SKU,
		Type:         string(p.Type),
		Status:       string(p.Status),
		RegularPrice: p.RegularPrice,
		SalePrice:    p.SalePrice,
		StockStatus:  string(p.StockStatus),
		RatingScore:  p.RatingScore,
		LastSyncedAt: p.LastSyncedAt,
		CreatedAt:    p.CreatedAt,
	}
}

// ToProductListResponses converts a slice of domain Products to ProductListResponses
func ToProductListResponses(products []catalog.Product) []ProductListResponse {
	responses := make([]ProductListResponse, len(products))
	for i := range products {
		responses[i] = ToProductListResponse(&products[i])
	}
	return responses
}

// ToCategoryResponse converts a domain Category to CategoryResponse
func ToCategoryResponse(c *catalog.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		RemoteID:    c.RemoteID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		ParentID:    c.ParentID,
		ImageURL:    c.ImageURL,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToCategoryResponses converts a slice of domain Categories to CategoryResponses
func ToCategoryResponses(categories []catalog.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = ToCategoryResponse(&categories[i])
	}
	return responses
}

// ToProductAttributeResponses converts assigned attribute values
func ToProductAttributeResponses(values []catalog.ProductAttributeValue) []ProductAttributeResponse {
	responses := make([]ProductAttributeResponse, len(values))
	for i, v := range values {
		responses[i] = ProductAttributeResponse{
			AttributeID:      v.AttributeID,
			Value:            v.Value,
			Visible:          v.Visible,
			UsedForVariation: v.UsedForVariation,
		}
	}
	return responses
}

// ToImageResponses converts a slice of domain ProductImages to ImageResponses
func ToImageResponses(images []catalog.ProductImage) []ImageResponse {
	responses := make([]ImageResponse, len(images))
	for i, img := range images {
		responses[i] = ImageResponse{
			ID:         img.ID,
			RemoteID:   img.RemoteID,
			URL:        img.URL,
			Position:   img.Position,
			IsFeatured: img.IsFeatured,
			AltText:    img.AltText,
			Title:      img.Title,
		}
	}
	return responses
}

// ToSEOResponse converts a domain ProductSEO to SEOResponse
func ToSEOResponse(s *catalog.ProductSEO) SEOResponse {
	return SEOResponse{
		ProductID:       s.ProductID,
		MetaTitle:       s.MetaTitle,
		MetaDescription: s.MetaDescription,
		MetaKeywords:    s.MetaKeywords,
		FocusKeyword:    s.FocusKeyword,
		CanonicalURL:    s.CanonicalURL,
		UpdatedAt:       s.UpdatedAt,
	}
}

// ToAttributeResponse converts a domain Attribute to AttributeResponse
func ToAttributeResponse(a *catalog.Attribute) AttributeResponse {
	values := make([]AttributeValueResponse, len(a.Values))
	for i, v := range a.Values {
		values[i] = AttributeValueResponse{
			ID:        v.ID,
			Value:     v.Value,
			SortOrder: v.SortOrder,
		}
	}
	return AttributeResponse{
		ID:               a.ID,
		Name:             a.Name,
		Slug:             a.Slug,
		Label:            a.Label,
		Type:             string(a.Type),
		Visible:          a.Visible,
		UsedForVariation: a.UsedForVariation,
		Values:           values,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

// ToAttributeResponses converts a slice of domain Attributes to AttributeResponses
func ToAttributeResponses(attributes []catalog.Attribute) []AttributeResponse {
	responses := make([]AttributeResponse, len(attributes))
	for i := range attributes {
		responses[i] = ToAttributeResponse(&attributes[i])
	}
	return responses
}
