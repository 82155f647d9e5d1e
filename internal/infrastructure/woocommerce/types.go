package woocommerce

import (
	"encoding/json"

	"github.com/pim/backend/internal/domain/catalog"
)

// Yoast SEO keys carried in product meta_data
const (
	MetaKeySEOTitle        = "_yoast_wpseo_title"
	MetaKeySEODescription  = "_yoast_wpseo_metadesc"
	MetaKeySEOFocusKeyword = "_yoast_wpseo_focuskw"
	MetaKeySEOCanonical    = "_yoast_wpseo_canonical"
	MetaKeySEOKeywords     = "_yoast_wpseo_keywordsynonyms"
)

// Product is the WooCommerce REST API product representation
type Product struct {
	ID               int64       `json:"id,omitempty"`
	Name             string      `json:"name"`
	SKU              string      `json:"sku"`
	Type             string      `json:"type,omitempty"`
	Status           string      `json:"status,omitempty"`
	Description      string      `json:"description"`
	ShortDescription string      `json:"short_description"`
	RegularPrice     string      `json:"regular_price"`
	SalePrice        string      `json:"sale_price,omitempty"`
	ManageStock      bool        `json:"manage_stock"`
	StockQuantity    *int        `json:"stock_quantity"`
	StockStatus      string      `json:"stock_status,omitempty"`
	Weight           string      `json:"weight,omitempty"`
	Dimensions       *Dimensions `json:"dimensions,omitempty"`
	Categories       []Category  `json:"categories,omitempty"`
	Images           []Image     `json:"images,omitempty"`
	Attributes       []Attribute `json:"attributes,omitempty"`
	MetaData         []MetaData  `json:"meta_data,omitempty"`
	DateModified     string      `json:"date_modified,omitempty"`
}

// Dimensions is the WooCommerce product dimensions block
type Dimensions struct {
	Length string `json:"length"`
	Width  string `json:"width"`
	Height string `json:"height"`
}

// Category is the WooCommerce product category representation
type Category struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name"`
	Slug        string `json:"slug,omitempty"`
	Parent      int64  `json:"parent,omitempty"`
	Description string `json:"description,omitempty"`
}

// Image is the WooCommerce product image representation
type Image struct {
	ID       int64  `json:"id,omitempty"`
	Src      string `json:"src"`
	Name     string `json:"name,omitempty"`
	Alt      string `json:"alt,omitempty"`
	Position int    `json:"position,omitempty"`
}

// Attribute is the WooCommerce product attribute representation
type Attribute struct {
	ID        int64    `json:"id,omitempty"`
	Name      string   `json:"name"`
	Options   []string `json:"options"`
	Visible   bool     `json:"visible"`
	Variation bool     `json:"variation"`
}

// MetaData is a single WooCommerce meta_data entry. Values are kept raw
// because plugins store strings, numbers and nested objects under the
// same field.
type MetaData struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

// StringValue returns the meta value as a plain string. Non-string
// values yield their compact JSON encoding.
func (m MetaData) StringValue() string {
	var s string
	if err := json.Unmarshal(m.Value, &s); err == nil {
		return s
	}
	return string(m.Value)
}

// NewStringMeta creates a meta_data entry holding a string value
func NewStringMeta(key, value string) MetaData {
	raw, _ := json.Marshal(value)
	return MetaData{Key: key, Value: raw}
}

// ToLocalStatus maps a WooCommerce product status onto the catalog
// status set. Anything that is neither published nor trashed lands in
// draft.
func ToLocalStatus(remote string) catalog.ProductStatus {
	switch remote {
	case "publish":
		return catalog.ProductStatusPublished
	case "trash":
		return catalog.ProductStatusArchived
	default:
		return catalog.ProductStatusDraft
	}
}

// ToRemoteStatus maps a catalog product status onto the WooCommerce
// status set
func ToRemoteStatus(local catalog.ProductStatus) string {
	switch local {
	case catalog.ProductStatusPublished:
		return "publish"
	case catalog.ProductStatusArchived:
		return "trash"
	default:
		return "draft"
	}
}

// SEOFromMeta extracts the Yoast SEO fields from a meta_data list
func SEOFromMeta(meta []MetaData) (title, description, keywords, focusKeyword, canonical string) {
	for _, m := range meta {
		switch m.Key {
		case MetaKeySEOTitle:
			title = m.StringValue()
		case MetaKeySEODescription:
			description = m.StringValue()
		case MetaKeySEOKeywords:
			keywords = m.StringValue()
		case MetaKeySEOFocusKeyword:
			focusKeyword = m.StringValue()
		case MetaKeySEOCanonical:
			canonical = m.StringValue()
		}
	}
	return
}

// SEOToMeta builds the Yoast meta_data entries for an outgoing product.
// Empty fields are omitted so the remote plugin keeps its own values.
func SEOToMeta(seo *catalog.ProductSEO) []MetaData {
	if seo == nil {
		return nil
	}
	var meta []MetaData
	if seo.MetaTitle != "" {
		meta = append(meta, NewStringMeta(MetaKeySEOTitle, seo.MetaTitle))
	}
	if seo.MetaDescription != "" {
		meta = append(meta, NewStringMeta(MetaKeySEODescription, seo.MetaDescription))
	}
	if seo.MetaKeywords != "" {
		meta = append(meta, NewStringMeta(MetaKeySEOKeywords, seo.MetaKeywords))
	}
	if seo.FocusKeyword != "" {
		meta = append(meta, NewStringMeta(MetaKeySEOFocusKeyword, seo.FocusKeyword))
	}
	if seo.CanonicalURL != "" {
		meta = append(meta, NewStringMeta(MetaKeySEOCanonical, seo.CanonicalURL))
	}
	return meta
}
