package rating

import "github.com/shopspring/decimal"

// Snapshot is the read of a product's persisted state, plus derived
// counts, that evaluators score against. It is deliberately decoupled
// from the catalog aggregates so scoring stays a pure function of its
// input.
type Snapshot struct {
	Name             string
	SKU              string
	Type             string
	RegularPrice     decimal.Decimal
	StockQuantity    *int
	Weight           decimal.Decimal
	Description      string
	ShortDescription string
	MetaTitle        string
	MetaDescription  string
	FocusKeyword     string
	ImageCount       int
	ImagesWithAlt    int
	AttributeCount   int
	CategoryCount    int
}
