package rating

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pim/backend/internal/domain/shared"
)

// SuggestionSeparator joins the suggestion list into the persisted column
const SuggestionSeparator = "; "

// Detail is the persisted result of one criterion evaluation for one
// product. The full set of rows for a product is replaced on every
// recalculation, never patched in place.
type Detail struct {
	shared.BaseEntity
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_rating_product_criterion,priority:1"`
	CriterionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_rating_product_criterion,priority:2"`
	Score       float64   `gorm:"not null"`
	Suggestions string    `gorm:"type:text"`
	EvaluatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (Detail) TableName() string {
	return "product_ratings"
}

// NewDetail creates a rating detail row for one evaluation
func NewDetail(productID, criterionID uuid.UUID, score float64, suggestions []string) *Detail {
	return &Detail{
		BaseEntity:  shared.NewBaseEntity(),
		ProductID:   productID,
		CriterionID: criterionID,
		Score:       score,
		Suggestions: strings.Join(suggestions, SuggestionSeparator),
		EvaluatedAt: time.Now(),
	}
}

// SuggestionItems splits the persisted suggestion column back into a list
func (d *Detail) SuggestionItems() []string {
	if d.Suggestions == "" {
		return nil
	}
	parts := strings.Split(d.Suggestions, ";")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	return items
}

// ScoreColor maps a score to its traffic-light color
func ScoreColor(score float64) string {
	switch {
	case score < 50:
		return "red"
	case score < 80:
		return "yellow"
	default:
		return "green"
	}
}
