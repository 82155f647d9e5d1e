package rating

import (
	"time"

	"github.com/pim/backend/internal/domain/shared"
)

// CriterionName identifies one quality dimension. The set is closed:
// every name maps to exactly one evaluator.
type CriterionName string

const (
	CriterionBasicInfo   CriterionName = "Basic Information"
	CriterionDescription CriterionName = "Description"
	CriterionImages      CriterionName = "Images"
	CriterionSEO         CriterionName = "SEO Elements"
	CriterionAttributes  CriterionName = "Attributes"
	CriterionCategories  CriterionName = "Categories"
)

// AllCriterionNames lists every known criterion
func AllCriterionNames() []CriterionName {
	return []CriterionName{
		CriterionBasicInfo,
		CriterionDescription,
		CriterionImages,
		CriterionSEO,
		CriterionAttributes,
		CriterionCategories,
	}
}

// Criterion is a named, weighted, independently toggleable evaluation rule
type Criterion struct {
	shared.BaseAggregateRoot
	Name     CriterionName `gorm:"type:varchar(50);not null;uniqueIndex"`
	Weight   float64       `gorm:"not null;default:1"`
	IsActive bool          `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Criterion) TableName() string {
	return "rating_criteria"
}

// NewCriterion creates a new active criterion
func NewCriterion(name CriterionName, weight float64) (*Criterion, error) {
	if _, ok := EvaluatorFor(name); !ok {
		return nil, shared.NewDomainError("UNKNOWN_CRITERION", "No evaluator exists for this criterion")
	}
	if weight <= 0 {
		return nil, shared.NewDomainError("INVALID_WEIGHT", "Criterion weight must be positive")
	}

	return &Criterion{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Weight:            weight,
		IsActive:          true,
	}, nil
}

// SetWeight changes the criterion weight
func (c *Criterion) SetWeight(weight float64) error {
	if weight <= 0 {
		return shared.NewDomainError("INVALID_WEIGHT", "Criterion weight must be positive")
	}

	c.Weight = weight
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// Activate enables the criterion for scoring
func (c *Criterion) Activate() {
	c.IsActive = true
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// Deactivate excludes the criterion from scoring
func (c *Criterion) Deactivate() {
	c.IsActive = false
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}
