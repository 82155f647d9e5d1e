package rating

import (
	"time"

	"github.com/google/uuid"
	"github.com/pim/backend/internal/domain/rating"
)

// CriterionResponse represents a scoring criterion in API responses
type CriterionResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Weight    float64   `json:"weight"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateCriterionRequest adjusts the weight or active flag of a criterion
type UpdateCriterionRequest struct {
	Weight   *float64 `json:"weight" binding:"omitempty,gt=0"`
	IsActive *bool    `json:"is_active"`
}

// CriteriaListFilter represents filter options for criteria list
type CriteriaListFilter struct {
	Search   string `form:"search"`
	IsActive *bool  `form:"is_active"`
}

// DetailResponse is one criterion's evaluation result for a product
type DetailResponse struct {
	CriterionID   uuid.UUID `json:"criterion_id"`
	CriterionName string    `json:"criterion_name"`
	Weight        float64   `json:"weight"`
	Score         float64   `json:"score"`
	ScoreColor    string    `json:"score_color"`
	Suggestions   []string  `json:"suggestions"`
	EvaluatedAt   time.Time `json:"evaluated_at"`
}

// BreakdownResponse is the full per-criterion score breakdown of a product
type BreakdownResponse struct {
	ProductID    uuid.UUID        `json:"product_id"`
	OverallScore float64          `json:"overall_score"`
	ScoreColor   string           `json:"score_color"`
	Details      []DetailResponse `json:"details"`
}

// RescoreResponse is the result of a single product rescore
type RescoreResponse struct {
	ProductID  uuid.UUID `json:"product_id"`
	Score      float64   `json:"score"`
	ScoreColor string    `json:"score_color"`
}

// BatchRescoreRequest requests a rescore of the listed products
type BatchRescoreRequest struct {
	ProductIDs []uuid.UUID `json:"product_ids" binding:"required,min=1"`
}

// BatchRescoreFailure reports one product that could not be rescored
type BatchRescoreFailure struct {
	ProductID uuid.UUID `json:"product_id"`
	Error     string    `json:"error"`
}

// BatchRescoreResponse summarizes a batch rescore run
type BatchRescoreResponse struct {
	Total     int                   `json:"total"`
	Succeeded int                   `json:"succeeded"`
	Failed    int                   `json:"failed"`
	Failures  []BatchRescoreFailure `json:"failures"`
}

// SuggestionGroup lists the improvement suggestions of one criterion
type SuggestionGroup struct {
	CriterionName string   `json:"criterion_name"`
	Score         float64  `json:"score"`
	Suggestions   []string `json:"suggestions"`
}

// SuggestionsResponse lists improvement suggestions for a product,
// weakest criterion first
type SuggestionsResponse struct {
	ProductID uuid.UUID         `json:"product_id"`
	Groups    []SuggestionGroup `json:"groups"`
}

// ToCriterionResponse converts a domain Criterion to CriterionResponse
func ToCriterionResponse(c *rating.Criterion) CriterionResponse {
	return CriterionResponse{
		ID:        c.ID,
		Name:      string(c.Name),
		Weight:    c.Weight,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToCriterionResponses converts a slice of domain Criteria to CriterionResponses
func ToCriterionResponses(criteria []rating.Criterion) []CriterionResponse {
	responses := make([]CriterionResponse, len(criteria))
	for i := range criteria {
		responses[i] = ToCriterionResponse(&criteria[i])
	}
	return responses
}
