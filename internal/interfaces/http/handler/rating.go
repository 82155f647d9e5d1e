package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	ratingapp "github.com/pim/backend/internal/application/rating"
)

// RatingHandler handles quality scoring API endpoints
type RatingHandler struct {
	BaseHandler
	ratingService *ratingapp.RatingService
}

// NewRatingHandler creates a new RatingHandler
func NewRatingHandler(ratingService *ratingapp.RatingService) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
	}
}

// RegisterRoutes registers scoring routes on the given group. The
// per-product routes live under /products alongside the catalog ones.
func (h *RatingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	{
		products.GET("/:id/rating", h.GetBreakdown)
		products.GET("/:id/rating/suggestions", h.GetSuggestions)
		products.POST("/:id/rating/rescore", h.Rescore)
	}

	rating := rg.Group("/rating")
	{
		rating.GET("/criteria", h.ListCriteria)
		rating.PUT("/criteria/:id", h.UpdateCriterion)
		rating.POST("/rescore", h.RescoreBatch)
		rating.POST("/rescore-all", h.RescoreAll)
	}
}

// GetBreakdown retrieves the per-criterion score breakdown of a product
func (h *RatingHandler) GetBreakdown(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequestMessage(c, "Invalid product ID format")
		return
	}

	breakdown, err := h.ratingService.GetBreakdown(c.Request.Context(), productID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, breakdown)
}

// GetSuggestions retrieves improvement suggestions for a product,
// grouped by criterion and ordered worst first
func (h *RatingHandler) GetSuggestions(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequestMessage(c, "Invalid product ID format")
		return
	}

	suggestions, err := h.ratingService.GetSuggestions(c.Request.Context(), productID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, suggestions)
}

// Rescore recomputes a single product's quality score
func (h *RatingHandler) Rescore(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequestMessage(c, "Invalid product ID format")
		return
	}

	result, err := h.ratingService.Rescore(c.Request.Context(), productID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// RescoreBatch recomputes scores for a list of products, reporting
// per-product failures
func (h *RatingHandler) RescoreBatch(c *gin.Context) {
	var req ratingapp.BatchRescoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	result, err := h.ratingService.RescoreBatch(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// RescoreAll recomputes scores for the whole catalog
func (h *RatingHandler) RescoreAll(c *gin.Context) {
	result, err := h.ratingService.RescoreAll(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// ListCriteria retrieves the scoring criteria configuration
func (h *RatingHandler) ListCriteria(c *gin.Context) {
	var filter ratingapp.CriteriaListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err)
		return
	}

	criteria, err := h.ratingService.ListCriteria(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, criteria)
}

// UpdateCriterion updates a criterion's weight or active flag
func (h *RatingHandler) UpdateCriterion(c *gin.Context) {
	criterionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequestMessage(c, "Invalid criterion ID format")
		return
	}

	var req ratingapp.UpdateCriterionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	criterion, err := h.ratingService.UpdateCriterion(c.Request.Context(), criterionID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, criterion)
}
