package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/pim/backend/internal/application/catalog"
)

// AttributeHandler handles attribute-related API endpoints
type AttributeHandler struct {
	BaseHandler
	attributeService *catalogapp.AttributeService
}

// NewAttributeHandler creates a new AttributeHandler
func NewAttributeHandler(attributeService *catalogapp.AttributeService) *AttributeHandler {
	return &AttributeHandler{
		attributeService: attributeService,
	}
}

// RegisterRoutes registers attribute routes on the given group
func (h *AttributeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	attributes := rg.Group("/attributes")
	{
		attributes.POST("", h.Create)
		attributes.GET("", h.List)
		attributes.GET("/:id", h.GetByID)
		attributes.PUT("/:id", h.Update)
		attributes.POST("/:id/values", h.AddValue)
		attributes.DELETE("/:id", h.Delete)
	}
}

// Create creates a new attribute definition, optionally seeding the
// vocabulary of a select attribute
func (h *AttributeHandler) Create(c *gin.Context) {
	var req catalogapp.CreateAttributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	attribute, err := h.attributeService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, attribute)
}

// GetByID retrieves an attribute by its ID
func (h *AttributeHandler) GetByID(c *gin.Context) {
	attributeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequestMessage(c, "Invalid attribute ID format")
		return
	}

	attribute, err := h.attributeService.GetByID(c.Request.Context(), attributeID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, attribute)
}

// List retrieves a paginated list of attributes
func (h *AttributeHandler) List(c *gin.Context) {
	var filter catalogapp.AttributeListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err)
		return
	}

	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.PageSize == 0 {
		filter.PageSize = 20
	}

	attributes, total, err := h.attributeService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, attributes, total, filter.Page, filter.PageSize)
}

// Update updates an attribute definition
func (h *AttributeHandler) Update(c *gin.Context) {
	attributeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequestMessage(c, "Invalid attribute ID format")
		return
	}

	var req catalogapp.UpdateAttributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	attribute, err := h.attributeService.Update(c.Request.Context(), attributeID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, attribute)
}

// AddValue appends a value to a select attribute's vocabulary
func (h *AttributeHandler) AddValue(c *gin.Context) {
	attributeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequestMessage(c, "Invalid attribute ID format")
		return
	}

	var req catalogapp.AddAttributeValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	attribute, err := h.attributeService.AddValue(c.Request.Context(), attributeID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, attribute)
}

// Delete deletes an attribute. Attributes still assigned to products
// cannot be deleted.
func (h *AttributeHandler) Delete(c *gin.Context) {
	attributeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequestMessage(c, "Invalid attribute ID format")
		return
	}

	if err := h.attributeService.Delete(c.Request.Context(), attributeID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
