package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pim/backend/internal/domain/catalog"
	"github.com/pim/backend/internal/domain/shared"
)

// AttributeService handles attribute-related business operations
type AttributeService struct {
	attributeRepo catalog.AttributeRepository
}

// NewAttributeService creates a new AttributeService
func NewAttributeService(attributeRepo catalog.AttributeRepository) *AttributeService {
	return &AttributeService{attributeRepo: attributeRepo}
}

// Create creates a new attribute definition, optionally with an initial
// vocabulary for select attributes
func (s *AttributeService) Create(ctx context.Context, req CreateAttributeRequest) (*AttributeResponse, error) {
	_, err := s.attributeRepo.FindByName(ctx, req.Name)
	if err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Attribute with this name already exists")
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	attribute, err := catalog.NewAttribute(req.Name, req.Slug, catalog.AttributeType(req.Type))
	if err != nil {
		return nil, err
	}

	_, err = s.attributeRepo.FindBySlug(ctx, attribute.Slug)
	if err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Attribute with this slug already exists")
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	visible := true
	if req.Visible != nil {
		visible = *req.Visible
	}
	attribute.Update(req.Label, visible, req.UsedForVariation)

	for _, value := range req.Values {
		if _, err := attribute.AddValue(value); err != nil {
			return nil, err
		}
	}

	if err := s.attributeRepo.Save(ctx, attribute); err != nil {
		return nil, err
	}

	response := ToAttributeResponse(attribute)
	return &response, nil
}

// GetByID retrieves an attribute with its vocabulary
func (s *AttributeService) GetByID(ctx context.Context, attributeID uuid.UUID) (*AttributeResponse, error) {
	attribute, err := s.attributeRepo.FindByID(ctx, attributeID)
	if err != nil {
		return nil, err
	}

	response := ToAttributeResponse(attribute)
	return &response, nil
}

// List retrieves attributes matching the filter
func (s *AttributeService) List(ctx context.Context, filter AttributeListFilter) ([]AttributeResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "name"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "asc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}

	if filter.Type != "" {
		domainFilter.Filters["type"] = filter.Type
	}
	if filter.Visible != nil {
		domainFilter.Filters["visible"] = *filter.Visible
	}
	if filter.UsedForVariation != nil {
		domainFilter.Filters["used_for_variation"] = *filter.UsedForVariation
	}

	attributes, err := s.attributeRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.attributeRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToAttributeResponses(attributes), total, nil
}

// Update updates an attribute definition
func (s *AttributeService) Update(ctx context.Context, attributeID uuid.UUID, req UpdateAttributeRequest) (*AttributeResponse, error) {
	attribute, err := s.attributeRepo.FindByID(ctx, attributeID)
	if err != nil {
		return nil, err
	}

	label := attribute.Label
	visible := attribute.Visible
	usedForVariation := attribute.UsedForVariation
	if req.Label != nil {
		label = *req.Label
	}
	if req.Visible != nil {
		visible = *req.Visible
	}
	if req.UsedForVariation != nil {
		usedForVariation = *req.UsedForVariation
	}
	attribute.Update(label, visible, usedForVariation)

	if err := s.attributeRepo.Save(ctx, attribute); err != nil {
		return nil, err
	}

	response := ToAttributeResponse(attribute)
	return &response, nil
}

// AddValue appends a vocabulary value to a select attribute
func (s *AttributeService) AddValue(ctx context.Context, attributeID uuid.UUID, req AddAttributeValueRequest) (*AttributeResponse, error) {
	attribute, err := s.attributeRepo.FindByID(ctx, attributeID)
	if err != nil {
		return nil, err
	}

	if _, err := attribute.AddValue(req.Value); err != nil {
		return nil, err
	}

	if err := s.attributeRepo.Save(ctx, attribute); err != nil {
		return nil, err
	}

	response := ToAttributeResponse(attribute)
	return &response, nil
}

// Delete deletes an attribute and its vocabulary. Attributes still
// assigned to products cannot be deleted.
func (s *AttributeService) Delete(ctx context.Context, attributeID uuid.UUID) error {
	if _, err := s.attributeRepo.FindByID(ctx, attributeID); err != nil {
		return err
	}

	assignments, err := s.attributeRepo.CountAssignments(ctx, attributeID)
	if err != nil {
		return err
	}
	if assignments > 0 {
		return shared.NewDomainError("ATTRIBUTE_IN_USE", "Attribute is assigned to products")
	}

	return s.attributeRepo.Delete(ctx, attributeID)
}
