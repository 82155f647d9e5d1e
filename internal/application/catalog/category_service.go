package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pim/backend/internal/domain/catalog"
	"github.com/pim/backend/internal/domain/shared"
)

// CategoryService handles category-related business operations
type CategoryService struct {
	categoryRepo   catalog.CategoryRepository
	eventPublisher shared.EventPublisher
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo catalog.CategoryRepository, eventPublisher shared.EventPublisher) *CategoryService {
	return &CategoryService{
		categoryRepo:   categoryRepo,
		eventPublisher: eventPublisher,
	}
}

// Create creates a new category
func (s *CategoryService) Create(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	category, err := catalog.NewCategory(req.Name, req.Slug)
	if err != nil {
		return nil, err
	}

	exists, err := s.categoryRepo.ExistsBySlug(ctx, category.Slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Category with this slug already exists")
	}

	if req.Description != "" {
		if err := category.Update(req.Name, category.Slug, req.Description); err != nil {
			return nil, err
		}
	}

	if req.ParentID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *req.ParentID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_PARENT", "Parent category not found")
			}
			return nil, err
		}
		if err := category.SetParent(req.ParentID); err != nil {
			return nil, err
		}
	}

	if req.ImageURL != "" {
		category.SetImage(req.ImageURL)
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, category)

	response := ToCategoryResponse(category)
	return &response, nil
}

// GetByID retrieves a category by ID
func (s *CategoryService) GetByID(ctx context.Context, categoryID uuid.UUID) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	response := ToCategoryResponse(category)
	return &response, nil
}

// GetBySlug retrieves a category by slug
func (s *CategoryService) GetBySlug(ctx context.Context, slug string) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	response := ToCategoryResponse(category)
	return &response, nil
}

// List retrieves categories matching the filter
func (s *CategoryService) List(ctx context.Context, filter CategoryListFilter) ([]CategoryResponse, int64, error) {
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

	if filter.RootsOnly {
		domainFilter.Filters["parent_id"] = nil
	} else if filter.ParentID != nil {
		domainFilter.Filters["parent_id"] = *filter.ParentID
	}
	if filter.Linked != nil {
		domainFilter.Filters["linked"] = *filter.Linked
	}

	categories, err := s.categoryRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.categoryRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToCategoryResponses(categories), total, nil
}

// Tree retrieves the full category forest with nested children
func (s *CategoryService) Tree(ctx context.Context) ([]CategoryTreeNode, error) {
	roots, err := s.categoryRepo.FindRootCategories(ctx)
	if err != nil {
		return nil, err
	}

	nodes := make([]CategoryTreeNode, 0, len(roots))
	for i := range roots {
		node, err := s.buildTreeNode(ctx, &roots[i])
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}

	return nodes, nil
}

func (s *CategoryService) buildTreeNode(ctx context.Context, category *catalog.Category) (CategoryTreeNode, error) {
	node := CategoryTreeNode{
		CategoryResponse: ToCategoryResponse(category),
		Children:         []CategoryTreeNode{},
	}

	children, err := s.categoryRepo.FindChildren(ctx, category.ID)
	if err != nil {
		return node, err
	}

	for i := range children {
		child, err := s.buildTreeNode(ctx, &children[i])
		if err != nil {
			return node, err
		}
		node.Children = append(node.Children, child)
	}

	return node, nil
}

// Update updates a category's basic information
func (s *CategoryService) Update(ctx context.Context, categoryID uuid.UUID, req UpdateCategoryRequest) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil || req.Slug != nil || req.Description != nil {
		name := category.Name
		slug := category.Slug
		description := category.Description
		if req.Name != nil {
			name = *req.Name
		}
		if req.Slug != nil {
			slug = *req.Slug
		}
		if req.Description != nil {
			description = *req.Description
		}

		if slug != category.Slug {
			existing, err := s.categoryRepo.FindBySlug(ctx, slug)
			if err == nil && existing.ID != category.ID {
				return nil, shared.NewDomainError("ALREADY_EXISTS", "Category with this slug already exists")
			}
			if err != nil && !errors.Is(err, shared.ErrNotFound) {
				return nil, err
			}
		}

		if err := category.Update(name, slug, description); err != nil {
			return nil, err
		}
	}

	if req.ImageURL != nil {
		category.SetImage(*req.ImageURL)
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, category)

	response := ToCategoryResponse(category)
	return &response, nil
}

// Move re-parents a category. A nil parent makes it a root category.
// Moves that would place a category under one of its own descendants
// are rejected.
func (s *CategoryService) Move(ctx context.Context, categoryID uuid.UUID, req MoveCategoryRequest) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if req.ParentID != nil {
		if err := s.checkCycle(ctx, categoryID, *req.ParentID); err != nil {
			return nil, err
		}
	}

	if err := category.SetParent(req.ParentID); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, category)

	response := ToCategoryResponse(category)
	return &response, nil
}

// checkCycle walks the ancestor chain of the proposed parent and rejects
// the move when the category itself appears in it
func (s *CategoryService) checkCycle(ctx context.Context, categoryID, parentID uuid.UUID) error {
	current := parentID
	for {
		if current == categoryID {
			return shared.NewDomainError("INVALID_PARENT", "Move would create a category cycle")
		}

		ancestor, err := s.categoryRepo.FindByID(ctx, current)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.NewDomainError("INVALID_PARENT", "Parent category not found")
			}
			return err
		}
		if ancestor.ParentID == nil {
			return nil
		}
		current = *ancestor.ParentID
	}
}

// Delete deletes a category. Categories with children or linked
// products cannot be deleted.
func (s *CategoryService) Delete(ctx context.Context, categoryID uuid.UUID) error {
	if _, err := s.categoryRepo.FindByID(ctx, categoryID); err != nil {
		return err
	}

	hasChildren, err := s.categoryRepo.HasChildren(ctx, categoryID)
	if err != nil {
		return err
	}
	if hasChildren {
		return shared.NewDomainError("HAS_CHILDREN", "Category has child categories")
	}

	hasProducts, err := s.categoryRepo.HasProducts(ctx, categoryID)
	if err != nil {
		return err
	}
	if hasProducts {
		return shared.NewDomainError("HAS_PRODUCTS", "Category has linked products")
	}

	return s.categoryRepo.Delete(ctx, categoryID)
}

// publishDomainEvents publishes all pending domain events of the category
func (s *CategoryService) publishDomainEvents(ctx context.Context, category *catalog.Category) {
	if s.eventPublisher == nil {
		return
	}
	events := category.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
	category.ClearDomainEvents()
}
