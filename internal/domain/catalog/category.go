package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pim/backend/internal/domain/shared"
)

// Category represents a product category. Categories form a forest:
// each category has at most one parent and cycles are rejected.
type Category struct {
	shared.BaseAggregateRoot
	RemoteID    *int64     `gorm:"uniqueIndex;column:remote_id"`
	Name        string     `gorm:"type:varchar(150);not null"`
	Slug        string     `gorm:"type:varchar(150);not null;uniqueIndex"`
	Description string     `gorm:"type:text"`
	ParentID    *uuid.UUID `gorm:"type:uuid;index"`
	ImageURL    string     `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a new root category
func NewCategory(name, slug string) (*Category, error) {
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}
	slug = normalizeSlug(slug, name)
	if err := validateSlug(slug); err != nil {
		return nil, err
	}

	category := &Category{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Slug:              slug,
	}

	category.AddDomainEvent(NewCategoryCreatedEvent(category))

	return category, nil
}

// Update updates the category's basic information
func (c *Category) Update(name, slug, description string) error {
	if err := validateCategoryName(name); err != nil {
		return err
	}
	slug = normalizeSlug(slug, name)
	if err := validateSlug(slug); err != nil {
		return err
	}

	c.Name = name
	c.Slug = slug
	c.Description = description
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCategoryUpdatedEvent(c))

	return nil
}

// SetParent places the category under a parent. Passing nil makes it a
// root category. Self-parenting is rejected here; deeper cycle checks
// walk the ancestor chain and live in the application service.
func (c *Category) SetParent(parentID *uuid.UUID) error {
	if parentID != nil && *parentID == c.ID {
		return shared.NewDomainError("INVALID_PARENT", "Category cannot be its own parent")
	}

	c.ParentID = parentID
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetImage sets the category image reference
func (c *Category) SetImage(url string) {
	c.ImageURL = url
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// LinkRemote assigns the remote identifier for this category
func (c *Category) LinkRemote(remoteID int64) error {
	if remoteID <= 0 {
		return shared.NewDomainError("INVALID_REMOTE_ID", "Remote identifier must be positive")
	}
	if c.RemoteID != nil && *c.RemoteID != remoteID {
		return shared.NewDomainError("REMOTE_ID_CONFLICT", "Category is already linked to a different remote identifier")
	}

	c.RemoteID = &remoteID
	c.UpdatedAt = time.Now()

	return nil
}

// IsRoot returns true if this is a root category
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}

// normalizeSlug falls back to a slug derived from the name when none is given
func normalizeSlug(slug, name string) string {
	if slug == "" {
		slug = name
	}
	slug = strings.ToLower(strings.TrimSpace(slug))
	var b strings.Builder
	lastDash := false
	for _, r := range slug {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastDash = false
		case !lastDash && b.Len() > 0:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// validateCategoryName validates the category name
func validateCategoryName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	if len(name) > 150 {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot exceed 150 characters")
	}
	return nil
}

// validateSlug validates a URL slug
func validateSlug(slug string) error {
	if slug == "" {
		return shared.NewDomainError("INVALID_SLUG", "Slug cannot be empty")
	}
	if len(slug) > 150 {
		return shared.NewDomainError("INVALID_SLUG", "Slug cannot exceed 150 characters")
	}
	return nil
}
