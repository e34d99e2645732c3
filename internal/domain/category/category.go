// Package category models the hierarchical classification tree shared by
// inquiries and knowledge articles. The parent graph is an acyclic forest;
// siblings are retrieved in name order.
package category

import (
	"fmt"
	"time"
)

type Category struct {
	id          uint
	name        string
	description string
	parentID    *uint
	createdAt   time.Time
	updatedAt   time.Time
}

func NewCategory(name, description string, parentID *uint) (*Category, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	if parentID != nil && *parentID == 0 {
		return nil, fmt.Errorf("parent ID cannot be zero")
	}

	now := time.Now()

	return &Category{
		name:        name,
		description: description,
		parentID:    parentID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructCategory(
	id uint,
	name string,
	description string,
	parentID *uint,
	createdAt, updatedAt time.Time,
) (*Category, error) {
	if id == 0 {
		return nil, fmt.Errorf("category ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	return &Category{
		id:          id,
		name:        name,
		description: description,
		parentID:    parentID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (c *Category) ID() uint             { return c.id }
func (c *Category) Name() string         { return c.name }
func (c *Category) Description() string  { return c.description }
func (c *Category) ParentID() *uint      { return c.parentID }
func (c *Category) CreatedAt() time.Time { return c.createdAt }
func (c *Category) UpdatedAt() time.Time { return c.updatedAt }

func (c *Category) IsRoot() bool {
	return c.parentID == nil
}

func (c *Category) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("category ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("category ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Category) Rename(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	c.name = name
	c.updatedAt = time.Now()
	return nil
}

func (c *Category) UpdateDescription(description string) {
	c.description = description
	c.updatedAt = time.Now()
}

// SetParent moves the category under a new parent. Self-parenting is rejected
// here; descendant cycles are checked against the stored subtree at the write
// boundary (see the use case).
func (c *Category) SetParent(parentID *uint) error {
	if parentID != nil {
		if *parentID == 0 {
			return fmt.Errorf("parent ID cannot be zero")
		}
		if c.id != 0 && *parentID == c.id {
			return fmt.Errorf("category cannot be its own parent")
		}
	}
	c.parentID = parentID
	c.updatedAt = time.Now()
	return nil
}
