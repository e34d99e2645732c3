package category

import "context"

// Node is a category with its children attached, name-ordered.
type Node struct {
	Category *Category
	Children []*Node
}

// ReferenceCount pairs a category with the number of inquiries and articles
// referencing it directly (not rolled up over descendants).
type ReferenceCount struct {
	CategoryID uint
	Name       string
	Inquiries  int64
	Articles   int64
}

func (rc ReferenceCount) Total() int64 {
	return rc.Inquiries + rc.Articles
}

type Repository interface {
	Save(ctx context.Context, cat *Category) error
	Update(ctx context.Context, cat *Category) error
	FindByID(ctx context.Context, id uint) (*Category, error)
	// ListChildren returns the direct children of parentID (roots when nil),
	// ordered by name.
	ListChildren(ctx context.Context, parentID *uint) ([]*Category, error)
	// ListAll returns every category ordered by name.
	ListAll(ctx context.Context) ([]*Category, error)
	// SubtreeIDs returns id plus the ids of all its descendants.
	SubtreeIDs(ctx context.Context, id uint) ([]uint, error)
	// CountReferences counts inquiries and articles referencing the category
	// itself (direct references only).
	CountReferences(ctx context.Context, id uint) (*ReferenceCount, error)
	// TopByReferences returns categories ordered by descending direct
	// reference count.
	TopByReferences(ctx context.Context, limit int) ([]ReferenceCount, error)
	// Delete removes the category and its entire subtree in one transaction;
	// inquiries and articles referencing any removed category get their
	// category reference cleared, not deleted.
	Delete(ctx context.Context, id uint) error
}
