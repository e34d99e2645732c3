package knowledge

import (
	"context"

	"aster/internal/shared/query"
)

// Filter narrows article listings. Absent fields impose no constraint;
// Keyword OR-matches title, content, and tag names case-insensitively.
type Filter struct {
	Keyword    string
	CategoryID *uint
	AuthorID   *uint
	IsPublic   *bool
	query.BaseFilter
}

type Repository interface {
	Save(ctx context.Context, article *Article) error
	Update(ctx context.Context, article *Article) error
	// Delete removes the article and its join rows to inquiries and tags;
	// linked inquiries are untouched.
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Article, error)
	// IncrementViewAndFind atomically increments the view counter by exactly
	// one and returns the article. Concurrent calls must not lose increments.
	IncrementViewAndFind(ctx context.Context, id uint) (*Article, error)
	// List returns a page ordered most-recently-updated-first regardless of
	// filter.
	List(ctx context.Context, filter Filter) ([]*Article, int64, error)
	// ListRecent returns the newest articles by update time.
	ListRecent(ctx context.Context, limit int) ([]*Article, error)
}
