package tag

import "context"

type Repository interface {
	// FindOrCreate resolves normalized names to tag entities, creating any
	// that do not exist yet. The result preserves input order.
	FindOrCreate(ctx context.Context, names []string) ([]*Tag, error)
	FindByNames(ctx context.Context, names []string) ([]*Tag, error)
	ListAll(ctx context.Context) ([]*Tag, error)
}
