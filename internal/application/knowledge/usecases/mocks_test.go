package usecases

import (
	"context"

	"aster/internal/domain/category"
	"aster/internal/domain/knowledge"
	"aster/internal/domain/user"
	"aster/internal/shared/logger"
)

type mockArticleRepository struct {
	SaveFunc                 func(ctx context.Context, article *knowledge.Article) error
	UpdateFunc               func(ctx context.Context, article *knowledge.Article) error
	DeleteFunc               func(ctx context.Context, id uint) error
	FindByIDFunc             func(ctx context.Context, id uint) (*knowledge.Article, error)
	IncrementViewAndFindFunc func(ctx context.Context, id uint) (*knowledge.Article, error)
	ListFunc                 func(ctx context.Context, filter knowledge.Filter) ([]*knowledge.Article, int64, error)
	ListRecentFunc           func(ctx context.Context, limit int) ([]*knowledge.Article, error)
}

func (m *mockArticleRepository) Save(ctx context.Context, article *knowledge.Article) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, article)
	}
	return nil
}

func (m *mockArticleRepository) Update(ctx context.Context, article *knowledge.Article) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, article)
	}
	return nil
}

func (m *mockArticleRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockArticleRepository) FindByID(ctx context.Context, id uint) (*knowledge.Article, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockArticleRepository) IncrementViewAndFind(ctx context.Context, id uint) (*knowledge.Article, error) {
	if m.IncrementViewAndFindFunc != nil {
		return m.IncrementViewAndFindFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockArticleRepository) List(ctx context.Context, filter knowledge.Filter) ([]*knowledge.Article, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockArticleRepository) ListRecent(ctx context.Context, limit int) ([]*knowledge.Article, error) {
	if m.ListRecentFunc != nil {
		return m.ListRecentFunc(ctx, limit)
	}
	return nil, nil
}

type mockCategoryRepository struct {
	FindByIDFunc func(ctx context.Context, id uint) (*category.Category, error)
}

func (m *mockCategoryRepository) Save(ctx context.Context, cat *category.Category) error   { return nil }
func (m *mockCategoryRepository) Update(ctx context.Context, cat *category.Category) error { return nil }
func (m *mockCategoryRepository) Delete(ctx context.Context, id uint) error                { return nil }

func (m *mockCategoryRepository) FindByID(ctx context.Context, id uint) (*category.Category, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCategoryRepository) ListChildren(ctx context.Context, parentID *uint) ([]*category.Category, error) {
	return nil, nil
}

func (m *mockCategoryRepository) ListAll(ctx context.Context) ([]*category.Category, error) {
	return nil, nil
}

func (m *mockCategoryRepository) SubtreeIDs(ctx context.Context, id uint) ([]uint, error) {
	return []uint{id}, nil
}

func (m *mockCategoryRepository) CountReferences(ctx context.Context, id uint) (*category.ReferenceCount, error) {
	return &category.ReferenceCount{CategoryID: id}, nil
}

func (m *mockCategoryRepository) TopByReferences(ctx context.Context, limit int) ([]category.ReferenceCount, error) {
	return nil, nil
}

type mockUserDirectory struct {
	FindByIDFunc  func(ctx context.Context, id uint) (*user.User, error)
	FindByIDsFunc func(ctx context.Context, ids []uint) (map[uint]*user.User, error)
	ListStaffFunc func(ctx context.Context) ([]*user.User, error)
}

func (m *mockUserDirectory) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserDirectory) FindByIDs(ctx context.Context, ids []uint) (map[uint]*user.User, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return map[uint]*user.User{}, nil
}

func (m *mockUserDirectory) ListStaff(ctx context.Context) ([]*user.User, error) {
	if m.ListStaffFunc != nil {
		return m.ListStaffFunc(ctx)
	}
	return nil, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
