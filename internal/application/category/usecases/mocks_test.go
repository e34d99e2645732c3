package usecases

import (
	"context"

	"aster/internal/domain/category"
	"aster/internal/shared/logger"
)

type mockCategoryRepository struct {
	SaveFunc            func(ctx context.Context, cat *category.Category) error
	UpdateFunc          func(ctx context.Context, cat *category.Category) error
	FindByIDFunc        func(ctx context.Context, id uint) (*category.Category, error)
	ListChildrenFunc    func(ctx context.Context, parentID *uint) ([]*category.Category, error)
	ListAllFunc         func(ctx context.Context) ([]*category.Category, error)
	SubtreeIDsFunc      func(ctx context.Context, id uint) ([]uint, error)
	CountReferencesFunc func(ctx context.Context, id uint) (*category.ReferenceCount, error)
	TopByReferencesFunc func(ctx context.Context, limit int) ([]category.ReferenceCount, error)
	DeleteFunc          func(ctx context.Context, id uint) error
}

func (m *mockCategoryRepository) Save(ctx context.Context, cat *category.Category) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, cat)
	}
	return nil
}

func (m *mockCategoryRepository) Update(ctx context.Context, cat *category.Category) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, cat)
	}
	return nil
}

func (m *mockCategoryRepository) FindByID(ctx context.Context, id uint) (*category.Category, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCategoryRepository) ListChildren(ctx context.Context, parentID *uint) ([]*category.Category, error) {
	if m.ListChildrenFunc != nil {
		return m.ListChildrenFunc(ctx, parentID)
	}
	return nil, nil
}

func (m *mockCategoryRepository) ListAll(ctx context.Context) ([]*category.Category, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockCategoryRepository) SubtreeIDs(ctx context.Context, id uint) ([]uint, error) {
	if m.SubtreeIDsFunc != nil {
		return m.SubtreeIDsFunc(ctx, id)
	}
	return []uint{id}, nil
}

func (m *mockCategoryRepository) CountReferences(ctx context.Context, id uint) (*category.ReferenceCount, error) {
	if m.CountReferencesFunc != nil {
		return m.CountReferencesFunc(ctx, id)
	}
	return &category.ReferenceCount{CategoryID: id}, nil
}

func (m *mockCategoryRepository) TopByReferences(ctx context.Context, limit int) ([]category.ReferenceCount, error) {
	if m.TopByReferencesFunc != nil {
		return m.TopByReferencesFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockCategoryRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
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
