package usecases

import (
	"context"

	"aster/internal/domain/category"
	"aster/internal/domain/inquiry"
	"aster/internal/domain/knowledge"
	"aster/internal/domain/user"
	"aster/internal/shared/logger"
)

type mockInquiryRepository struct {
	ListFunc            func(ctx context.Context, filter inquiry.Filter) ([]*inquiry.Inquiry, int64, error)
	StatsFunc           func(ctx context.Context) (*inquiry.Stats, error)
	CountByAssigneeFunc func(ctx context.Context, limit int) ([]inquiry.AssigneeCount, error)
}

func (m *mockInquiryRepository) Save(ctx context.Context, inq *inquiry.Inquiry) error   { return nil }
func (m *mockInquiryRepository) Update(ctx context.Context, inq *inquiry.Inquiry) error { return nil }
func (m *mockInquiryRepository) UpdateStatus(ctx context.Context, inq *inquiry.Inquiry) error {
	return nil
}
func (m *mockInquiryRepository) Delete(ctx context.Context, id uint) error              { return nil }

func (m *mockInquiryRepository) FindByID(ctx context.Context, id uint) (*inquiry.Inquiry, error) {
	return nil, nil
}

func (m *mockInquiryRepository) List(ctx context.Context, filter inquiry.Filter) ([]*inquiry.Inquiry, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockInquiryRepository) Stats(ctx context.Context) (*inquiry.Stats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx)
	}
	return &inquiry.Stats{}, nil
}

func (m *mockInquiryRepository) CountByAssignee(ctx context.Context, limit int) ([]inquiry.AssigneeCount, error) {
	if m.CountByAssigneeFunc != nil {
		return m.CountByAssigneeFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockInquiryRepository) SaveResponse(ctx context.Context, r *inquiry.Response) error {
	return nil
}

func (m *mockInquiryRepository) FindResponsesByInquiryID(ctx context.Context, inquiryID uint) ([]*inquiry.Response, error) {
	return nil, nil
}

func (m *mockInquiryRepository) SaveAttachment(ctx context.Context, a *inquiry.Attachment) error {
	return nil
}

func (m *mockInquiryRepository) FindAttachmentsByInquiryID(ctx context.Context, inquiryID uint) ([]*inquiry.Attachment, error) {
	return nil, nil
}

type mockArticleRepository struct {
	ListRecentFunc func(ctx context.Context, limit int) ([]*knowledge.Article, error)
}

func (m *mockArticleRepository) Save(ctx context.Context, article *knowledge.Article) error {
	return nil
}

func (m *mockArticleRepository) Update(ctx context.Context, article *knowledge.Article) error {
	return nil
}

func (m *mockArticleRepository) Delete(ctx context.Context, id uint) error { return nil }

func (m *mockArticleRepository) FindByID(ctx context.Context, id uint) (*knowledge.Article, error) {
	return nil, nil
}

func (m *mockArticleRepository) IncrementViewAndFind(ctx context.Context, id uint) (*knowledge.Article, error) {
	return nil, nil
}

func (m *mockArticleRepository) List(ctx context.Context, filter knowledge.Filter) ([]*knowledge.Article, int64, error) {
	return nil, 0, nil
}

func (m *mockArticleRepository) ListRecent(ctx context.Context, limit int) ([]*knowledge.Article, error) {
	if m.ListRecentFunc != nil {
		return m.ListRecentFunc(ctx, limit)
	}
	return nil, nil
}

type mockCategoryRepository struct {
	TopByReferencesFunc func(ctx context.Context, limit int) ([]category.ReferenceCount, error)
}

func (m *mockCategoryRepository) Save(ctx context.Context, cat *category.Category) error   { return nil }
func (m *mockCategoryRepository) Update(ctx context.Context, cat *category.Category) error { return nil }
func (m *mockCategoryRepository) Delete(ctx context.Context, id uint) error                { return nil }

func (m *mockCategoryRepository) FindByID(ctx context.Context, id uint) (*category.Category, error) {
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
	if m.TopByReferencesFunc != nil {
		return m.TopByReferencesFunc(ctx, limit)
	}
	return nil, nil
}

type mockUserDirectory struct {
	FindByIDsFunc func(ctx context.Context, ids []uint) (map[uint]*user.User, error)
}

func (m *mockUserDirectory) FindByID(ctx context.Context, id uint) (*user.User, error) {
	return nil, nil
}

func (m *mockUserDirectory) FindByIDs(ctx context.Context, ids []uint) (map[uint]*user.User, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return map[uint]*user.User{}, nil
}

func (m *mockUserDirectory) ListStaff(ctx context.Context) ([]*user.User, error) {
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
