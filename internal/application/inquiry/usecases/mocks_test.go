package usecases

import (
	"context"
	"io"

	"aster/internal/domain/inquiry"
	"aster/internal/domain/tag"
	"aster/internal/domain/user"
	"aster/internal/shared/logger"
)

type mockInquiryRepository struct {
	SaveFunc                       func(ctx context.Context, inq *inquiry.Inquiry) error
	UpdateFunc                     func(ctx context.Context, inq *inquiry.Inquiry) error
	UpdateStatusFunc               func(ctx context.Context, inq *inquiry.Inquiry) error
	DeleteFunc                     func(ctx context.Context, id uint) error
	FindByIDFunc                   func(ctx context.Context, id uint) (*inquiry.Inquiry, error)
	ListFunc                       func(ctx context.Context, filter inquiry.Filter) ([]*inquiry.Inquiry, int64, error)
	StatsFunc                      func(ctx context.Context) (*inquiry.Stats, error)
	CountByAssigneeFunc            func(ctx context.Context, limit int) ([]inquiry.AssigneeCount, error)
	SaveResponseFunc               func(ctx context.Context, r *inquiry.Response) error
	FindResponsesByInquiryIDFunc   func(ctx context.Context, inquiryID uint) ([]*inquiry.Response, error)
	SaveAttachmentFunc             func(ctx context.Context, a *inquiry.Attachment) error
	FindAttachmentsByInquiryIDFunc func(ctx context.Context, inquiryID uint) ([]*inquiry.Attachment, error)
}

func (m *mockInquiryRepository) Save(ctx context.Context, inq *inquiry.Inquiry) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, inq)
	}
	return nil
}

func (m *mockInquiryRepository) Update(ctx context.Context, inq *inquiry.Inquiry) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, inq)
	}
	return nil
}

func (m *mockInquiryRepository) UpdateStatus(ctx context.Context, inq *inquiry.Inquiry) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, inq)
	}
	return nil
}

func (m *mockInquiryRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockInquiryRepository) FindByID(ctx context.Context, id uint) (*inquiry.Inquiry, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
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
	if m.SaveResponseFunc != nil {
		return m.SaveResponseFunc(ctx, r)
	}
	return nil
}

func (m *mockInquiryRepository) FindResponsesByInquiryID(ctx context.Context, inquiryID uint) ([]*inquiry.Response, error) {
	if m.FindResponsesByInquiryIDFunc != nil {
		return m.FindResponsesByInquiryIDFunc(ctx, inquiryID)
	}
	return nil, nil
}

func (m *mockInquiryRepository) SaveAttachment(ctx context.Context, a *inquiry.Attachment) error {
	if m.SaveAttachmentFunc != nil {
		return m.SaveAttachmentFunc(ctx, a)
	}
	return nil
}

func (m *mockInquiryRepository) FindAttachmentsByInquiryID(ctx context.Context, inquiryID uint) ([]*inquiry.Attachment, error) {
	if m.FindAttachmentsByInquiryIDFunc != nil {
		return m.FindAttachmentsByInquiryIDFunc(ctx, inquiryID)
	}
	return nil, nil
}

// mockTxManager runs the transactional function inline; tests that care about
// rollback behavior override RunFunc.
type mockTxManager struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
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

type mockTagRepository struct {
	FindOrCreateFunc func(ctx context.Context, names []string) ([]*tag.Tag, error)
	FindByNamesFunc  func(ctx context.Context, names []string) ([]*tag.Tag, error)
	ListAllFunc      func(ctx context.Context) ([]*tag.Tag, error)
}

func (m *mockTagRepository) FindOrCreate(ctx context.Context, names []string) ([]*tag.Tag, error) {
	if m.FindOrCreateFunc != nil {
		return m.FindOrCreateFunc(ctx, names)
	}
	return nil, nil
}

func (m *mockTagRepository) FindByNames(ctx context.Context, names []string) ([]*tag.Tag, error) {
	if m.FindByNamesFunc != nil {
		return m.FindByNamesFunc(ctx, names)
	}
	return nil, nil
}

func (m *mockTagRepository) ListAll(ctx context.Context) ([]*tag.Tag, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

type mockNotifier struct {
	AssignmentFunc func(to, assigneeName, inquiryTitle string, inquiryID uint) error
	ResolutionFunc func(to, customerName, inquiryTitle string, inquiryID uint) error
}

func (m *mockNotifier) SendAssignmentNotification(to, assigneeName, inquiryTitle string, inquiryID uint) error {
	if m.AssignmentFunc != nil {
		return m.AssignmentFunc(to, assigneeName, inquiryTitle, inquiryID)
	}
	return nil
}

func (m *mockNotifier) SendResolutionNotification(to, customerName, inquiryTitle string, inquiryID uint) error {
	if m.ResolutionFunc != nil {
		return m.ResolutionFunc(to, customerName, inquiryTitle, inquiryID)
	}
	return nil
}

type mockBlobStore struct {
	PutFunc    func(ctx context.Context, filename string, r io.Reader) (string, error)
	GetFunc    func(ctx context.Context, key string) (io.ReadCloser, error)
	DeleteFunc func(ctx context.Context, key string) error
}

func (m *mockBlobStore) Put(ctx context.Context, filename string, r io.Reader) (string, error) {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, filename, r)
	}
	return "blobs/test-key", nil
}

func (m *mockBlobStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	return nil, nil
}

func (m *mockBlobStore) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                      {}
func (m *mockLogger) Info(msg string, args ...any)                       {}
func (m *mockLogger) Warn(msg string, args ...any)                       {}
func (m *mockLogger) Error(msg string, args ...any)                      {}
func (m *mockLogger) With(args ...any) logger.Interface                  { return m }
func (m *mockLogger) Named(name string) logger.Interface                 { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{})    {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})     {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})     {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{})    {}
