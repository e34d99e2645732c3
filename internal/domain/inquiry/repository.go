package inquiry

import (
	"context"
	"time"

	vo "aster/internal/domain/inquiry/valueobjects"
	"aster/internal/shared/query"
)

// Filter narrows inquiry listings. Absent fields impose no constraint;
// present fields are AND-ed, except Keyword which OR-matches across title,
// content, customer name, customer email, and tag names (case-insensitive
// substring).
type Filter struct {
	Keyword    string
	Status     *vo.Status
	Priority   *vo.Priority
	CategoryID *uint
	AssigneeID *uint
	DateFrom   *time.Time
	DateTo     *time.Time
	query.BaseFilter
}

// Stats holds the aggregate counts shown alongside inquiry listings.
type Stats struct {
	Total      int64
	New        int64
	InProgress int64
	Urgent     int64
	ByStatus   map[vo.Status]int64
	ByPriority map[vo.Priority]int64
}

// AssigneeCount is an assignee's open inquiry load.
type AssigneeCount struct {
	AssigneeID uint
	Count      int64
}

type Repository interface {
	Save(ctx context.Context, inq *Inquiry) error
	// Update persists the inquiry's editable fields. It never touches status
	// or the resolution timestamp; those go through UpdateStatus so a stale
	// snapshot cannot revert a concurrent transition.
	Update(ctx context.Context, inq *Inquiry) error
	// UpdateStatus persists a status transition. The resolution timestamp is
	// written guarded: the first stamp wins and later writes never clear it.
	UpdateStatus(ctx context.Context, inq *Inquiry) error
	// Delete removes the inquiry and cascades to its responses, attachments,
	// and tag links within a single transaction.
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Inquiry, error)
	// List returns a page ordered newest-created-first regardless of filter.
	List(ctx context.Context, filter Filter) ([]*Inquiry, int64, error)
	Stats(ctx context.Context) (*Stats, error)
	// CountByAssignee returns assignees ordered by descending load.
	CountByAssignee(ctx context.Context, limit int) ([]AssigneeCount, error)

	SaveResponse(ctx context.Context, r *Response) error
	// FindResponsesByInquiryID returns responses newest-first.
	FindResponsesByInquiryID(ctx context.Context, inquiryID uint) ([]*Response, error)

	SaveAttachment(ctx context.Context, a *Attachment) error
	FindAttachmentsByInquiryID(ctx context.Context, inquiryID uint) ([]*Attachment, error)
}
