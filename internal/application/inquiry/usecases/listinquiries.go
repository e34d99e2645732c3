package usecases

import (
	"context"
	"time"

	"aster/internal/application/inquiry/dto"
	"aster/internal/domain/inquiry"
	vo "aster/internal/domain/inquiry/valueobjects"
	"aster/internal/domain/user"
	"aster/internal/shared/logger"
	"aster/internal/shared/query"
)

// ListInquiriesQuery carries raw filter input. Unknown status or priority
// values are treated as absent rather than rejected.
type ListInquiriesQuery struct {
	Keyword    string
	Status     string
	Priority   string
	CategoryID *uint
	AssigneeID *uint
	DateFrom   *time.Time
	DateTo     *time.Time
	Page       int
}

type ListInquiriesResult struct {
	Inquiries  []dto.InquiryListItemDTO
	TotalCount int64
	Page       int
	PageSize   int
	Stats      *inquiry.Stats
}

type ListInquiriesExecutor interface {
	Execute(ctx context.Context, q ListInquiriesQuery) (*ListInquiriesResult, error)
}

type ListInquiriesUseCase struct {
	inquiryRepo inquiry.Repository
	users       user.Directory
	logger      logger.Interface
}

func NewListInquiriesUseCase(
	inquiryRepo inquiry.Repository,
	users user.Directory,
	logger logger.Interface,
) *ListInquiriesUseCase {
	return &ListInquiriesUseCase{
		inquiryRepo: inquiryRepo,
		users:       users,
		logger:      logger,
	}
}

func (uc *ListInquiriesUseCase) Execute(ctx context.Context, q ListInquiriesQuery) (*ListInquiriesResult, error) {
	filter := inquiry.Filter{
		Keyword:    q.Keyword,
		CategoryID: q.CategoryID,
		AssigneeID: q.AssigneeID,
		DateFrom:   q.DateFrom,
		DateTo:     q.DateTo,
		BaseFilter: query.NewBaseFilter(q.Page),
	}

	if status, err := vo.NewStatus(q.Status); err == nil {
		filter.Status = &status
	}
	if priority, err := vo.NewPriority(q.Priority); err == nil {
		filter.Priority = &priority
	}

	inquiries, total, err := uc.inquiryRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list inquiries", "error", err)
		return nil, err
	}

	stats, err := uc.inquiryRepo.Stats(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load inquiry stats", "error", err)
		return nil, err
	}

	items := make([]dto.InquiryListItemDTO, len(inquiries))
	for i, inq := range inquiries {
		items[i] = dto.ToInquiryListItemDTO(inq)
	}
	uc.resolveAssigneeNames(ctx, items)

	return &ListInquiriesResult{
		Inquiries:  items,
		TotalCount: total,
		Page:       filter.Page,
		PageSize:   filter.Limit(),
		Stats:      stats,
	}, nil
}

func (uc *ListInquiriesUseCase) resolveAssigneeNames(ctx context.Context, items []dto.InquiryListItemDTO) {
	ids := make([]uint, 0, len(items))
	seen := make(map[uint]bool, len(items))
	for _, item := range items {
		if item.AssigneeID != nil && !seen[*item.AssigneeID] {
			seen[*item.AssigneeID] = true
			ids = append(ids, *item.AssigneeID)
		}
	}
	if len(ids) == 0 {
		return
	}

	users, err := uc.users.FindByIDs(ctx, ids)
	if err != nil {
		uc.logger.Warnw("failed to resolve assignee names", "error", err)
		return
	}

	for i := range items {
		if items[i].AssigneeID != nil {
			if u, ok := users[*items[i].AssigneeID]; ok {
				items[i].AssigneeName = u.DisplayName()
			}
		}
	}
}
