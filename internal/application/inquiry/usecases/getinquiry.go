package usecases

import (
	"context"

	"aster/internal/application/inquiry/dto"
	"aster/internal/domain/inquiry"
	"aster/internal/domain/user"
	"aster/internal/shared/errors"
	"aster/internal/shared/logger"
)

type GetInquiryQuery struct {
	InquiryID     uint
	ViewerIsStaff bool
}

type GetInquiryResult struct {
	Inquiry *dto.InquiryDTO
}

type GetInquiryExecutor interface {
	Execute(ctx context.Context, query GetInquiryQuery) (*GetInquiryResult, error)
}

type GetInquiryUseCase struct {
	inquiryRepo inquiry.Repository
	users       user.Directory
	logger      logger.Interface
}

func NewGetInquiryUseCase(
	inquiryRepo inquiry.Repository,
	users user.Directory,
	logger logger.Interface,
) *GetInquiryUseCase {
	return &GetInquiryUseCase{
		inquiryRepo: inquiryRepo,
		users:       users,
		logger:      logger,
	}
}

func (uc *GetInquiryUseCase) Execute(ctx context.Context, query GetInquiryQuery) (*GetInquiryResult, error) {
	if query.InquiryID == 0 {
		return nil, errors.NewValidationError("inquiry ID is required")
	}

	inq, err := uc.inquiryRepo.FindByID(ctx, query.InquiryID)
	if err != nil {
		uc.logger.Errorw("failed to find inquiry", "inquiry_id", query.InquiryID, "error", err)
		return nil, err
	}

	result := dto.ToInquiryDTO(inq, query.ViewerIsStaff)
	uc.resolveNames(ctx, inq, result)

	return &GetInquiryResult{Inquiry: result}, nil
}

// resolveNames fills display names for the assignee and responders. Lookup
// failures leave the names empty rather than failing the read.
func (uc *GetInquiryUseCase) resolveNames(ctx context.Context, inq *inquiry.Inquiry, result *dto.InquiryDTO) {
	ids := make([]uint, 0, len(result.Responses)+1)
	if inq.AssigneeID() != nil {
		ids = append(ids, *inq.AssigneeID())
	}
	for _, r := range result.Responses {
		ids = append(ids, r.ResponderID)
	}
	if len(ids) == 0 {
		return
	}

	users, err := uc.users.FindByIDs(ctx, ids)
	if err != nil {
		uc.logger.Warnw("failed to resolve user names", "inquiry_id", inq.ID(), "error", err)
		return
	}

	if inq.AssigneeID() != nil {
		if u, ok := users[*inq.AssigneeID()]; ok {
			result.AssigneeName = u.DisplayName()
		}
	}
	for i := range result.Responses {
		if u, ok := users[result.Responses[i].ResponderID]; ok {
			result.Responses[i].ResponderName = u.DisplayName()
		}
	}
}
