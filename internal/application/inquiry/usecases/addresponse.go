package usecases

import (
	"context"
	"time"

	"aster/internal/domain/inquiry"
	"aster/internal/shared/errors"
	"aster/internal/shared/logger"
)

type AddResponseCommand struct {
	InquiryID   uint
	ResponderID uint
	Content     string
	IsInternal  bool
}

type AddResponseResult struct {
	ResponseID uint
	InquiryID  uint
	CreatedAt  time.Time
}

type AddResponseExecutor interface {
	Execute(ctx context.Context, cmd AddResponseCommand) (*AddResponseResult, error)
}

type AddResponseUseCase struct {
	inquiryRepo inquiry.Repository
	logger      logger.Interface
}

func NewAddResponseUseCase(
	inquiryRepo inquiry.Repository,
	logger logger.Interface,
) *AddResponseUseCase {
	return &AddResponseUseCase{
		inquiryRepo: inquiryRepo,
		logger:      logger,
	}
}

func (uc *AddResponseUseCase) Execute(ctx context.Context, cmd AddResponseCommand) (*AddResponseResult, error) {
	uc.logger.Infow("executing add response use case", "inquiry_id", cmd.InquiryID, "responder_id", cmd.ResponderID)

	if cmd.InquiryID == 0 {
		return nil, errors.NewValidationError("inquiry ID is required")
	}

	// The parent must exist before logging a response against it.
	if _, err := uc.inquiryRepo.FindByID(ctx, cmd.InquiryID); err != nil {
		uc.logger.Errorw("failed to find inquiry", "inquiry_id", cmd.InquiryID, "error", err)
		return nil, err
	}

	response, err := inquiry.NewResponse(cmd.InquiryID, cmd.ResponderID, cmd.Content, cmd.IsInternal)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.inquiryRepo.SaveResponse(ctx, response); err != nil {
		uc.logger.Errorw("failed to save response", "inquiry_id", cmd.InquiryID, "error", err)
		return nil, err
	}

	uc.logger.Infow("response added successfully", "inquiry_id", cmd.InquiryID, "response_id", response.ID())

	return &AddResponseResult{
		ResponseID: response.ID(),
		InquiryID:  response.InquiryID(),
		CreatedAt:  response.CreatedAt(),
	}, nil
}
