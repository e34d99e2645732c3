package usecases

import (
	"context"
	"net/mail"
	"time"

	"aster/internal/domain/inquiry"
	vo "aster/internal/domain/inquiry/valueobjects"
	"aster/internal/domain/tag"
	"aster/internal/shared/errors"
	"aster/internal/shared/logger"
)

type CreateInquiryCommand struct {
	Title         string
	Content       string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Priority      string
	CategoryID    *uint
	Tags          []string
}

type CreateInquiryResult struct {
	InquiryID uint
	Status    string
	Priority  string
	CreatedAt time.Time
}

type CreateInquiryExecutor interface {
	Execute(ctx context.Context, cmd CreateInquiryCommand) (*CreateInquiryResult, error)
}

type CreateInquiryUseCase struct {
	inquiryRepo inquiry.Repository
	logger      logger.Interface
}

func NewCreateInquiryUseCase(
	inquiryRepo inquiry.Repository,
	logger logger.Interface,
) *CreateInquiryUseCase {
	return &CreateInquiryUseCase{
		inquiryRepo: inquiryRepo,
		logger:      logger,
	}
}

func (uc *CreateInquiryUseCase) Execute(ctx context.Context, cmd CreateInquiryCommand) (*CreateInquiryResult, error) {
	uc.logger.Infow("executing create inquiry use case", "title", cmd.Title, "customer_email", cmd.CustomerEmail)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create inquiry command", "error", err)
		return nil, err
	}

	newInquiry, err := inquiry.NewInquiry(
		cmd.Title,
		cmd.Content,
		cmd.CustomerName,
		cmd.CustomerEmail,
		cmd.CustomerPhone,
		vo.Priority(cmd.Priority),
		cmd.CategoryID,
		tag.NormalizeAll(cmd.Tags),
	)
	if err != nil {
		uc.logger.Errorw("failed to create inquiry entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.inquiryRepo.Save(ctx, newInquiry); err != nil {
		uc.logger.Errorw("failed to save inquiry", "error", err)
		return nil, err
	}

	uc.logger.Infow("inquiry created successfully", "inquiry_id", newInquiry.ID())

	return &CreateInquiryResult{
		InquiryID: newInquiry.ID(),
		Status:    newInquiry.Status().String(),
		Priority:  newInquiry.Priority().String(),
		CreatedAt: newInquiry.CreatedAt(),
	}, nil
}

func (uc *CreateInquiryUseCase) validateCommand(cmd CreateInquiryCommand) error {
	if len(cmd.Title) == 0 {
		return errors.NewValidationError("title is required")
	}
	if len(cmd.Title) > 200 {
		return errors.NewValidationError("title exceeds maximum length of 200 characters")
	}
	if len(cmd.Content) == 0 {
		return errors.NewValidationError("content is required")
	}
	if len(cmd.CustomerName) == 0 {
		return errors.NewValidationError("customer name is required")
	}
	if len(cmd.CustomerName) > 100 {
		return errors.NewValidationError("customer name exceeds maximum length of 100 characters")
	}
	if _, err := mail.ParseAddress(cmd.CustomerEmail); err != nil {
		return errors.NewValidationError("invalid customer email")
	}
	if cmd.Priority != "" && !vo.Priority(cmd.Priority).IsValid() {
		return errors.NewValidationError("invalid priority")
	}
	return nil
}
