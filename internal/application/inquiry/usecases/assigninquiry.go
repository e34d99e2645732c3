package usecases

import (
	"context"
	"fmt"

	"aster/internal/domain/inquiry"
	"aster/internal/domain/user"
	"aster/internal/infrastructure/email"
	"aster/internal/shared/errors"
	"aster/internal/shared/logger"
)

type AssignInquiryCommand struct {
	InquiryID uint
	// AssigneeID of zero clears the assignment.
	AssigneeID uint
	AssignedBy uint
}

type AssignInquiryResult struct {
	InquiryID    uint
	AssigneeID   *uint
	AssigneeName string
}

type AssignInquiryExecutor interface {
	Execute(ctx context.Context, cmd AssignInquiryCommand) (*AssignInquiryResult, error)
}

type AssignInquiryUseCase struct {
	inquiryRepo inquiry.Repository
	users       user.Directory
	notifier    email.Notifier
	logger      logger.Interface
}

func NewAssignInquiryUseCase(
	inquiryRepo inquiry.Repository,
	users user.Directory,
	notifier email.Notifier,
	logger logger.Interface,
) *AssignInquiryUseCase {
	return &AssignInquiryUseCase{
		inquiryRepo: inquiryRepo,
		users:       users,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *AssignInquiryUseCase) Execute(ctx context.Context, cmd AssignInquiryCommand) (*AssignInquiryResult, error) {
	uc.logger.Infow("executing assign inquiry use case", "inquiry_id", cmd.InquiryID, "assignee_id", cmd.AssigneeID)

	if cmd.InquiryID == 0 {
		return nil, errors.NewValidationError("inquiry ID is required")
	}

	inq, err := uc.inquiryRepo.FindByID(ctx, cmd.InquiryID)
	if err != nil {
		uc.logger.Errorw("failed to find inquiry", "inquiry_id", cmd.InquiryID, "error", err)
		return nil, err
	}

	if cmd.AssigneeID == 0 {
		inq.Unassign()
		if err := uc.inquiryRepo.Update(ctx, inq); err != nil {
			uc.logger.Errorw("failed to update inquiry", "inquiry_id", cmd.InquiryID, "error", err)
			return nil, err
		}

		uc.logger.Infow("inquiry unassigned", "inquiry_id", inq.ID())
		return &AssignInquiryResult{InquiryID: inq.ID()}, nil
	}

	assignee, err := uc.users.FindByID(ctx, cmd.AssigneeID)
	if err != nil {
		uc.logger.Errorw("assignee not found", "assignee_id", cmd.AssigneeID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("user %d not found", cmd.AssigneeID))
	}

	if !assignee.IsStaff() {
		uc.logger.Warnw("rejected assignment to non-staff user", "assignee_id", cmd.AssigneeID)
		return nil, errors.NewNotStaffError(fmt.Sprintf("user %d is not a staff member", cmd.AssigneeID))
	}

	if err := inq.AssignTo(assignee.ID()); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.inquiryRepo.Update(ctx, inq); err != nil {
		uc.logger.Errorw("failed to update inquiry", "inquiry_id", cmd.InquiryID, "error", err)
		return nil, err
	}

	// Notification failures never fail the assignment.
	if err := uc.notifier.SendAssignmentNotification(assignee.Email(), assignee.DisplayName(), inq.Title(), inq.ID()); err != nil {
		uc.logger.Warnw("failed to send assignment notification", "inquiry_id", inq.ID(), "error", err)
	}

	uc.logger.Infow("inquiry assigned successfully", "inquiry_id", inq.ID(), "assignee_id", assignee.ID())

	return &AssignInquiryResult{
		InquiryID:    inq.ID(),
		AssigneeID:   inq.AssigneeID(),
		AssigneeName: assignee.DisplayName(),
	}, nil
}
