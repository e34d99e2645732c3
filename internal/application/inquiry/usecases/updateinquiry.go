package usecases

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"aster/internal/domain/category"
	"aster/internal/domain/inquiry"
	vo "aster/internal/domain/inquiry/valueobjects"
	"aster/internal/domain/tag"
	"aster/internal/domain/user"
	"aster/internal/shared/db"
	"aster/internal/shared/errors"
	"aster/internal/shared/logger"
)

type UpdateInquiryCommand struct {
	InquiryID     uint
	Title         string
	Content       string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	// Status is optional; empty leaves the current status untouched. A
	// transition into resolved stamps the resolution timestamp exactly as
	// a direct status change does.
	Status     string
	Priority   string
	CategoryID *uint
	// AssigneeID is optional; nil leaves the assignment untouched, zero
	// clears it.
	AssigneeID *uint
	Tags       []string
}

type UpdateInquiryResult struct {
	InquiryID uint
	UpdatedAt time.Time
}

type UpdateInquiryExecutor interface {
	Execute(ctx context.Context, cmd UpdateInquiryCommand) (*UpdateInquiryResult, error)
}

type UpdateInquiryUseCase struct {
	inquiryRepo  inquiry.Repository
	categoryRepo category.Repository
	users        user.Directory
	txMgr        db.Manager
	logger       logger.Interface
}

func NewUpdateInquiryUseCase(
	inquiryRepo inquiry.Repository,
	categoryRepo category.Repository,
	users user.Directory,
	txMgr db.Manager,
	logger logger.Interface,
) *UpdateInquiryUseCase {
	return &UpdateInquiryUseCase{
		inquiryRepo:  inquiryRepo,
		categoryRepo: categoryRepo,
		users:        users,
		txMgr:        txMgr,
		logger:       logger,
	}
}

func (uc *UpdateInquiryUseCase) Execute(ctx context.Context, cmd UpdateInquiryCommand) (*UpdateInquiryResult, error) {
	uc.logger.Infow("executing update inquiry use case", "inquiry_id", cmd.InquiryID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid update inquiry command", "error", err)
		return nil, err
	}

	// Use a database transaction so the load and the writes cannot
	// interleave with a concurrent status change working from the same row.
	var inq *inquiry.Inquiry
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		found, err := uc.inquiryRepo.FindByID(txCtx, cmd.InquiryID)
		if err != nil {
			uc.logger.Errorw("failed to find inquiry", "inquiry_id", cmd.InquiryID, "error", err)
			return err
		}

		if cmd.CategoryID != nil {
			if _, err := uc.categoryRepo.FindByID(txCtx, *cmd.CategoryID); err != nil {
				uc.logger.Errorw("category not found", "category_id", *cmd.CategoryID, "error", err)
				return errors.NewNotFoundError(fmt.Sprintf("category %d not found", *cmd.CategoryID))
			}
		}

		if err := found.UpdateDetails(cmd.Title, cmd.Content, cmd.CustomerName, cmd.CustomerEmail, cmd.CustomerPhone); err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := found.ChangePriority(vo.Priority(cmd.Priority)); err != nil {
			return errors.NewValidationError(err.Error())
		}
		found.ChangeCategory(cmd.CategoryID)
		found.ReplaceTags(tag.NormalizeAll(cmd.Tags))

		if cmd.AssigneeID != nil {
			if err := uc.applyAssignment(txCtx, found, *cmd.AssigneeID); err != nil {
				return err
			}
		}

		if err := uc.inquiryRepo.Update(txCtx, found); err != nil {
			uc.logger.Errorw("failed to update inquiry", "inquiry_id", cmd.InquiryID, "error", err)
			return err
		}

		if cmd.Status != "" {
			if err := found.ChangeStatus(vo.Status(cmd.Status)); err != nil {
				return errors.NewInvalidStatusError(err.Error())
			}
			if err := uc.inquiryRepo.UpdateStatus(txCtx, found); err != nil {
				uc.logger.Errorw("failed to update inquiry status", "inquiry_id", cmd.InquiryID, "error", err)
				return err
			}
		}

		inq = found
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("inquiry updated successfully", "inquiry_id", inq.ID())

	return &UpdateInquiryResult{
		InquiryID: inq.ID(),
		UpdatedAt: inq.UpdatedAt(),
	}, nil
}

func (uc *UpdateInquiryUseCase) applyAssignment(ctx context.Context, inq *inquiry.Inquiry, assigneeID uint) error {
	if assigneeID == 0 {
		inq.Unassign()
		return nil
	}

	assignee, err := uc.users.FindByID(ctx, assigneeID)
	if err != nil {
		uc.logger.Errorw("assignee not found", "assignee_id", assigneeID, "error", err)
		return errors.NewNotFoundError(fmt.Sprintf("user %d not found", assigneeID))
	}
	if !assignee.IsStaff() {
		uc.logger.Warnw("rejected assignment to non-staff user", "assignee_id", assigneeID)
		return errors.NewNotStaffError(fmt.Sprintf("user %d is not a staff member", assigneeID))
	}
	if err := inq.AssignTo(assignee.ID()); err != nil {
		return errors.NewValidationError(err.Error())
	}
	return nil
}

func (uc *UpdateInquiryUseCase) validateCommand(cmd UpdateInquiryCommand) error {
	if cmd.InquiryID == 0 {
		return errors.NewValidationError("inquiry ID is required")
	}
	if len(cmd.Title) == 0 {
		return errors.NewValidationError("title is required")
	}
	if len(cmd.Content) == 0 {
		return errors.NewValidationError("content is required")
	}
	if _, err := mail.ParseAddress(cmd.CustomerEmail); err != nil {
		return errors.NewValidationError("invalid customer email")
	}
	if !vo.Priority(cmd.Priority).IsValid() {
		return errors.NewValidationError("invalid priority")
	}
	if cmd.Status != "" {
		if _, err := vo.NewStatus(cmd.Status); err != nil {
			return errors.NewInvalidStatusError(fmt.Sprintf("unknown status: %s", cmd.Status))
		}
	}
	return nil
}
