package usecases

import (
	"context"
	"fmt"
	"time"

	"aster/internal/domain/inquiry"
	vo "aster/internal/domain/inquiry/valueobjects"
	"aster/internal/infrastructure/email"
	"aster/internal/shared/db"
	"aster/internal/shared/errors"
	"aster/internal/shared/goroutine"
	"aster/internal/shared/logger"
)

type ChangeStatusCommand struct {
	InquiryID uint
	NewStatus string
	ChangedBy uint
}

type ChangeStatusResult struct {
	InquiryID   uint
	OldStatus   string
	NewStatus   string
	StatusLabel string
	ResolvedAt  *time.Time
	UpdatedAt   time.Time
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error)
}

type ChangeStatusUseCase struct {
	inquiryRepo inquiry.Repository
	txMgr       db.Manager
	notifier    email.Notifier
	logger      logger.Interface
}

func NewChangeStatusUseCase(
	inquiryRepo inquiry.Repository,
	txMgr db.Manager,
	notifier email.Notifier,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		inquiryRepo: inquiryRepo,
		txMgr:       txMgr,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	uc.logger.Infow("executing change status use case", "inquiry_id", cmd.InquiryID, "new_status", cmd.NewStatus)

	if cmd.InquiryID == 0 {
		return nil, errors.NewValidationError("inquiry ID is required")
	}

	newStatus, err := vo.NewStatus(cmd.NewStatus)
	if err != nil {
		uc.logger.Warnw("rejected unknown status value", "inquiry_id", cmd.InquiryID, "status", cmd.NewStatus)
		return nil, errors.NewInvalidStatusError(fmt.Sprintf("unknown status: %s", cmd.NewStatus))
	}

	// Use a database transaction so the load and the status write cannot
	// interleave with a concurrent writer working from a stale snapshot.
	var (
		inq       *inquiry.Inquiry
		oldStatus vo.Status
	)
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		found, err := uc.inquiryRepo.FindByID(txCtx, cmd.InquiryID)
		if err != nil {
			uc.logger.Errorw("failed to find inquiry", "inquiry_id", cmd.InquiryID, "error", err)
			return err
		}

		oldStatus = found.Status()

		if err := found.ChangeStatus(newStatus); err != nil {
			return errors.NewInvalidStatusError(err.Error())
		}

		if err := uc.inquiryRepo.UpdateStatus(txCtx, found); err != nil {
			uc.logger.Errorw("failed to update inquiry status", "inquiry_id", cmd.InquiryID, "error", err)
			return err
		}

		inq = found
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("inquiry status changed successfully",
		"inquiry_id", inq.ID(),
		"old_status", oldStatus.String(),
		"new_status", inq.Status().String())

	// Notify the customer off the request path when the inquiry resolves.
	// Notification failures never fail the status change.
	if newStatus == vo.StatusResolved && oldStatus != vo.StatusResolved {
		to := inq.CustomerEmail()
		name := inq.CustomerName()
		title := inq.Title()
		id := inq.ID()
		goroutine.SafeGo(uc.logger, "resolution-notification", func() {
			if err := uc.notifier.SendResolutionNotification(to, name, title, id); err != nil {
				uc.logger.Warnw("failed to send resolution notification", "inquiry_id", id, "error", err)
			}
		})
	}

	return &ChangeStatusResult{
		InquiryID:   inq.ID(),
		OldStatus:   oldStatus.String(),
		NewStatus:   inq.Status().String(),
		StatusLabel: inq.Status().Label(),
		ResolvedAt:  inq.ResolvedAt(),
		UpdatedAt:   inq.UpdatedAt(),
	}, nil
}
