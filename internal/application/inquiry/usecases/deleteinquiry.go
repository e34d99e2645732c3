package usecases

import (
	"context"

	"aster/internal/domain/inquiry"
	"aster/internal/infrastructure/storage"
	"aster/internal/shared/errors"
	"aster/internal/shared/logger"
)

type DeleteInquiryCommand struct {
	InquiryID uint
	DeletedBy uint
}

type DeleteInquiryExecutor interface {
	Execute(ctx context.Context, cmd DeleteInquiryCommand) error
}

type DeleteInquiryUseCase struct {
	inquiryRepo inquiry.Repository
	blobs       storage.BlobStore
	logger      logger.Interface
}

func NewDeleteInquiryUseCase(
	inquiryRepo inquiry.Repository,
	blobs storage.BlobStore,
	logger logger.Interface,
) *DeleteInquiryUseCase {
	return &DeleteInquiryUseCase{
		inquiryRepo: inquiryRepo,
		blobs:       blobs,
		logger:      logger,
	}
}

func (uc *DeleteInquiryUseCase) Execute(ctx context.Context, cmd DeleteInquiryCommand) error {
	uc.logger.Infow("executing delete inquiry use case", "inquiry_id", cmd.InquiryID, "deleted_by", cmd.DeletedBy)

	if cmd.InquiryID == 0 {
		return errors.NewValidationError("inquiry ID is required")
	}

	attachments, err := uc.inquiryRepo.FindAttachmentsByInquiryID(ctx, cmd.InquiryID)
	if err != nil {
		uc.logger.Errorw("failed to load attachments", "inquiry_id", cmd.InquiryID, "error", err)
		return err
	}

	if err := uc.inquiryRepo.Delete(ctx, cmd.InquiryID); err != nil {
		uc.logger.Errorw("failed to delete inquiry", "inquiry_id", cmd.InquiryID, "error", err)
		return err
	}

	// Blob cleanup is best effort; the rows are already gone.
	for _, att := range attachments {
		if err := uc.blobs.Delete(ctx, att.StorageKey()); err != nil {
			uc.logger.Warnw("failed to delete attachment blob",
				"inquiry_id", cmd.InquiryID,
				"storage_key", att.StorageKey(),
				"error", err)
		}
	}

	uc.logger.Infow("inquiry deleted successfully", "inquiry_id", cmd.InquiryID)
	return nil
}
