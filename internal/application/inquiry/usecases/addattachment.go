package usecases

import (
	"context"
	"io"
	"time"

	"aster/internal/domain/inquiry"
	"aster/internal/infrastructure/storage"
	"aster/internal/shared/errors"
	"aster/internal/shared/logger"
)

type AddAttachmentCommand struct {
	InquiryID   uint
	Filename    string
	ContentType string
	Size        int64
	Data        io.Reader
	UploadedBy  uint
}

type AddAttachmentResult struct {
	AttachmentID uint
	StorageKey   string
	UploadedAt   time.Time
}

type AddAttachmentExecutor interface {
	Execute(ctx context.Context, cmd AddAttachmentCommand) (*AddAttachmentResult, error)
}

type AddAttachmentUseCase struct {
	inquiryRepo inquiry.Repository
	blobs       storage.BlobStore
	logger      logger.Interface
}

func NewAddAttachmentUseCase(
	inquiryRepo inquiry.Repository,
	blobs storage.BlobStore,
	logger logger.Interface,
) *AddAttachmentUseCase {
	return &AddAttachmentUseCase{
		inquiryRepo: inquiryRepo,
		blobs:       blobs,
		logger:      logger,
	}
}

func (uc *AddAttachmentUseCase) Execute(ctx context.Context, cmd AddAttachmentCommand) (*AddAttachmentResult, error) {
	uc.logger.Infow("executing add attachment use case", "inquiry_id", cmd.InquiryID, "filename", cmd.Filename)

	if cmd.InquiryID == 0 {
		return nil, errors.NewValidationError("inquiry ID is required")
	}
	if cmd.Filename == "" {
		return nil, errors.NewValidationError("filename is required")
	}
	if cmd.Data == nil {
		return nil, errors.NewValidationError("attachment data is required")
	}

	if _, err := uc.inquiryRepo.FindByID(ctx, cmd.InquiryID); err != nil {
		uc.logger.Errorw("failed to find inquiry", "inquiry_id", cmd.InquiryID, "error", err)
		return nil, err
	}

	key, err := uc.blobs.Put(ctx, cmd.Filename, cmd.Data)
	if err != nil {
		uc.logger.Errorw("failed to store attachment blob", "inquiry_id", cmd.InquiryID, "error", err)
		return nil, errors.NewInternalError("failed to store attachment")
	}

	attachment, err := inquiry.NewAttachment(cmd.InquiryID, key, cmd.Filename, cmd.ContentType, cmd.Size)
	if err != nil {
		uc.cleanupBlob(ctx, key)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.inquiryRepo.SaveAttachment(ctx, attachment); err != nil {
		uc.cleanupBlob(ctx, key)
		uc.logger.Errorw("failed to save attachment", "inquiry_id", cmd.InquiryID, "error", err)
		return nil, err
	}

	uc.logger.Infow("attachment added successfully",
		"inquiry_id", cmd.InquiryID,
		"attachment_id", attachment.ID(),
		"storage_key", key)

	return &AddAttachmentResult{
		AttachmentID: attachment.ID(),
		StorageKey:   attachment.StorageKey(),
		UploadedAt:   attachment.UploadedAt(),
	}, nil
}

func (uc *AddAttachmentUseCase) cleanupBlob(ctx context.Context, key string) {
	if err := uc.blobs.Delete(ctx, key); err != nil {
		uc.logger.Warnw("failed to clean up orphaned blob", "storage_key", key, "error", err)
	}
}
