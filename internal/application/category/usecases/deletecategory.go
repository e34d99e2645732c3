package usecases

import (
	"context"

	"aster/internal/domain/category"
	"aster/internal/shared/errors"
	"aster/internal/shared/logger"
)

type DeleteCategoryCommand struct {
	CategoryID uint
	DeletedBy  uint
}

type DeleteCategoryResult struct {
	// RemovedIDs holds the deleted category and all its descendants.
	RemovedIDs []uint
}

type DeleteCategoryExecutor interface {
	Execute(ctx context.Context, cmd DeleteCategoryCommand) (*DeleteCategoryResult, error)
}

type DeleteCategoryUseCase struct {
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewDeleteCategoryUseCase(
	categoryRepo category.Repository,
	logger logger.Interface,
) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, cmd DeleteCategoryCommand) (*DeleteCategoryResult, error) {
	uc.logger.Infow("executing delete category use case", "category_id", cmd.CategoryID, "deleted_by", cmd.DeletedBy)

	if cmd.CategoryID == 0 {
		return nil, errors.NewValidationError("category ID is required")
	}

	removed, err := uc.categoryRepo.SubtreeIDs(ctx, cmd.CategoryID)
	if err != nil {
		uc.logger.Errorw("failed to load category subtree", "category_id", cmd.CategoryID, "error", err)
		return nil, err
	}

	if err := uc.categoryRepo.Delete(ctx, cmd.CategoryID); err != nil {
		uc.logger.Errorw("failed to delete category", "category_id", cmd.CategoryID, "error", err)
		return nil, err
	}

	uc.logger.Infow("category deleted successfully",
		"category_id", cmd.CategoryID,
		"removed_count", len(removed))

	return &DeleteCategoryResult{RemovedIDs: removed}, nil
}
