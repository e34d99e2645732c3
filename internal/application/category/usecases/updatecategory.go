package usecases

import (
	"context"
	"fmt"
	"time"

	"aster/internal/domain/category"
	"aster/internal/shared/errors"
	"aster/internal/shared/logger"
)

type UpdateCategoryCommand struct {
	CategoryID  uint
	Name        string
	Description string
	ParentID    *uint
}

type UpdateCategoryResult struct {
	CategoryID uint
	Name       string
	ParentID   *uint
	UpdatedAt  time.Time
}

type UpdateCategoryExecutor interface {
	Execute(ctx context.Context, cmd UpdateCategoryCommand) (*UpdateCategoryResult, error)
}

type UpdateCategoryUseCase struct {
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewUpdateCategoryUseCase(
	categoryRepo category.Repository,
	logger logger.Interface,
) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, cmd UpdateCategoryCommand) (*UpdateCategoryResult, error) {
	uc.logger.Infow("executing update category use case", "category_id", cmd.CategoryID, "parent_id", cmd.ParentID)

	if cmd.CategoryID == 0 {
		return nil, errors.NewValidationError("category ID is required")
	}

	cat, err := uc.categoryRepo.FindByID(ctx, cmd.CategoryID)
	if err != nil {
		uc.logger.Errorw("failed to find category", "category_id", cmd.CategoryID, "error", err)
		return nil, err
	}

	if cmd.ParentID != nil {
		if err := uc.checkParent(ctx, cat, *cmd.ParentID); err != nil {
			return nil, err
		}
	}

	if err := cat.Rename(cmd.Name); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	cat.UpdateDescription(cmd.Description)
	if err := cat.SetParent(cmd.ParentID); err != nil {
		return nil, errors.NewCyclicHierarchyError(err.Error())
	}

	if err := uc.categoryRepo.Update(ctx, cat); err != nil {
		uc.logger.Errorw("failed to update category", "category_id", cmd.CategoryID, "error", err)
		return nil, err
	}

	uc.logger.Infow("category updated successfully", "category_id", cat.ID())

	return &UpdateCategoryResult{
		CategoryID: cat.ID(),
		Name:       cat.Name(),
		ParentID:   cat.ParentID(),
		UpdatedAt:  cat.UpdatedAt(),
	}, nil
}

// checkParent verifies the new parent exists and is not the category itself or
// one of its descendants. Reparenting onto the subtree would close a cycle;
// the tree is left untouched in that case.
func (uc *UpdateCategoryUseCase) checkParent(ctx context.Context, cat *category.Category, parentID uint) error {
	if _, err := uc.categoryRepo.FindByID(ctx, parentID); err != nil {
		uc.logger.Errorw("parent category not found", "parent_id", parentID, "error", err)
		return errors.NewNotFoundError(fmt.Sprintf("category %d not found", parentID))
	}

	subtree, err := uc.categoryRepo.SubtreeIDs(ctx, cat.ID())
	if err != nil {
		uc.logger.Errorw("failed to load category subtree", "category_id", cat.ID(), "error", err)
		return err
	}

	for _, id := range subtree {
		if id == parentID {
			uc.logger.Warnw("rejected reparenting that would form a cycle",
				"category_id", cat.ID(),
				"parent_id", parentID)
			return errors.NewCyclicHierarchyError(
				fmt.Sprintf("category %d cannot become a child of its own subtree", cat.ID()))
		}
	}

	return nil
}
