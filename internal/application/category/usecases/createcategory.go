package usecases

import (
	"context"
	"fmt"
	"time"

	"aster/internal/domain/category"
	"aster/internal/shared/errors"
	"aster/internal/shared/logger"
)

type CreateCategoryCommand struct {
	Name        string
	Description string
	ParentID    *uint
}

type CreateCategoryResult struct {
	CategoryID uint
	Name       string
	ParentID   *uint
	CreatedAt  time.Time
}

type CreateCategoryExecutor interface {
	Execute(ctx context.Context, cmd CreateCategoryCommand) (*CreateCategoryResult, error)
}

type CreateCategoryUseCase struct {
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewCreateCategoryUseCase(
	categoryRepo category.Repository,
	logger logger.Interface,
) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *CreateCategoryUseCase) Execute(ctx context.Context, cmd CreateCategoryCommand) (*CreateCategoryResult, error) {
	uc.logger.Infow("executing create category use case", "name", cmd.Name, "parent_id", cmd.ParentID)

	if len(cmd.Name) == 0 {
		return nil, errors.NewValidationError("name is required")
	}
	if len(cmd.Name) > 100 {
		return nil, errors.NewValidationError("name exceeds maximum length of 100 characters")
	}

	if cmd.ParentID != nil {
		if _, err := uc.categoryRepo.FindByID(ctx, *cmd.ParentID); err != nil {
			uc.logger.Errorw("parent category not found", "parent_id", *cmd.ParentID, "error", err)
			return nil, errors.NewNotFoundError(fmt.Sprintf("category %d not found", *cmd.ParentID))
		}
	}

	cat, err := category.NewCategory(cmd.Name, cmd.Description, cmd.ParentID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.categoryRepo.Save(ctx, cat); err != nil {
		uc.logger.Errorw("failed to save category", "error", err)
		return nil, err
	}

	uc.logger.Infow("category created successfully", "category_id", cat.ID(), "name", cat.Name())

	return &CreateCategoryResult{
		CategoryID: cat.ID(),
		Name:       cat.Name(),
		ParentID:   cat.ParentID(),
		CreatedAt:  cat.CreatedAt(),
	}, nil
}
