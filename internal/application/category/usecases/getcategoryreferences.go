package usecases

import (
	"context"

	"aster/internal/domain/category"
	"aster/internal/shared/errors"
	"aster/internal/shared/logger"
)

type GetCategoryReferencesQuery struct {
	CategoryID uint
}

type GetCategoryReferencesResult struct {
	CategoryID uint
	Name       string
	Inquiries  int64
	Articles   int64
	Total      int64
}

type GetCategoryReferencesExecutor interface {
	Execute(ctx context.Context, q GetCategoryReferencesQuery) (*GetCategoryReferencesResult, error)
}

type GetCategoryReferencesUseCase struct {
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewGetCategoryReferencesUseCase(
	categoryRepo category.Repository,
	logger logger.Interface,
) *GetCategoryReferencesUseCase {
	return &GetCategoryReferencesUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *GetCategoryReferencesUseCase) Execute(ctx context.Context, q GetCategoryReferencesQuery) (*GetCategoryReferencesResult, error) {
	if q.CategoryID == 0 {
		return nil, errors.NewValidationError("category ID is required")
	}

	refs, err := uc.categoryRepo.CountReferences(ctx, q.CategoryID)
	if err != nil {
		uc.logger.Errorw("failed to count category references", "category_id", q.CategoryID, "error", err)
		return nil, err
	}

	return &GetCategoryReferencesResult{
		CategoryID: refs.CategoryID,
		Name:       refs.Name,
		Inquiries:  refs.Inquiries,
		Articles:   refs.Articles,
		Total:      refs.Total(),
	}, nil
}
