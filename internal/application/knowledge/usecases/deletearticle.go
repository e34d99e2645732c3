package usecases

import (
	"context"

	"aster/internal/domain/knowledge"
	"aster/internal/shared/errors"
	"aster/internal/shared/logger"
)

type DeleteArticleCommand struct {
	ArticleID uint
	DeletedBy uint
}

type DeleteArticleExecutor interface {
	Execute(ctx context.Context, cmd DeleteArticleCommand) error
}

type DeleteArticleUseCase struct {
	articleRepo knowledge.Repository
	logger      logger.Interface
}

func NewDeleteArticleUseCase(
	articleRepo knowledge.Repository,
	logger logger.Interface,
) *DeleteArticleUseCase {
	return &DeleteArticleUseCase{
		articleRepo: articleRepo,
		logger:      logger,
	}
}

func (uc *DeleteArticleUseCase) Execute(ctx context.Context, cmd DeleteArticleCommand) error {
	uc.logger.Infow("executing delete article use case", "article_id", cmd.ArticleID, "deleted_by", cmd.DeletedBy)

	if cmd.ArticleID == 0 {
		return errors.NewValidationError("article ID is required")
	}

	if err := uc.articleRepo.Delete(ctx, cmd.ArticleID); err != nil {
		uc.logger.Errorw("failed to delete article", "article_id", cmd.ArticleID, "error", err)
		return err
	}

	uc.logger.Infow("article deleted successfully", "article_id", cmd.ArticleID)
	return nil
}
