package usecases

import (
	"context"
	"fmt"
	"time"

	"aster/internal/domain/category"
	"aster/internal/domain/knowledge"
	"aster/internal/domain/tag"
	"aster/internal/shared/errors"
	"aster/internal/shared/logger"
)

type UpdateArticleCommand struct {
	ArticleID         uint
	Title             string
	Content           string
	CategoryID        *uint
	IsPublic          bool
	RelatedInquiryIDs []uint
	Tags              []string
	UpdatedBy         uint
}

type UpdateArticleResult struct {
	ArticleID uint
	Title     string
	// AuthorID keeps the original author; edits never transfer authorship.
	AuthorID  uint
	UpdatedAt time.Time
}

type UpdateArticleExecutor interface {
	Execute(ctx context.Context, cmd UpdateArticleCommand) (*UpdateArticleResult, error)
}

type UpdateArticleUseCase struct {
	articleRepo  knowledge.Repository
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewUpdateArticleUseCase(
	articleRepo knowledge.Repository,
	categoryRepo category.Repository,
	logger logger.Interface,
) *UpdateArticleUseCase {
	return &UpdateArticleUseCase{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *UpdateArticleUseCase) Execute(ctx context.Context, cmd UpdateArticleCommand) (*UpdateArticleResult, error) {
	uc.logger.Infow("executing update article use case", "article_id", cmd.ArticleID, "updated_by", cmd.UpdatedBy)

	if cmd.ArticleID == 0 {
		return nil, errors.NewValidationError("article ID is required")
	}

	article, err := uc.articleRepo.FindByID(ctx, cmd.ArticleID)
	if err != nil {
		uc.logger.Errorw("failed to find article", "article_id", cmd.ArticleID, "error", err)
		return nil, err
	}

	if cmd.CategoryID != nil {
		if _, err := uc.categoryRepo.FindByID(ctx, *cmd.CategoryID); err != nil {
			uc.logger.Errorw("article category not found", "category_id", *cmd.CategoryID, "error", err)
			return nil, errors.NewNotFoundError(fmt.Sprintf("category %d not found", *cmd.CategoryID))
		}
	}

	if err := article.UpdateDetails(cmd.Title, cmd.Content, cmd.CategoryID, cmd.IsPublic); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	article.ReplaceRelatedInquiries(cmd.RelatedInquiryIDs)
	article.ReplaceTags(tag.NormalizeAll(cmd.Tags))

	if err := uc.articleRepo.Update(ctx, article); err != nil {
		uc.logger.Errorw("failed to update article", "article_id", cmd.ArticleID, "error", err)
		return nil, err
	}

	uc.logger.Infow("article updated successfully", "article_id", article.ID())

	return &UpdateArticleResult{
		ArticleID: article.ID(),
		Title:     article.Title(),
		AuthorID:  article.AuthorID(),
		UpdatedAt: article.UpdatedAt(),
	}, nil
}
