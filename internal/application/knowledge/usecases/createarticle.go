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

type CreateArticleCommand struct {
	Title             string
	Content           string
	CategoryID        *uint
	IsPublic          bool
	RelatedInquiryIDs []uint
	Tags              []string
	// AuthorID is the acting staff user; authorship never comes from input.
	AuthorID uint
}

type CreateArticleResult struct {
	ArticleID uint
	Title     string
	AuthorID  uint
	IsPublic  bool
	CreatedAt time.Time
}

type CreateArticleExecutor interface {
	Execute(ctx context.Context, cmd CreateArticleCommand) (*CreateArticleResult, error)
}

type CreateArticleUseCase struct {
	articleRepo  knowledge.Repository
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewCreateArticleUseCase(
	articleRepo knowledge.Repository,
	categoryRepo category.Repository,
	logger logger.Interface,
) *CreateArticleUseCase {
	return &CreateArticleUseCase{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *CreateArticleUseCase) Execute(ctx context.Context, cmd CreateArticleCommand) (*CreateArticleResult, error) {
	uc.logger.Infow("executing create article use case", "title", cmd.Title, "author_id", cmd.AuthorID)

	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	if cmd.CategoryID != nil {
		if _, err := uc.categoryRepo.FindByID(ctx, *cmd.CategoryID); err != nil {
			uc.logger.Errorw("article category not found", "category_id", *cmd.CategoryID, "error", err)
			return nil, errors.NewNotFoundError(fmt.Sprintf("category %d not found", *cmd.CategoryID))
		}
	}

	article, err := knowledge.NewArticle(
		cmd.Title,
		cmd.Content,
		cmd.CategoryID,
		cmd.AuthorID,
		cmd.IsPublic,
		cmd.RelatedInquiryIDs,
		tag.NormalizeAll(cmd.Tags),
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.articleRepo.Save(ctx, article); err != nil {
		uc.logger.Errorw("failed to save article", "title", cmd.Title, "error", err)
		return nil, err
	}

	uc.logger.Infow("article created successfully", "article_id", article.ID(), "author_id", article.AuthorID())

	return &CreateArticleResult{
		ArticleID: article.ID(),
		Title:     article.Title(),
		AuthorID:  article.AuthorID(),
		IsPublic:  article.IsPublic(),
		CreatedAt: article.CreatedAt(),
	}, nil
}

func (uc *CreateArticleUseCase) validateCommand(cmd CreateArticleCommand) error {
	if cmd.Title == "" {
		return errors.NewValidationError("title is required")
	}
	if len(cmd.Title) > 200 {
		return errors.NewValidationError("title must be at most 200 characters")
	}
	if cmd.Content == "" {
		return errors.NewValidationError("content is required")
	}
	if cmd.AuthorID == 0 {
		return errors.NewValidationError("author ID is required")
	}
	return nil
}
