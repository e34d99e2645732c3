package usecases

import (
	"context"

	"aster/internal/application/knowledge/dto"
	"aster/internal/domain/knowledge"
	"aster/internal/domain/user"
	"aster/internal/shared/errors"
	"aster/internal/shared/logger"
	"aster/internal/shared/markdown"
)

type ViewArticleQuery struct {
	ArticleID     uint
	ViewerIsStaff bool
}

type ViewArticleResult struct {
	Article *dto.ArticleDTO
}

type ViewArticleExecutor interface {
	Execute(ctx context.Context, q ViewArticleQuery) (*ViewArticleResult, error)
}

type ViewArticleUseCase struct {
	articleRepo knowledge.Repository
	users       user.Directory
	renderer    markdown.Service
	logger      logger.Interface
}

func NewViewArticleUseCase(
	articleRepo knowledge.Repository,
	users user.Directory,
	renderer markdown.Service,
	logger logger.Interface,
) *ViewArticleUseCase {
	return &ViewArticleUseCase{
		articleRepo: articleRepo,
		users:       users,
		renderer:    renderer,
		logger:      logger,
	}
}

// Execute counts the view and returns the article. The increment happens
// atomically in storage; the returned view count already includes this view.
func (uc *ViewArticleUseCase) Execute(ctx context.Context, q ViewArticleQuery) (*ViewArticleResult, error) {
	if q.ArticleID == 0 {
		return nil, errors.NewValidationError("article ID is required")
	}

	article, err := uc.articleRepo.IncrementViewAndFind(ctx, q.ArticleID)
	if err != nil {
		uc.logger.Errorw("failed to load article", "article_id", q.ArticleID, "error", err)
		return nil, err
	}

	if !article.IsPublic() && !q.ViewerIsStaff {
		return nil, errors.NewNotFoundError("article not found")
	}

	articleDTO := dto.ToArticleDTO(article)
	uc.renderContent(articleDTO)
	uc.resolveAuthorName(ctx, articleDTO)

	return &ViewArticleResult{Article: articleDTO}, nil
}

func (uc *ViewArticleUseCase) renderContent(articleDTO *dto.ArticleDTO) {
	rendered, err := uc.renderer.ToHTMLSanitized(articleDTO.Content)
	if err != nil {
		// Raw markdown still reaches the caller through Content.
		uc.logger.Warnw("failed to render article content", "article_id", articleDTO.ID, "error", err)
		return
	}
	articleDTO.RenderedHTML = rendered
}

func (uc *ViewArticleUseCase) resolveAuthorName(ctx context.Context, articleDTO *dto.ArticleDTO) {
	author, err := uc.users.FindByID(ctx, articleDTO.AuthorID)
	if err != nil {
		uc.logger.Warnw("failed to resolve article author", "author_id", articleDTO.AuthorID, "error", err)
		return
	}
	articleDTO.AuthorName = author.DisplayName()
}
