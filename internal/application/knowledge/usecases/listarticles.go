package usecases

import (
	"context"
	"strconv"

	"aster/internal/application/knowledge/dto"
	"aster/internal/domain/knowledge"
	"aster/internal/domain/user"
	"aster/internal/shared/logger"
	"aster/internal/shared/query"
)

// ListArticlesQuery carries raw filter input. An unparseable IsPublic value
// is treated as absent rather than rejected.
type ListArticlesQuery struct {
	Keyword       string
	CategoryID    *uint
	AuthorID      *uint
	IsPublic      string
	Page          int
	ViewerIsStaff bool
}

type ListArticlesResult struct {
	Articles   []dto.ArticleListItemDTO
	TotalCount int64
	Page       int
	PageSize   int
}

type ListArticlesExecutor interface {
	Execute(ctx context.Context, q ListArticlesQuery) (*ListArticlesResult, error)
}

type ListArticlesUseCase struct {
	articleRepo knowledge.Repository
	users       user.Directory
	logger      logger.Interface
}

func NewListArticlesUseCase(
	articleRepo knowledge.Repository,
	users user.Directory,
	logger logger.Interface,
) *ListArticlesUseCase {
	return &ListArticlesUseCase{
		articleRepo: articleRepo,
		users:       users,
		logger:      logger,
	}
}

func (uc *ListArticlesUseCase) Execute(ctx context.Context, q ListArticlesQuery) (*ListArticlesResult, error) {
	filter := knowledge.Filter{
		Keyword:    q.Keyword,
		CategoryID: q.CategoryID,
		AuthorID:   q.AuthorID,
		BaseFilter: query.NewBaseFilter(q.Page),
	}

	if isPublic, err := strconv.ParseBool(q.IsPublic); err == nil {
		filter.IsPublic = &isPublic
	}
	if !q.ViewerIsStaff {
		// Non-staff never see drafts regardless of the requested filter.
		visible := true
		filter.IsPublic = &visible
	}

	articles, total, err := uc.articleRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list articles", "error", err)
		return nil, err
	}

	items := make([]dto.ArticleListItemDTO, len(articles))
	for i, article := range articles {
		items[i] = dto.ToArticleListItemDTO(article)
	}
	uc.resolveAuthorNames(ctx, items)

	return &ListArticlesResult{
		Articles:   items,
		TotalCount: total,
		Page:       filter.Page,
		PageSize:   filter.Limit(),
	}, nil
}

func (uc *ListArticlesUseCase) resolveAuthorNames(ctx context.Context, items []dto.ArticleListItemDTO) {
	ids := make([]uint, 0, len(items))
	seen := make(map[uint]bool, len(items))
	for _, item := range items {
		if !seen[item.AuthorID] {
			seen[item.AuthorID] = true
			ids = append(ids, item.AuthorID)
		}
	}
	if len(ids) == 0 {
		return
	}

	users, err := uc.users.FindByIDs(ctx, ids)
	if err != nil {
		uc.logger.Warnw("failed to resolve author names", "error", err)
		return
	}

	for i := range items {
		if u, ok := users[items[i].AuthorID]; ok {
			items[i].AuthorName = u.DisplayName()
		}
	}
}
