package usecases

import (
	"context"

	inquirydto "aster/internal/application/inquiry/dto"
	knowledgedto "aster/internal/application/knowledge/dto"
	"aster/internal/domain/category"
	"aster/internal/domain/inquiry"
	"aster/internal/domain/knowledge"
	"aster/internal/domain/user"
	"aster/internal/shared/logger"
	"aster/internal/shared/query"
)

const (
	recentInquiryLimit = 10
	recentArticleLimit = 5
	topCategoryLimit   = 5
	topAssigneeLimit   = 5
)

type CategorySummary struct {
	CategoryID uint   `json:"category_id"`
	Name       string `json:"name"`
	Inquiries  int64  `json:"inquiries"`
	Articles   int64  `json:"articles"`
	Total      int64  `json:"total"`
}

type AssigneeSummary struct {
	AssigneeID   uint   `json:"assignee_id"`
	AssigneeName string `json:"assignee_name"`
	OpenCount    int64  `json:"open_count"`
}

type GetDashboardSummaryResult struct {
	Stats           *inquiry.Stats
	RecentInquiries []inquirydto.InquiryListItemDTO
	RecentArticles  []knowledgedto.ArticleListItemDTO
	TopCategories   []CategorySummary
	TopAssignees    []AssigneeSummary
}

type GetDashboardSummaryExecutor interface {
	Execute(ctx context.Context) (*GetDashboardSummaryResult, error)
}

type GetDashboardSummaryUseCase struct {
	inquiryRepo  inquiry.Repository
	articleRepo  knowledge.Repository
	categoryRepo category.Repository
	users        user.Directory
	logger       logger.Interface
}

func NewGetDashboardSummaryUseCase(
	inquiryRepo inquiry.Repository,
	articleRepo knowledge.Repository,
	categoryRepo category.Repository,
	users user.Directory,
	logger logger.Interface,
) *GetDashboardSummaryUseCase {
	return &GetDashboardSummaryUseCase{
		inquiryRepo:  inquiryRepo,
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		users:        users,
		logger:       logger,
	}
}

func (uc *GetDashboardSummaryUseCase) Execute(ctx context.Context) (*GetDashboardSummaryResult, error) {
	stats, err := uc.inquiryRepo.Stats(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load inquiry stats", "error", err)
		return nil, err
	}

	recentInquiries, err := uc.loadRecentInquiries(ctx)
	if err != nil {
		return nil, err
	}

	recentArticles, err := uc.loadRecentArticles(ctx)
	if err != nil {
		return nil, err
	}

	topCategories, err := uc.loadTopCategories(ctx)
	if err != nil {
		return nil, err
	}

	topAssignees, err := uc.loadTopAssignees(ctx)
	if err != nil {
		return nil, err
	}

	return &GetDashboardSummaryResult{
		Stats:           stats,
		RecentInquiries: recentInquiries,
		RecentArticles:  recentArticles,
		TopCategories:   topCategories,
		TopAssignees:    topAssignees,
	}, nil
}

func (uc *GetDashboardSummaryUseCase) loadRecentInquiries(ctx context.Context) ([]inquirydto.InquiryListItemDTO, error) {
	filter := inquiry.Filter{BaseFilter: query.NewBaseFilter(1)}
	filter.PageSize = recentInquiryLimit

	inquiries, _, err := uc.inquiryRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to load recent inquiries", "error", err)
		return nil, err
	}

	items := make([]inquirydto.InquiryListItemDTO, len(inquiries))
	for i, inq := range inquiries {
		items[i] = inquirydto.ToInquiryListItemDTO(inq)
	}
	return items, nil
}

func (uc *GetDashboardSummaryUseCase) loadRecentArticles(ctx context.Context) ([]knowledgedto.ArticleListItemDTO, error) {
	articles, err := uc.articleRepo.ListRecent(ctx, recentArticleLimit)
	if err != nil {
		uc.logger.Errorw("failed to load recent articles", "error", err)
		return nil, err
	}

	items := make([]knowledgedto.ArticleListItemDTO, len(articles))
	for i, article := range articles {
		items[i] = knowledgedto.ToArticleListItemDTO(article)
	}
	return items, nil
}

func (uc *GetDashboardSummaryUseCase) loadTopCategories(ctx context.Context) ([]CategorySummary, error) {
	refs, err := uc.categoryRepo.TopByReferences(ctx, topCategoryLimit)
	if err != nil {
		uc.logger.Errorw("failed to load top categories", "error", err)
		return nil, err
	}

	summaries := make([]CategorySummary, len(refs))
	for i, ref := range refs {
		summaries[i] = CategorySummary{
			CategoryID: ref.CategoryID,
			Name:       ref.Name,
			Inquiries:  ref.Inquiries,
			Articles:   ref.Articles,
			Total:      ref.Total(),
		}
	}
	return summaries, nil
}

func (uc *GetDashboardSummaryUseCase) loadTopAssignees(ctx context.Context) ([]AssigneeSummary, error) {
	counts, err := uc.inquiryRepo.CountByAssignee(ctx, topAssigneeLimit)
	if err != nil {
		uc.logger.Errorw("failed to load assignee counts", "error", err)
		return nil, err
	}

	ids := make([]uint, len(counts))
	for i, c := range counts {
		ids[i] = c.AssigneeID
	}

	names := map[uint]*user.User{}
	if len(ids) > 0 {
		names, err = uc.users.FindByIDs(ctx, ids)
		if err != nil {
			// Names are labels only; the counts stand on their own.
			uc.logger.Warnw("failed to resolve assignee names", "error", err)
			names = map[uint]*user.User{}
		}
	}

	summaries := make([]AssigneeSummary, len(counts))
	for i, c := range counts {
		summaries[i] = AssigneeSummary{
			AssigneeID: c.AssigneeID,
			OpenCount:  c.Count,
		}
		if u, ok := names[c.AssigneeID]; ok {
			summaries[i].AssigneeName = u.DisplayName()
		}
	}
	return summaries, nil
}
