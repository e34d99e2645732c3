package knowledge

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aster/internal/application/knowledge/usecases"
	"aster/internal/interfaces/http/middleware"
	"aster/internal/shared/logger"
	"aster/internal/shared/utils"
)

type CreateArticleRequest struct {
	Title             string   `json:"title" binding:"required,max=200"`
	Content           string   `json:"content" binding:"required"`
	CategoryID        *uint    `json:"category_id"`
	IsPublic          bool     `json:"is_public"`
	RelatedInquiryIDs []uint   `json:"related_inquiry_ids"`
	Tags              []string `json:"tags"`
}

type UpdateArticleRequest struct {
	Title             string   `json:"title" binding:"required,max=200"`
	Content           string   `json:"content" binding:"required"`
	CategoryID        *uint    `json:"category_id"`
	IsPublic          bool     `json:"is_public"`
	RelatedInquiryIDs []uint   `json:"related_inquiry_ids"`
	Tags              []string `json:"tags"`
}

type ArticleHandler struct {
	createArticleUC usecases.CreateArticleExecutor
	updateArticleUC usecases.UpdateArticleExecutor
	viewArticleUC   usecases.ViewArticleExecutor
	listArticlesUC  usecases.ListArticlesExecutor
	deleteArticleUC usecases.DeleteArticleExecutor
	logger          logger.Interface
}

func NewArticleHandler(
	createArticleUC usecases.CreateArticleExecutor,
	updateArticleUC usecases.UpdateArticleExecutor,
	viewArticleUC usecases.ViewArticleExecutor,
	listArticlesUC usecases.ListArticlesExecutor,
	deleteArticleUC usecases.DeleteArticleExecutor,
	log logger.Interface,
) *ArticleHandler {
	return &ArticleHandler{
		createArticleUC: createArticleUC,
		updateArticleUC: updateArticleUC,
		viewArticleUC:   viewArticleUC,
		listArticlesUC:  listArticlesUC,
		deleteArticleUC: deleteArticleUC,
		logger:          log,
	}
}

// CreateArticle handles POST /api/articles
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create article", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.createArticleUC.Execute(c.Request.Context(), usecases.CreateArticleCommand{
		Title:             req.Title,
		Content:           req.Content,
		CategoryID:        req.CategoryID,
		IsPublic:          req.IsPublic,
		RelatedInquiryIDs: req.RelatedInquiryIDs,
		Tags:              req.Tags,
		AuthorID:          middleware.UserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Article created successfully")
}

// ViewArticle handles GET /api/articles/:id; every hit counts a view.
func (h *ArticleHandler) ViewArticle(c *gin.Context) {
	articleID, err := utils.ParseIDParam(c, "id", "article")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.viewArticleUC.Execute(c.Request.Context(), usecases.ViewArticleQuery{
		ArticleID:     articleID,
		ViewerIsStaff: middleware.IsStaff(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Article)
}

// ListArticles handles GET /api/articles
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	result, err := h.listArticlesUC.Execute(c.Request.Context(), usecases.ListArticlesQuery{
		Keyword:       c.Query("keyword"),
		CategoryID:    utils.ParseUintQuery(c, "category_id"),
		AuthorID:      utils.ParseUintQuery(c, "author_id"),
		IsPublic:      c.Query("is_public"),
		Page:          utils.ParsePageQuery(c),
		ViewerIsStaff: middleware.IsStaff(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Articles, result.TotalCount, result.Page, result.PageSize)
}

// UpdateArticle handles PUT /api/articles/:id
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	articleID, err := utils.ParseIDParam(c, "id", "article")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update article", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.updateArticleUC.Execute(c.Request.Context(), usecases.UpdateArticleCommand{
		ArticleID:         articleID,
		Title:             req.Title,
		Content:           req.Content,
		CategoryID:        req.CategoryID,
		IsPublic:          req.IsPublic,
		RelatedInquiryIDs: req.RelatedInquiryIDs,
		Tags:              req.Tags,
		UpdatedBy:         middleware.UserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Article updated successfully", result)
}

// DeleteArticle handles DELETE /api/articles/:id
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	articleID, err := utils.ParseIDParam(c, "id", "article")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.deleteArticleUC.Execute(c.Request.Context(), usecases.DeleteArticleCommand{
		ArticleID: articleID,
		DeletedBy: middleware.UserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Article deleted successfully", nil)
}
