package category

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aster/internal/application/category/usecases"
	"aster/internal/interfaces/http/middleware"
	"aster/internal/shared/logger"
	"aster/internal/shared/utils"
)

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
	ParentID    *uint  `json:"parent_id"`
}

type UpdateCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
	ParentID    *uint  `json:"parent_id"`
}

type CategoryHandler struct {
	createCategoryUC usecases.CreateCategoryExecutor
	updateCategoryUC usecases.UpdateCategoryExecutor
	deleteCategoryUC usecases.DeleteCategoryExecutor
	getTreeUC        usecases.GetCategoryTreeExecutor
	getReferencesUC  usecases.GetCategoryReferencesExecutor
	logger           logger.Interface
}

func NewCategoryHandler(
	createCategoryUC usecases.CreateCategoryExecutor,
	updateCategoryUC usecases.UpdateCategoryExecutor,
	deleteCategoryUC usecases.DeleteCategoryExecutor,
	getTreeUC usecases.GetCategoryTreeExecutor,
	getReferencesUC usecases.GetCategoryReferencesExecutor,
	log logger.Interface,
) *CategoryHandler {
	return &CategoryHandler{
		createCategoryUC: createCategoryUC,
		updateCategoryUC: updateCategoryUC,
		deleteCategoryUC: deleteCategoryUC,
		getTreeUC:        getTreeUC,
		getReferencesUC:  getReferencesUC,
		logger:           log,
	}
}

// GetTree handles GET /api/categories/tree
func (h *CategoryHandler) GetTree(c *gin.Context) {
	result, err := h.getTreeUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"tree": result.Roots})
}

// GetReferences handles GET /api/categories/:id/references
func (h *CategoryHandler) GetReferences(c *gin.Context) {
	categoryID, err := utils.ParseIDParam(c, "id", "category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getReferencesUC.Execute(c.Request.Context(), usecases.GetCategoryReferencesQuery{
		CategoryID: categoryID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateCategory handles POST /api/categories
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create category", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.createCategoryUC.Execute(c.Request.Context(), usecases.CreateCategoryCommand{
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.ParentID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Category created successfully")
}

// UpdateCategory handles PUT /api/categories/:id
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	categoryID, err := utils.ParseIDParam(c, "id", "category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update category", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.updateCategoryUC.Execute(c.Request.Context(), usecases.UpdateCategoryCommand{
		CategoryID:  categoryID,
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.ParentID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Category updated successfully", result)
}

// DeleteCategory handles DELETE /api/categories/:id
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	categoryID, err := utils.ParseIDParam(c, "id", "category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deleteCategoryUC.Execute(c.Request.Context(), usecases.DeleteCategoryCommand{
		CategoryID: categoryID,
		DeletedBy:  middleware.UserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Category deleted successfully", result)
}
