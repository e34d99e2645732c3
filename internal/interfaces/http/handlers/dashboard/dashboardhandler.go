package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aster/internal/application/dashboard/usecases"
	"aster/internal/shared/logger"
	"aster/internal/shared/utils"
)

type DashboardHandler struct {
	getSummaryUC usecases.GetDashboardSummaryExecutor
	logger       logger.Interface
}

func NewDashboardHandler(getSummaryUC usecases.GetDashboardSummaryExecutor, log logger.Interface) *DashboardHandler {
	return &DashboardHandler{
		getSummaryUC: getSummaryUC,
		logger:       log,
	}
}

// GetSummary handles GET /api/dashboard
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	result, err := h.getSummaryUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"stats":            result.Stats,
		"recent_inquiries": result.RecentInquiries,
		"recent_articles":  result.RecentArticles,
		"top_categories":   result.TopCategories,
		"top_assignees":    result.TopAssignees,
	})
}
