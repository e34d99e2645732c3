package inquiry

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aster/internal/application/inquiry/usecases"
	"aster/internal/interfaces/http/middleware"
	"aster/internal/shared/logger"
	"aster/internal/shared/utils"
)

type InquiryHandler struct {
	createInquiryUC usecases.CreateInquiryExecutor
	updateInquiryUC usecases.UpdateInquiryExecutor
	changeStatusUC  usecases.ChangeStatusExecutor
	assignInquiryUC usecases.AssignInquiryExecutor
	getInquiryUC    usecases.GetInquiryExecutor
	listInquiriesUC usecases.ListInquiriesExecutor
	deleteInquiryUC usecases.DeleteInquiryExecutor
	addResponseUC   usecases.AddResponseExecutor
	addAttachmentUC usecases.AddAttachmentExecutor
	triageOptionsUC usecases.GetTriageOptionsExecutor
	logger          logger.Interface
}

func NewInquiryHandler(
	createInquiryUC usecases.CreateInquiryExecutor,
	updateInquiryUC usecases.UpdateInquiryExecutor,
	changeStatusUC usecases.ChangeStatusExecutor,
	assignInquiryUC usecases.AssignInquiryExecutor,
	getInquiryUC usecases.GetInquiryExecutor,
	listInquiriesUC usecases.ListInquiriesExecutor,
	deleteInquiryUC usecases.DeleteInquiryExecutor,
	addResponseUC usecases.AddResponseExecutor,
	addAttachmentUC usecases.AddAttachmentExecutor,
	triageOptionsUC usecases.GetTriageOptionsExecutor,
	log logger.Interface,
) *InquiryHandler {
	return &InquiryHandler{
		createInquiryUC: createInquiryUC,
		updateInquiryUC: updateInquiryUC,
		changeStatusUC:  changeStatusUC,
		assignInquiryUC: assignInquiryUC,
		getInquiryUC:    getInquiryUC,
		listInquiriesUC: listInquiriesUC,
		deleteInquiryUC: deleteInquiryUC,
		addResponseUC:   addResponseUC,
		addAttachmentUC: addAttachmentUC,
		triageOptionsUC: triageOptionsUC,
		logger:          log,
	}
}

// GetTriageOptions handles GET /api/inquiries/options
func (h *InquiryHandler) GetTriageOptions(c *gin.Context) {
	result, err := h.triageOptionsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateInquiry handles POST /api/inquiries
func (h *InquiryHandler) CreateInquiry(c *gin.Context) {
	var req CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create inquiry", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.createInquiryUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Inquiry created successfully")
}

// GetInquiry handles GET /api/inquiries/:id
func (h *InquiryHandler) GetInquiry(c *gin.Context) {
	inquiryID, err := utils.ParseIDParam(c, "id", "inquiry")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getInquiryUC.Execute(c.Request.Context(), usecases.GetInquiryQuery{
		InquiryID:     inquiryID,
		ViewerIsStaff: middleware.IsStaff(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Inquiry)
}

// ListInquiries handles GET /api/inquiries
func (h *InquiryHandler) ListInquiries(c *gin.Context) {
	req := parseListInquiriesRequest(c)

	result, err := h.listInquiriesUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"items":     result.Inquiries,
		"total":     result.TotalCount,
		"page":      result.Page,
		"page_size": result.PageSize,
		"stats":     result.Stats,
	})
}

// UpdateInquiry handles PUT /api/inquiries/:id
func (h *InquiryHandler) UpdateInquiry(c *gin.Context) {
	inquiryID, err := utils.ParseIDParam(c, "id", "inquiry")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update inquiry", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.updateInquiryUC.Execute(c.Request.Context(), req.ToCommand(inquiryID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Inquiry updated successfully", result)
}

// DeleteInquiry handles DELETE /api/inquiries/:id
func (h *InquiryHandler) DeleteInquiry(c *gin.Context) {
	inquiryID, err := utils.ParseIDParam(c, "id", "inquiry")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.deleteInquiryUC.Execute(c.Request.Context(), usecases.DeleteInquiryCommand{
		InquiryID: inquiryID,
		DeletedBy: middleware.UserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Inquiry deleted successfully", nil)
}

// ChangeStatus handles POST /api/inquiries/:id/status.
// This is the inline-edit endpoint: every failure flattens to
// {"success": false} with HTTP 200 so the widget can reset in place.
func (h *InquiryHandler) ChangeStatus(c *gin.Context) {
	inquiryID, err := utils.ParseIDParam(c, "id", "inquiry")
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false})
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false})
		return
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeStatusCommand{
		InquiryID: inquiryID,
		NewStatus: req.Status,
		ChangedBy: middleware.UserID(c),
	})
	if err != nil {
		h.logger.Warnw("inline status change failed", "inquiry_id", inquiryID, "status", req.Status, "error", err)
		c.JSON(http.StatusOK, gin.H{"success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"status":       result.NewStatus,
		"status_label": result.StatusLabel,
	})
}

// AssignInquiry handles POST /api/inquiries/:id/assign.
// Inline-edit endpoint with the same flattened failure contract as ChangeStatus.
func (h *InquiryHandler) AssignInquiry(c *gin.Context) {
	inquiryID, err := utils.ParseIDParam(c, "id", "inquiry")
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false})
		return
	}

	var req AssignInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false})
		return
	}

	result, err := h.assignInquiryUC.Execute(c.Request.Context(), usecases.AssignInquiryCommand{
		InquiryID:  inquiryID,
		AssigneeID: req.AssigneeID,
		AssignedBy: middleware.UserID(c),
	})
	if err != nil {
		h.logger.Warnw("inline assignment failed", "inquiry_id", inquiryID, "assignee_id", req.AssigneeID, "error", err)
		c.JSON(http.StatusOK, gin.H{"success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"assignee_name": result.AssigneeName,
	})
}

// AddResponse handles POST /api/inquiries/:id/responses
func (h *InquiryHandler) AddResponse(c *gin.Context) {
	inquiryID, err := utils.ParseIDParam(c, "id", "inquiry")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.addResponseUC.Execute(c.Request.Context(), usecases.AddResponseCommand{
		InquiryID:   inquiryID,
		ResponderID: middleware.UserID(c),
		Content:     req.Content,
		IsInternal:  req.IsInternal,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Response added successfully")
}

// AddAttachment handles POST /api/inquiries/:id/attachments as a multipart
// upload with the file under the "file" field.
func (h *InquiryHandler) AddAttachment(c *gin.Context) {
	inquiryID, err := utils.ParseIDParam(c, "id", "inquiry")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "file field is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Errorw("failed to open uploaded file", "inquiry_id", inquiryID, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "failed to read uploaded file")
		return
	}
	defer file.Close()

	result, err := h.addAttachmentUC.Execute(c.Request.Context(), usecases.AddAttachmentCommand{
		InquiryID:   inquiryID,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Data:        file,
		UploadedBy:  middleware.UserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Attachment uploaded successfully")
}
