package inquiry

import (
	"time"

	"github.com/gin-gonic/gin"

	"aster/internal/application/inquiry/usecases"
	"aster/internal/shared/utils"
)

type CreateInquiryRequest struct {
	Title         string   `json:"title" binding:"required,max=200"`
	Content       string   `json:"content" binding:"required"`
	CustomerName  string   `json:"customer_name" binding:"required,max=100"`
	CustomerEmail string   `json:"customer_email" binding:"required,email"`
	CustomerPhone string   `json:"customer_phone"`
	Priority      string   `json:"priority"`
	CategoryID    *uint    `json:"category_id"`
	Tags          []string `json:"tags"`
}

func (r CreateInquiryRequest) ToCommand() usecases.CreateInquiryCommand {
	return usecases.CreateInquiryCommand{
		Title:         r.Title,
		Content:       r.Content,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Priority:      r.Priority,
		CategoryID:    r.CategoryID,
		Tags:          r.Tags,
	}
}

type UpdateInquiryRequest struct {
	Title         string   `json:"title" binding:"required,max=200"`
	Content       string   `json:"content" binding:"required"`
	CustomerName  string   `json:"customer_name" binding:"required,max=100"`
	CustomerEmail string   `json:"customer_email" binding:"required,email"`
	CustomerPhone string `json:"customer_phone"`
	// Status is optional; omitting it keeps the current status.
	Status   string `json:"status"`
	Priority string `json:"priority"`
	// AssigneeID is optional; zero clears the assignment.
	AssigneeID *uint    `json:"assignee_id"`
	CategoryID *uint    `json:"category_id"`
	Tags       []string `json:"tags"`
}

func (r UpdateInquiryRequest) ToCommand(inquiryID uint) usecases.UpdateInquiryCommand {
	return usecases.UpdateInquiryCommand{
		InquiryID:     inquiryID,
		Title:         r.Title,
		Content:       r.Content,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Status:        r.Status,
		Priority:      r.Priority,
		AssigneeID:    r.AssigneeID,
		CategoryID:    r.CategoryID,
		Tags:          r.Tags,
	}
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AssignInquiryRequest struct {
	// AssigneeID of zero clears the assignment.
	AssigneeID uint `json:"assignee_id"`
}

type AddResponseRequest struct {
	Content    string `json:"content" binding:"required"`
	IsInternal bool   `json:"is_internal"`
}

// ListInquiriesRequest collects the raw query string filters; unparseable
// values are treated as absent downstream.
type ListInquiriesRequest struct {
	Keyword    string
	Status     string
	Priority   string
	CategoryID *uint
	AssigneeID *uint
	DateFrom   *time.Time
	DateTo     *time.Time
	Page       int
}

func parseListInquiriesRequest(c *gin.Context) ListInquiriesRequest {
	req := ListInquiriesRequest{
		Keyword:    c.Query("keyword"),
		Status:     c.Query("status"),
		Priority:   c.Query("priority"),
		CategoryID: utils.ParseUintQuery(c, "category_id"),
		AssigneeID: utils.ParseUintQuery(c, "assignee_id"),
		Page:       utils.ParsePageQuery(c),
	}

	if raw := c.Query("date_from"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			req.DateFrom = &t
		}
	}
	if raw := c.Query("date_to"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			end := t.Add(24*time.Hour - time.Millisecond)
			req.DateTo = &end
		}
	}

	return req
}

func (r ListInquiriesRequest) ToQuery() usecases.ListInquiriesQuery {
	return usecases.ListInquiriesQuery{
		Keyword:    r.Keyword,
		Status:     r.Status,
		Priority:   r.Priority,
		CategoryID: r.CategoryID,
		AssigneeID: r.AssigneeID,
		DateFrom:   r.DateFrom,
		DateTo:     r.DateTo,
		Page:       r.Page,
	}
}
