package dto

import (
	"time"

	"aster/internal/domain/inquiry"
)

type InquiryDTO struct {
	ID            uint            `json:"id"`
	Title         string          `json:"title"`
	Content       string          `json:"content"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	CustomerPhone string          `json:"customer_phone,omitempty"`
	Status        string          `json:"status"`
	StatusLabel   string          `json:"status_label"`
	Priority      string          `json:"priority"`
	PriorityLabel string          `json:"priority_label"`
	CategoryID    *uint           `json:"category_id"`
	AssigneeID    *uint           `json:"assignee_id"`
	AssigneeName  string          `json:"assignee_name,omitempty"`
	Tags          []string        `json:"tags"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	ResolvedAt    *time.Time      `json:"resolved_at"`
	Responses     []ResponseDTO   `json:"responses"`
	Attachments   []AttachmentDTO `json:"attachments"`
}

type ResponseDTO struct {
	ID            uint      `json:"id"`
	ResponderID   uint      `json:"responder_id"`
	ResponderName string    `json:"responder_name,omitempty"`
	Content       string    `json:"content"`
	IsInternal    bool      `json:"is_internal"`
	CreatedAt     time.Time `json:"created_at"`
}

type AttachmentDTO struct {
	ID          uint      `json:"id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

type InquiryListItemDTO struct {
	ID            uint       `json:"id"`
	Title         string     `json:"title"`
	CustomerName  string     `json:"customer_name"`
	Status        string     `json:"status"`
	StatusLabel   string     `json:"status_label"`
	Priority      string     `json:"priority"`
	PriorityLabel string     `json:"priority_label"`
	CategoryID    *uint      `json:"category_id"`
	AssigneeID    *uint      `json:"assignee_id"`
	AssigneeName  string     `json:"assignee_name,omitempty"`
	Tags          []string   `json:"tags"`
	CreatedAt     time.Time  `json:"created_at"`
	ResolvedAt    *time.Time `json:"resolved_at"`
}

// ToInquiryDTO converts an inquiry with its loaded responses and attachments.
// Internal responses are dropped for non-staff viewers.
func ToInquiryDTO(inq *inquiry.Inquiry, viewerIsStaff bool) *InquiryDTO {
	if inq == nil {
		return nil
	}

	responses := make([]ResponseDTO, 0, len(inq.Responses()))
	for _, r := range inq.Responses() {
		if r.IsInternal() && !viewerIsStaff {
			continue
		}
		responses = append(responses, ToResponseDTO(r))
	}

	attachments := make([]AttachmentDTO, 0, len(inq.Attachments()))
	for _, a := range inq.Attachments() {
		attachments = append(attachments, ToAttachmentDTO(a))
	}

	return &InquiryDTO{
		ID:            inq.ID(),
		Title:         inq.Title(),
		Content:       inq.Content(),
		CustomerName:  inq.CustomerName(),
		CustomerEmail: inq.CustomerEmail(),
		CustomerPhone: inq.CustomerPhone(),
		Status:        inq.Status().String(),
		StatusLabel:   inq.Status().Label(),
		Priority:      inq.Priority().String(),
		PriorityLabel: inq.Priority().Label(),
		CategoryID:    inq.CategoryID(),
		AssigneeID:    inq.AssigneeID(),
		Tags:          inq.Tags(),
		CreatedAt:     inq.CreatedAt(),
		UpdatedAt:     inq.UpdatedAt(),
		ResolvedAt:    inq.ResolvedAt(),
		Responses:     responses,
		Attachments:   attachments,
	}
}

func ToResponseDTO(r *inquiry.Response) ResponseDTO {
	return ResponseDTO{
		ID:          r.ID(),
		ResponderID: r.ResponderID(),
		Content:     r.Content(),
		IsInternal:  r.IsInternal(),
		CreatedAt:   r.CreatedAt(),
	}
}

func ToAttachmentDTO(a *inquiry.Attachment) AttachmentDTO {
	return AttachmentDTO{
		ID:          a.ID(),
		Filename:    a.Filename(),
		ContentType: a.ContentType(),
		Size:        a.Size(),
		UploadedAt:  a.UploadedAt(),
	}
}

func ToInquiryListItemDTO(inq *inquiry.Inquiry) InquiryListItemDTO {
	return InquiryListItemDTO{
		ID:            inq.ID(),
		Title:         inq.Title(),
		CustomerName:  inq.CustomerName(),
		Status:        inq.Status().String(),
		StatusLabel:   inq.Status().Label(),
		Priority:      inq.Priority().String(),
		PriorityLabel: inq.Priority().Label(),
		CategoryID:    inq.CategoryID(),
		AssigneeID:    inq.AssigneeID(),
		Tags:          inq.Tags(),
		CreatedAt:     inq.CreatedAt(),
		ResolvedAt:    inq.ResolvedAt(),
	}
}
