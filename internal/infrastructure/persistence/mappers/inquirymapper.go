package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"aster/internal/domain/inquiry"
	vo "aster/internal/domain/inquiry/valueobjects"
	"aster/internal/infrastructure/persistence/models"
)

// attachmentMeta is the JSON shape stored in the attachment meta column.
type attachmentMeta struct {
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// InquiryMapper handles the conversion between Inquiry domain entities and persistence models.
type InquiryMapper interface {
	// ToModel converts an inquiry domain entity to a persistence model.
	// Tags are persisted separately through the tag join table.
	ToModel(i *inquiry.Inquiry) *models.InquiryModel

	// ToDomain converts an inquiry persistence model to a domain entity.
	// Responses and attachments must be loaded separately by the repository.
	ToDomain(model *models.InquiryModel, tags []string) (*inquiry.Inquiry, error)

	// ResponseToModel converts a response domain entity to a persistence model.
	ResponseToModel(r *inquiry.Response) *models.ResponseModel

	// ResponseToDomain converts a response persistence model to a domain entity.
	ResponseToDomain(model *models.ResponseModel) (*inquiry.Response, error)

	// AttachmentToModel converts an attachment domain entity to a persistence model.
	AttachmentToModel(a *inquiry.Attachment) (*models.AttachmentModel, error)

	// AttachmentToDomain converts an attachment persistence model to a domain entity.
	AttachmentToDomain(model *models.AttachmentModel) (*inquiry.Attachment, error)
}

// InquiryMapperImpl is the concrete implementation of InquiryMapper.
type InquiryMapperImpl struct{}

// NewInquiryMapper creates a new InquiryMapper.
func NewInquiryMapper() InquiryMapper {
	return &InquiryMapperImpl{}
}

// ToModel converts an inquiry domain entity to a persistence model.
func (m *InquiryMapperImpl) ToModel(i *inquiry.Inquiry) *models.InquiryModel {
	model := &models.InquiryModel{
		ID:            i.ID(),
		Title:         i.Title(),
		Content:       i.Content(),
		CustomerName:  i.CustomerName(),
		CustomerEmail: i.CustomerEmail(),
		CustomerPhone: i.CustomerPhone(),
		Status:        i.Status().String(),
		Priority:      i.Priority().String(),
		CategoryID:    i.CategoryID(),
		AssigneeID:    i.AssigneeID(),
		CreatedAt:     i.CreatedAt().UnixMilli(),
		UpdatedAt:     i.UpdatedAt().UnixMilli(),
	}

	if i.ResolvedAt() != nil {
		resolved := i.ResolvedAt().UnixMilli()
		model.ResolvedAt = &resolved
	}

	return model
}

// ToDomain converts an inquiry persistence model to a domain entity.
func (m *InquiryMapperImpl) ToDomain(model *models.InquiryModel, tags []string) (*inquiry.Inquiry, error) {
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid stored status (id=%d): %w", model.ID, err)
	}

	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("invalid stored priority (id=%d): %w", model.ID, err)
	}

	var resolvedAt *time.Time
	if model.ResolvedAt != nil {
		t := convertMillisToTime(*model.ResolvedAt)
		resolvedAt = &t
	}

	return inquiry.ReconstructInquiry(
		model.ID,
		model.Title,
		model.Content,
		model.CustomerName,
		model.CustomerEmail,
		model.CustomerPhone,
		status,
		priority,
		model.CategoryID,
		model.AssigneeID,
		tags,
		convertMillisToTime(model.CreatedAt),
		convertMillisToTime(model.UpdatedAt),
		resolvedAt,
	)
}

// ResponseToModel converts a response domain entity to a persistence model.
func (m *InquiryMapperImpl) ResponseToModel(r *inquiry.Response) *models.ResponseModel {
	return &models.ResponseModel{
		ID:          r.ID(),
		InquiryID:   r.InquiryID(),
		ResponderID: r.ResponderID(),
		Content:     r.Content(),
		IsInternal:  r.IsInternal(),
		CreatedAt:   r.CreatedAt().UnixMilli(),
	}
}

// ResponseToDomain converts a response persistence model to a domain entity.
func (m *InquiryMapperImpl) ResponseToDomain(model *models.ResponseModel) (*inquiry.Response, error) {
	return inquiry.ReconstructResponse(
		model.ID,
		model.InquiryID,
		model.ResponderID,
		model.Content,
		model.IsInternal,
		convertMillisToTime(model.CreatedAt),
	)
}

// AttachmentToModel converts an attachment domain entity to a persistence model.
func (m *InquiryMapperImpl) AttachmentToModel(a *inquiry.Attachment) (*models.AttachmentModel, error) {
	meta, err := json.Marshal(attachmentMeta{
		ContentType: a.ContentType(),
		Size:        a.Size(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal attachment meta: %w", err)
	}

	return &models.AttachmentModel{
		ID:         a.ID(),
		InquiryID:  a.InquiryID(),
		StorageKey: a.StorageKey(),
		Filename:   a.Filename(),
		Meta:       meta,
		UploadedAt: a.UploadedAt().UnixMilli(),
	}, nil
}

// AttachmentToDomain converts an attachment persistence model to a domain entity.
func (m *InquiryMapperImpl) AttachmentToDomain(model *models.AttachmentModel) (*inquiry.Attachment, error) {
	var meta attachmentMeta
	if len(model.Meta) > 0 {
		if err := json.Unmarshal(model.Meta, &meta); err != nil {
			return nil, fmt.Errorf("failed to unmarshal attachment meta (id=%d): %w", model.ID, err)
		}
	}

	return inquiry.ReconstructAttachment(
		model.ID,
		model.InquiryID,
		model.StorageKey,
		model.Filename,
		meta.ContentType,
		meta.Size,
		convertMillisToTime(model.UploadedAt),
	)
}
