package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"aster/internal/domain/inquiry"
	vo "aster/internal/domain/inquiry/valueobjects"
	"aster/internal/infrastructure/persistence/mappers"
	"aster/internal/infrastructure/persistence/models"
	db "aster/internal/shared/db"
	"aster/internal/shared/errors"
	"aster/internal/shared/logger"
)

type InquiryRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.InquiryMapper
	logger logger.Interface
}

func NewInquiryRepository(database *gorm.DB, log logger.Interface) inquiry.Repository {
	return &InquiryRepositoryImpl{
		db:     database,
		mapper: mappers.NewInquiryMapper(),
		logger: log,
	}
}

func (r *InquiryRepositoryImpl) Save(ctx context.Context, inq *inquiry.Inquiry) error {
	model := r.mapper.ToModel(inq)
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(txn *gorm.DB) error {
		if err := txn.Create(model).Error; err != nil {
			r.logger.Errorw("failed to create inquiry", "error", err, "title", model.Title)
			return fmt.Errorf("failed to save inquiry: %w", err)
		}

		if err := inq.SetID(model.ID); err != nil {
			return err
		}

		return replaceInquiryTagLinks(txn, model.ID, inq.Tags())
	})
}

func (r *InquiryRepositoryImpl) Update(ctx context.Context, inq *inquiry.Inquiry) error {
	model := r.mapper.ToModel(inq)
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(txn *gorm.DB) error {
		result := txn.Model(&models.InquiryModel{}).
			Where("id = ?", model.ID).
			Updates(map[string]interface{}{
				"title":          model.Title,
				"content":        model.Content,
				"customer_name":  model.CustomerName,
				"customer_email": model.CustomerEmail,
				"customer_phone": model.CustomerPhone,
				"priority":       model.Priority,
				"category_id":    model.CategoryID,
				"assignee_id":    model.AssigneeID,
				"updated_at":     model.UpdatedAt,
			})

		if result.Error != nil {
			r.logger.Errorw("failed to update inquiry", "error", result.Error, "id", model.ID)
			return fmt.Errorf("failed to update inquiry: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			var count int64
			txn.Model(&models.InquiryModel{}).Where("id = ?", model.ID).Count(&count)
			if count == 0 {
				return errors.NewNotFoundError("inquiry not found")
			}
		}

		return replaceInquiryTagLinks(txn, model.ID, inq.Tags())
	})
}

func (r *InquiryRepositoryImpl) UpdateStatus(ctx context.Context, inq *inquiry.Inquiry) error {
	model := r.mapper.ToModel(inq)
	tx := db.GetTxFromContext(ctx, r.db)

	// COALESCE lets the database enforce stamp-once semantics: the first
	// resolution timestamp sticks and no later transition can clear it.
	result := tx.Model(&models.InquiryModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"status":      model.Status,
			"resolved_at": gorm.Expr("COALESCE(resolved_at, ?)", model.ResolvedAt),
			"updated_at":  model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update inquiry status", "error", result.Error, "id", model.ID)
		return fmt.Errorf("failed to update inquiry status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		var count int64
		tx.Model(&models.InquiryModel{}).Where("id = ?", model.ID).Count(&count)
		if count == 0 {
			return errors.NewNotFoundError("inquiry not found")
		}
	}

	return nil
}

func (r *InquiryRepositoryImpl) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(txn *gorm.DB) error {
		result := txn.Delete(&models.InquiryModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete inquiry: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("inquiry not found")
		}

		if err := txn.Where("inquiry_id = ?", id).Delete(&models.ResponseModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete inquiry responses: %w", err)
		}
		if err := txn.Where("inquiry_id = ?", id).Delete(&models.AttachmentModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete inquiry attachments: %w", err)
		}
		if err := txn.Where("inquiry_id = ?", id).Delete(&models.InquiryTagModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete inquiry tag links: %w", err)
		}
		if err := txn.Where("inquiry_id = ?", id).Delete(&models.ArticleInquiryModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete article links: %w", err)
		}

		r.logger.Infow("inquiry deleted", "id", id)
		return nil
	})
}

func (r *InquiryRepositoryImpl) FindByID(ctx context.Context, id uint) (*inquiry.Inquiry, error) {
	var model models.InquiryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("inquiry not found")
		}
		return nil, fmt.Errorf("failed to find inquiry: %w", err)
	}

	tags, err := loadInquiryTagNames(tx, model.ID)
	if err != nil {
		return nil, err
	}

	inq, err := r.mapper.ToDomain(&model, tags)
	if err != nil {
		return nil, err
	}

	responses, err := r.FindResponsesByInquiryID(ctx, model.ID)
	if err != nil {
		return nil, err
	}
	inq.AttachResponses(responses)

	attachments, err := r.FindAttachmentsByInquiryID(ctx, model.ID)
	if err != nil {
		return nil, err
	}
	inq.AttachAttachments(attachments)

	return inq, nil
}

func (r *InquiryRepositoryImpl) List(ctx context.Context, filter inquiry.Filter) ([]*inquiry.Inquiry, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.InquiryModel{})

	if filter.Keyword != "" {
		keyword := "%" + strings.ToLower(filter.Keyword) + "%"
		tagMatch := tx.Session(&gorm.Session{NewDB: true}).
			Table("inquiry_tags").
			Select("inquiry_tags.inquiry_id").
			Joins("JOIN tags ON tags.id = inquiry_tags.tag_id").
			Where("LOWER(tags.name) LIKE ?", keyword)

		query = query.Where(
			tx.Session(&gorm.Session{NewDB: true}).
				Where("LOWER(title) LIKE ?", keyword).
				Or("LOWER(content) LIKE ?", keyword).
				Or("LOWER(customer_name) LIKE ?", keyword).
				Or("LOWER(customer_email) LIKE ?", keyword).
				Or("id IN (?)", tagMatch),
		)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}
	if filter.DateFrom != nil {
		query = query.Where("created_at >= ?", filter.DateFrom.UnixMilli())
	}
	if filter.DateTo != nil {
		query = query.Where("created_at <= ?", filter.DateTo.UnixMilli())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count inquiries: %w", err)
	}

	var inquiryModels []models.InquiryModel
	if err := query.
		Order("created_at DESC, id DESC").
		Limit(filter.Limit()).
		Offset(filter.Offset()).
		Find(&inquiryModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list inquiries: %w", err)
	}

	tagsByInquiry, err := loadTagNamesForInquiries(tx, inquiryModels)
	if err != nil {
		return nil, 0, err
	}

	inquiries := make([]*inquiry.Inquiry, len(inquiryModels))
	for i, model := range inquiryModels {
		inq, err := r.mapper.ToDomain(&model, tagsByInquiry[model.ID])
		if err != nil {
			return nil, 0, err
		}
		inquiries[i] = inq
	}

	return inquiries, total, nil
}

func (r *InquiryRepositoryImpl) Stats(ctx context.Context) (*inquiry.Stats, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	type groupRow struct {
		Value string
		Count int64
	}

	var statusRows []groupRow
	if err := tx.Model(&models.InquiryModel{}).
		Select("status as value, COUNT(*) as count").
		Group("status").
		Scan(&statusRows).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate inquiry statuses: %w", err)
	}

	var priorityRows []groupRow
	if err := tx.Model(&models.InquiryModel{}).
		Select("priority as value, COUNT(*) as count").
		Group("priority").
		Scan(&priorityRows).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate inquiry priorities: %w", err)
	}

	stats := &inquiry.Stats{
		ByStatus:   make(map[vo.Status]int64, len(statusRows)),
		ByPriority: make(map[vo.Priority]int64, len(priorityRows)),
	}

	for _, row := range statusRows {
		stats.ByStatus[vo.Status(row.Value)] = row.Count
		stats.Total += row.Count
	}
	for _, row := range priorityRows {
		stats.ByPriority[vo.Priority(row.Value)] = row.Count
	}

	stats.New = stats.ByStatus[vo.StatusNew]
	stats.InProgress = stats.ByStatus[vo.StatusInProgress]
	stats.Urgent = stats.ByPriority[vo.PriorityUrgent]

	return stats, nil
}

func (r *InquiryRepositoryImpl) CountByAssignee(ctx context.Context, limit int) ([]inquiry.AssigneeCount, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []struct {
		AssigneeID uint
		Count      int64
	}

	query := tx.Model(&models.InquiryModel{}).
		Select("assignee_id, COUNT(*) as count").
		Where("assignee_id IS NOT NULL").
		Where("status NOT IN ?", []string{vo.StatusResolved.String(), vo.StatusClosed.String()}).
		Group("assignee_id").
		Order("count DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count inquiries by assignee: %w", err)
	}

	counts := make([]inquiry.AssigneeCount, len(rows))
	for i, row := range rows {
		counts[i] = inquiry.AssigneeCount{AssigneeID: row.AssigneeID, Count: row.Count}
	}

	return counts, nil
}

func (r *InquiryRepositoryImpl) SaveResponse(ctx context.Context, resp *inquiry.Response) error {
	model := r.mapper.ResponseToModel(resp)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create response", "error", err, "inquiry_id", model.InquiryID)
		return fmt.Errorf("failed to save response: %w", err)
	}

	return resp.SetID(model.ID)
}

func (r *InquiryRepositoryImpl) FindResponsesByInquiryID(ctx context.Context, inquiryID uint) ([]*inquiry.Response, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var responseModels []models.ResponseModel
	if err := tx.
		Where("inquiry_id = ?", inquiryID).
		Order("created_at DESC, id DESC").
		Find(&responseModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find responses: %w", err)
	}

	responses := make([]*inquiry.Response, len(responseModels))
	for i, model := range responseModels {
		resp, err := r.mapper.ResponseToDomain(&model)
		if err != nil {
			return nil, err
		}
		responses[i] = resp
	}

	return responses, nil
}

func (r *InquiryRepositoryImpl) SaveAttachment(ctx context.Context, att *inquiry.Attachment) error {
	model, err := r.mapper.AttachmentToModel(att)
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create attachment", "error", err, "inquiry_id", model.InquiryID)
		return fmt.Errorf("failed to save attachment: %w", err)
	}

	return att.SetID(model.ID)
}

func (r *InquiryRepositoryImpl) FindAttachmentsByInquiryID(ctx context.Context, inquiryID uint) ([]*inquiry.Attachment, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var attachmentModels []models.AttachmentModel
	if err := tx.
		Where("inquiry_id = ?", inquiryID).
		Order("uploaded_at ASC, id ASC").
		Find(&attachmentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find attachments: %w", err)
	}

	attachments := make([]*inquiry.Attachment, len(attachmentModels))
	for i, model := range attachmentModels {
		att, err := r.mapper.AttachmentToDomain(&model)
		if err != nil {
			return nil, err
		}
		attachments[i] = att
	}

	return attachments, nil
}

// replaceInquiryTagLinks rewrites the tag join rows for an inquiry.
func replaceInquiryTagLinks(tx *gorm.DB, inquiryID uint, tags []string) error {
	if err := tx.Where("inquiry_id = ?", inquiryID).Delete(&models.InquiryTagModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear inquiry tag links: %w", err)
	}

	tagIDs, err := ensureTagIDs(tx, tags)
	if err != nil {
		return err
	}

	for _, tagID := range tagIDs {
		link := models.InquiryTagModel{InquiryID: inquiryID, TagID: tagID}
		if err := tx.Create(&link).Error; err != nil {
			return fmt.Errorf("failed to link inquiry tag: %w", err)
		}
	}

	return nil
}

func loadInquiryTagNames(tx *gorm.DB, inquiryID uint) ([]string, error) {
	var names []string
	if err := tx.Table("inquiry_tags").
		Select("tags.name").
		Joins("JOIN tags ON tags.id = inquiry_tags.tag_id").
		Where("inquiry_tags.inquiry_id = ?", inquiryID).
		Order("tags.name ASC").
		Scan(&names).Error; err != nil {
		return nil, fmt.Errorf("failed to load inquiry tags: %w", err)
	}
	return names, nil
}

func loadTagNamesForInquiries(tx *gorm.DB, inquiryModels []models.InquiryModel) (map[uint][]string, error) {
	if len(inquiryModels) == 0 {
		return map[uint][]string{}, nil
	}

	ids := make([]uint, len(inquiryModels))
	for i, model := range inquiryModels {
		ids[i] = model.ID
	}

	var rows []struct {
		InquiryID uint
		Name      string
	}
	if err := tx.Table("inquiry_tags").
		Select("inquiry_tags.inquiry_id, tags.name").
		Joins("JOIN tags ON tags.id = inquiry_tags.tag_id").
		Where("inquiry_tags.inquiry_id IN ?", ids).
		Order("tags.name ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load inquiry tags: %w", err)
	}

	tagsByInquiry := make(map[uint][]string, len(ids))
	for _, row := range rows {
		tagsByInquiry[row.InquiryID] = append(tagsByInquiry[row.InquiryID], row.Name)
	}

	return tagsByInquiry, nil
}
