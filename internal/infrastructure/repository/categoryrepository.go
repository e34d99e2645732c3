package repository

import (
	"context"
	"fmt"
	"sort"

	"gorm.io/gorm"

	"aster/internal/domain/category"
	"aster/internal/infrastructure/persistence/mappers"
	"aster/internal/infrastructure/persistence/models"
	db "aster/internal/shared/db"
	"aster/internal/shared/errors"
	"aster/internal/shared/logger"
)

// CategoryRepositoryImpl persists the category forest. Hierarchy walks run in
// application code over the parent pointers so the queries stay portable
// across MySQL and SQLite.
type CategoryRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CategoryMapper
	logger logger.Interface
}

func NewCategoryRepository(database *gorm.DB, log logger.Interface) category.Repository {
	return &CategoryRepositoryImpl{
		db:     database,
		mapper: mappers.NewCategoryMapper(),
		logger: log,
	}
}

func (r *CategoryRepositoryImpl) Save(ctx context.Context, cat *category.Category) error {
	model := r.mapper.ToModel(cat)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create category", "error", err, "name", model.Name)
		return fmt.Errorf("failed to save category: %w", err)
	}

	return cat.SetID(model.ID)
}

func (r *CategoryRepositoryImpl) Update(ctx context.Context, cat *category.Category) error {
	model := r.mapper.ToModel(cat)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.CategoryModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":        model.Name,
			"description": model.Description,
			"parent_id":   model.ParentID,
			"updated_at":  model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update category", "error", result.Error, "id", model.ID)
		return fmt.Errorf("failed to update category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("category not found")
	}

	return nil
}

func (r *CategoryRepositoryImpl) FindByID(ctx context.Context, id uint) (*category.Category, error) {
	var model models.CategoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("category not found")
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CategoryRepositoryImpl) ListChildren(ctx context.Context, parentID *uint) ([]*category.Category, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.CategoryModel{}).Order("name ASC")

	if parentID == nil {
		query = query.Where("parent_id IS NULL")
	} else {
		query = query.Where("parent_id = ?", *parentID)
	}

	var categoryModels []models.CategoryModel
	if err := query.Find(&categoryModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list child categories: %w", err)
	}

	return r.toDomainList(categoryModels)
}

func (r *CategoryRepositoryImpl) ListAll(ctx context.Context) ([]*category.Category, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var categoryModels []models.CategoryModel
	if err := tx.Model(&models.CategoryModel{}).Order("name ASC").Find(&categoryModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return r.toDomainList(categoryModels)
}

func (r *CategoryRepositoryImpl) SubtreeIDs(ctx context.Context, id uint) ([]uint, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []struct {
		ID       uint
		ParentID *uint
	}
	if err := tx.Model(&models.CategoryModel{}).Select("id, parent_id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load category hierarchy: %w", err)
	}

	children := make(map[uint][]uint, len(rows))
	exists := false
	for _, row := range rows {
		if row.ID == id {
			exists = true
		}
		if row.ParentID != nil {
			children[*row.ParentID] = append(children[*row.ParentID], row.ID)
		}
	}
	if !exists {
		return nil, errors.NewNotFoundError("category not found")
	}

	ids := []uint{id}
	for i := 0; i < len(ids); i++ {
		ids = append(ids, children[ids[i]]...)
	}

	return ids, nil
}

func (r *CategoryRepositoryImpl) CountReferences(ctx context.Context, id uint) (*category.ReferenceCount, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.CategoryModel
	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("category not found")
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	var inquiries int64
	if err := tx.Model(&models.InquiryModel{}).Where("category_id = ?", id).Count(&inquiries).Error; err != nil {
		return nil, fmt.Errorf("failed to count inquiry references: %w", err)
	}

	var articles int64
	if err := tx.Model(&models.ArticleModel{}).Where("category_id = ?", id).Count(&articles).Error; err != nil {
		return nil, fmt.Errorf("failed to count article references: %w", err)
	}

	return &category.ReferenceCount{
		CategoryID: id,
		Name:       model.Name,
		Inquiries:  inquiries,
		Articles:   articles,
	}, nil
}

func (r *CategoryRepositoryImpl) TopByReferences(ctx context.Context, limit int) ([]category.ReferenceCount, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var categoryModels []models.CategoryModel
	if err := tx.Model(&models.CategoryModel{}).Find(&categoryModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	type countRow struct {
		CategoryID uint
		Count      int64
	}

	var inquiryCounts []countRow
	if err := tx.Model(&models.InquiryModel{}).
		Select("category_id, COUNT(*) as count").
		Where("category_id IS NOT NULL").
		Group("category_id").
		Scan(&inquiryCounts).Error; err != nil {
		return nil, fmt.Errorf("failed to count inquiry references: %w", err)
	}

	var articleCounts []countRow
	if err := tx.Model(&models.ArticleModel{}).
		Select("category_id, COUNT(*) as count").
		Where("category_id IS NOT NULL").
		Group("category_id").
		Scan(&articleCounts).Error; err != nil {
		return nil, fmt.Errorf("failed to count article references: %w", err)
	}

	inquiriesByID := make(map[uint]int64, len(inquiryCounts))
	for _, row := range inquiryCounts {
		inquiriesByID[row.CategoryID] = row.Count
	}
	articlesByID := make(map[uint]int64, len(articleCounts))
	for _, row := range articleCounts {
		articlesByID[row.CategoryID] = row.Count
	}

	counts := make([]category.ReferenceCount, 0, len(categoryModels))
	for _, model := range categoryModels {
		counts = append(counts, category.ReferenceCount{
			CategoryID: model.ID,
			Name:       model.Name,
			Inquiries:  inquiriesByID[model.ID],
			Articles:   articlesByID[model.ID],
		})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		if counts[i].Total() != counts[j].Total() {
			return counts[i].Total() > counts[j].Total()
		}
		return counts[i].Name < counts[j].Name
	})

	if limit > 0 && len(counts) > limit {
		counts = counts[:limit]
	}

	return counts, nil
}

func (r *CategoryRepositoryImpl) Delete(ctx context.Context, id uint) error {
	ids, err := r.SubtreeIDs(ctx, id)
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(txn *gorm.DB) error {
		if err := txn.Model(&models.InquiryModel{}).
			Where("category_id IN ?", ids).
			Update("category_id", nil).Error; err != nil {
			return fmt.Errorf("failed to clear inquiry category references: %w", err)
		}

		if err := txn.Model(&models.ArticleModel{}).
			Where("category_id IN ?", ids).
			Update("category_id", nil).Error; err != nil {
			return fmt.Errorf("failed to clear article category references: %w", err)
		}

		result := txn.Delete(&models.CategoryModel{}, "id IN ?", ids)
		if result.Error != nil {
			return fmt.Errorf("failed to delete category subtree: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("category not found")
		}

		r.logger.Infow("category subtree deleted", "root_id", id, "removed", result.RowsAffected)
		return nil
	})
}

func (r *CategoryRepositoryImpl) toDomainList(categoryModels []models.CategoryModel) ([]*category.Category, error) {
	categories := make([]*category.Category, len(categoryModels))
	for i, model := range categoryModels {
		cat, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		categories[i] = cat
	}
	return categories, nil
}
