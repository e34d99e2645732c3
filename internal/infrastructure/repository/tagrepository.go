package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"aster/internal/domain/tag"
	"aster/internal/infrastructure/persistence/mappers"
	"aster/internal/infrastructure/persistence/models"
	db "aster/internal/shared/db"
	"aster/internal/shared/logger"
)

type TagRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.TagMapper
	logger logger.Interface
}

func NewTagRepository(database *gorm.DB, log logger.Interface) tag.Repository {
	return &TagRepositoryImpl{
		db:     database,
		mapper: mappers.NewTagMapper(),
		logger: log,
	}
}

func (r *TagRepositoryImpl) FindOrCreate(ctx context.Context, names []string) ([]*tag.Tag, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	tags := make([]*tag.Tag, 0, len(names))
	for _, name := range tag.NormalizeAll(names) {
		model, err := firstOrCreateTag(tx, name)
		if err != nil {
			return nil, err
		}
		t, err := r.mapper.ToDomain(model)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}

	return tags, nil
}

func (r *TagRepositoryImpl) FindByNames(ctx context.Context, names []string) ([]*tag.Tag, error) {
	normalized := tag.NormalizeAll(names)
	if len(normalized) == 0 {
		return []*tag.Tag{}, nil
	}

	tx := db.GetTxFromContext(ctx, r.db)

	var tagModels []models.TagModel
	if err := tx.Where("name IN ?", normalized).Find(&tagModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find tags: %w", err)
	}

	return r.toDomainList(tagModels)
}

func (r *TagRepositoryImpl) ListAll(ctx context.Context) ([]*tag.Tag, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var tagModels []models.TagModel
	if err := tx.Model(&models.TagModel{}).Order("name ASC").Find(&tagModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	return r.toDomainList(tagModels)
}

func (r *TagRepositoryImpl) toDomainList(tagModels []models.TagModel) ([]*tag.Tag, error) {
	tags := make([]*tag.Tag, len(tagModels))
	for i, model := range tagModels {
		t, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		tags[i] = t
	}
	return tags, nil
}

// firstOrCreateTag resolves a normalized name to its tag row, creating it on
// first use. Races on the unique name index fall back to a re-read.
func firstOrCreateTag(tx *gorm.DB, name string) (*models.TagModel, error) {
	var model models.TagModel
	err := tx.Where("name = ?", name).First(&model).Error
	if err == nil {
		return &model, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("failed to find tag: %w", err)
	}

	model = models.TagModel{Name: name}
	if err := tx.Create(&model).Error; err != nil {
		var existing models.TagModel
		if retryErr := tx.Where("name = ?", name).First(&existing).Error; retryErr == nil {
			return &existing, nil
		}
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}

	return &model, nil
}

// ensureTagIDs resolves normalized tag names to ids, creating missing tags.
func ensureTagIDs(tx *gorm.DB, names []string) ([]uint, error) {
	ids := make([]uint, 0, len(names))
	for _, name := range tag.NormalizeAll(names) {
		model, err := firstOrCreateTag(tx, name)
		if err != nil {
			return nil, err
		}
		ids = append(ids, model.ID)
	}
	return ids, nil
}
