package mappers

import (
	"time"

	"aster/internal/domain/category"
	"aster/internal/infrastructure/persistence/models"
)

// CategoryMapper handles the conversion between Category domain entities and persistence models.
type CategoryMapper interface {
	// ToModel converts a category domain entity to a persistence model.
	ToModel(c *category.Category) *models.CategoryModel

	// ToDomain converts a category persistence model to a domain entity.
	ToDomain(model *models.CategoryModel) (*category.Category, error)
}

// CategoryMapperImpl is the concrete implementation of CategoryMapper.
type CategoryMapperImpl struct{}

// NewCategoryMapper creates a new CategoryMapper.
func NewCategoryMapper() CategoryMapper {
	return &CategoryMapperImpl{}
}

// ToModel converts a category domain entity to a persistence model.
func (m *CategoryMapperImpl) ToModel(c *category.Category) *models.CategoryModel {
	return &models.CategoryModel{
		ID:          c.ID(),
		Name:        c.Name(),
		Description: c.Description(),
		ParentID:    c.ParentID(),
		CreatedAt:   c.CreatedAt().UnixMilli(),
		UpdatedAt:   c.UpdatedAt().UnixMilli(),
	}
}

// ToDomain converts a category persistence model to a domain entity.
func (m *CategoryMapperImpl) ToDomain(model *models.CategoryModel) (*category.Category, error) {
	return category.ReconstructCategory(
		model.ID,
		model.Name,
		model.Description,
		model.ParentID,
		convertMillisToTime(model.CreatedAt),
		convertMillisToTime(model.UpdatedAt),
	)
}

func convertMillisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond))
}
