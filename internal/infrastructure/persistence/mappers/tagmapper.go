package mappers

import (
	"aster/internal/domain/tag"
	"aster/internal/infrastructure/persistence/models"
)

// TagMapper handles the conversion between Tag domain entities and persistence models.
type TagMapper interface {
	ToModel(t *tag.Tag) *models.TagModel
	ToDomain(model *models.TagModel) (*tag.Tag, error)
}

// TagMapperImpl is the concrete implementation of TagMapper.
type TagMapperImpl struct{}

// NewTagMapper creates a new TagMapper.
func NewTagMapper() TagMapper {
	return &TagMapperImpl{}
}

func (m *TagMapperImpl) ToModel(t *tag.Tag) *models.TagModel {
	return &models.TagModel{
		ID:        t.ID(),
		Name:      t.Name(),
		CreatedAt: t.CreatedAt().UnixMilli(),
	}
}

func (m *TagMapperImpl) ToDomain(model *models.TagModel) (*tag.Tag, error) {
	return tag.ReconstructTag(
		model.ID,
		model.Name,
		convertMillisToTime(model.CreatedAt),
	)
}
