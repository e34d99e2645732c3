package mappers

import (
	"aster/internal/domain/knowledge"
	"aster/internal/infrastructure/persistence/models"
)

// ArticleMapper handles the conversion between Article domain entities and persistence models.
type ArticleMapper interface {
	// ToModel converts an article domain entity to a persistence model.
	// Tags and related inquiry links are persisted separately through join tables.
	ToModel(a *knowledge.Article) *models.ArticleModel

	// ToDomain converts an article persistence model to a domain entity.
	ToDomain(model *models.ArticleModel, relatedInquiryIDs []uint, tags []string) (*knowledge.Article, error)
}

// ArticleMapperImpl is the concrete implementation of ArticleMapper.
type ArticleMapperImpl struct{}

// NewArticleMapper creates a new ArticleMapper.
func NewArticleMapper() ArticleMapper {
	return &ArticleMapperImpl{}
}

// ToModel converts an article domain entity to a persistence model.
func (m *ArticleMapperImpl) ToModel(a *knowledge.Article) *models.ArticleModel {
	return &models.ArticleModel{
		ID:         a.ID(),
		Title:      a.Title(),
		Content:    a.Content(),
		CategoryID: a.CategoryID(),
		AuthorID:   a.AuthorID(),
		IsPublic:   a.IsPublic(),
		ViewCount:  a.ViewCount(),
		CreatedAt:  a.CreatedAt().UnixMilli(),
		UpdatedAt:  a.UpdatedAt().UnixMilli(),
	}
}

// ToDomain converts an article persistence model to a domain entity.
func (m *ArticleMapperImpl) ToDomain(model *models.ArticleModel, relatedInquiryIDs []uint, tags []string) (*knowledge.Article, error) {
	return knowledge.ReconstructArticle(
		model.ID,
		model.Title,
		model.Content,
		model.CategoryID,
		model.AuthorID,
		model.IsPublic,
		model.ViewCount,
		relatedInquiryIDs,
		tags,
		convertMillisToTime(model.CreatedAt),
		convertMillisToTime(model.UpdatedAt),
	)
}
