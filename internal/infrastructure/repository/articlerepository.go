package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"aster/internal/domain/knowledge"
	"aster/internal/infrastructure/persistence/mappers"
	"aster/internal/infrastructure/persistence/models"
	db "aster/internal/shared/db"
	"aster/internal/shared/errors"
	"aster/internal/shared/logger"
)

type ArticleRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ArticleMapper
	logger logger.Interface
}

func NewArticleRepository(database *gorm.DB, log logger.Interface) knowledge.Repository {
	return &ArticleRepositoryImpl{
		db:     database,
		mapper: mappers.NewArticleMapper(),
		logger: log,
	}
}

func (r *ArticleRepositoryImpl) Save(ctx context.Context, article *knowledge.Article) error {
	model := r.mapper.ToModel(article)
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(txn *gorm.DB) error {
		if err := txn.Create(model).Error; err != nil {
			r.logger.Errorw("failed to create article", "error", err, "title", model.Title)
			return fmt.Errorf("failed to save article: %w", err)
		}

		if err := article.SetID(model.ID); err != nil {
			return err
		}

		if err := replaceArticleTagLinks(txn, model.ID, article.Tags()); err != nil {
			return err
		}

		return replaceArticleInquiryLinks(txn, model.ID, article.RelatedInquiryIDs())
	})
}

func (r *ArticleRepositoryImpl) Update(ctx context.Context, article *knowledge.Article) error {
	model := r.mapper.ToModel(article)
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(txn *gorm.DB) error {
		// The view counter is excluded; it only moves through IncrementViewAndFind.
		result := txn.Model(&models.ArticleModel{}).
			Where("id = ?", model.ID).
			Updates(map[string]interface{}{
				"title":       model.Title,
				"content":     model.Content,
				"category_id": model.CategoryID,
				"is_public":   model.IsPublic,
				"updated_at":  model.UpdatedAt,
			})

		if result.Error != nil {
			r.logger.Errorw("failed to update article", "error", result.Error, "id", model.ID)
			return fmt.Errorf("failed to update article: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			var count int64
			txn.Model(&models.ArticleModel{}).Where("id = ?", model.ID).Count(&count)
			if count == 0 {
				return errors.NewNotFoundError("article not found")
			}
		}

		if err := replaceArticleTagLinks(txn, model.ID, article.Tags()); err != nil {
			return err
		}

		return replaceArticleInquiryLinks(txn, model.ID, article.RelatedInquiryIDs())
	})
}

func (r *ArticleRepositoryImpl) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(txn *gorm.DB) error {
		result := txn.Delete(&models.ArticleModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete article: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("article not found")
		}

		if err := txn.Where("article_id = ?", id).Delete(&models.ArticleTagModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete article tag links: %w", err)
		}
		if err := txn.Where("article_id = ?", id).Delete(&models.ArticleInquiryModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete article inquiry links: %w", err)
		}

		r.logger.Infow("article deleted", "id", id)
		return nil
	})
}

func (r *ArticleRepositoryImpl) FindByID(ctx context.Context, id uint) (*knowledge.Article, error) {
	var model models.ArticleModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("article not found")
		}
		return nil, fmt.Errorf("failed to find article: %w", err)
	}

	return r.toDomain(tx, &model)
}

func (r *ArticleRepositoryImpl) IncrementViewAndFind(ctx context.Context, id uint) (*knowledge.Article, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	// Single UPDATE with a SQL expression so concurrent views never lose
	// increments to a read-modify-write race.
	result := tx.Model(&models.ArticleModel{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))

	if result.Error != nil {
		return nil, fmt.Errorf("failed to increment view count: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, errors.NewNotFoundError("article not found")
	}

	return r.FindByID(ctx, id)
}

func (r *ArticleRepositoryImpl) List(ctx context.Context, filter knowledge.Filter) ([]*knowledge.Article, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ArticleModel{})

	if filter.Keyword != "" {
		keyword := "%" + strings.ToLower(filter.Keyword) + "%"
		tagMatch := tx.Session(&gorm.Session{NewDB: true}).
			Table("article_tags").
			Select("article_tags.article_id").
			Joins("JOIN tags ON tags.id = article_tags.tag_id").
			Where("LOWER(tags.name) LIKE ?", keyword)

		query = query.Where(
			tx.Session(&gorm.Session{NewDB: true}).
				Where("LOWER(title) LIKE ?", keyword).
				Or("LOWER(content) LIKE ?", keyword).
				Or("id IN (?)", tagMatch),
		)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.AuthorID != nil {
		query = query.Where("author_id = ?", *filter.AuthorID)
	}
	if filter.IsPublic != nil {
		query = query.Where("is_public = ?", *filter.IsPublic)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count articles: %w", err)
	}

	var articleModels []models.ArticleModel
	if err := query.
		Order("updated_at DESC, id DESC").
		Limit(filter.Limit()).
		Offset(filter.Offset()).
		Find(&articleModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list articles: %w", err)
	}

	articles, err := r.toDomainList(tx, articleModels)
	if err != nil {
		return nil, 0, err
	}

	return articles, total, nil
}

func (r *ArticleRepositoryImpl) ListRecent(ctx context.Context, limit int) ([]*knowledge.Article, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var articleModels []models.ArticleModel
	query := tx.Model(&models.ArticleModel{}).Order("updated_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&articleModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list recent articles: %w", err)
	}

	return r.toDomainList(tx, articleModels)
}

func (r *ArticleRepositoryImpl) toDomain(tx *gorm.DB, model *models.ArticleModel) (*knowledge.Article, error) {
	var inquiryIDs []uint
	if err := tx.Table("article_inquiries").
		Select("inquiry_id").
		Where("article_id = ?", model.ID).
		Order("inquiry_id ASC").
		Scan(&inquiryIDs).Error; err != nil {
		return nil, fmt.Errorf("failed to load article inquiry links: %w", err)
	}

	var tags []string
	if err := tx.Table("article_tags").
		Select("tags.name").
		Joins("JOIN tags ON tags.id = article_tags.tag_id").
		Where("article_tags.article_id = ?", model.ID).
		Order("tags.name ASC").
		Scan(&tags).Error; err != nil {
		return nil, fmt.Errorf("failed to load article tags: %w", err)
	}

	return r.mapper.ToDomain(model, inquiryIDs, tags)
}

func (r *ArticleRepositoryImpl) toDomainList(tx *gorm.DB, articleModels []models.ArticleModel) ([]*knowledge.Article, error) {
	articles := make([]*knowledge.Article, len(articleModels))
	for i, model := range articleModels {
		article, err := r.toDomain(tx, &model)
		if err != nil {
			return nil, err
		}
		articles[i] = article
	}
	return articles, nil
}

func replaceArticleTagLinks(tx *gorm.DB, articleID uint, tags []string) error {
	if err := tx.Where("article_id = ?", articleID).Delete(&models.ArticleTagModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear article tag links: %w", err)
	}

	tagIDs, err := ensureTagIDs(tx, tags)
	if err != nil {
		return err
	}

	for _, tagID := range tagIDs {
		link := models.ArticleTagModel{ArticleID: articleID, TagID: tagID}
		if err := tx.Create(&link).Error; err != nil {
			return fmt.Errorf("failed to link article tag: %w", err)
		}
	}

	return nil
}

func replaceArticleInquiryLinks(tx *gorm.DB, articleID uint, inquiryIDs []uint) error {
	if err := tx.Where("article_id = ?", articleID).Delete(&models.ArticleInquiryModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear article inquiry links: %w", err)
	}

	for _, inquiryID := range inquiryIDs {
		link := models.ArticleInquiryModel{ArticleID: articleID, InquiryID: inquiryID}
		if err := tx.Create(&link).Error; err != nil {
			return fmt.Errorf("failed to link article inquiry: %w", err)
		}
	}

	return nil
}
