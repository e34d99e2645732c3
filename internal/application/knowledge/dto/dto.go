package dto

import (
	"time"

	"aster/internal/domain/knowledge"
)

type ArticleDTO struct {
	ID                uint      `json:"id"`
	Title             string    `json:"title"`
	Content           string    `json:"content"`
	RenderedHTML      string    `json:"rendered_html,omitempty"`
	CategoryID        *uint     `json:"category_id"`
	AuthorID          uint      `json:"author_id"`
	AuthorName        string    `json:"author_name,omitempty"`
	IsPublic          bool      `json:"is_public"`
	ViewCount         uint      `json:"view_count"`
	RelatedInquiryIDs []uint    `json:"related_inquiry_ids"`
	Tags              []string  `json:"tags"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type ArticleListItemDTO struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title"`
	CategoryID *uint     `json:"category_id"`
	AuthorID   uint      `json:"author_id"`
	AuthorName string    `json:"author_name,omitempty"`
	IsPublic   bool      `json:"is_public"`
	ViewCount  uint      `json:"view_count"`
	Tags       []string  `json:"tags"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func ToArticleDTO(article *knowledge.Article) *ArticleDTO {
	if article == nil {
		return nil
	}

	return &ArticleDTO{
		ID:                article.ID(),
		Title:             article.Title(),
		Content:           article.Content(),
		CategoryID:        article.CategoryID(),
		AuthorID:          article.AuthorID(),
		IsPublic:          article.IsPublic(),
		ViewCount:         article.ViewCount(),
		RelatedInquiryIDs: article.RelatedInquiryIDs(),
		Tags:              article.Tags(),
		CreatedAt:         article.CreatedAt(),
		UpdatedAt:         article.UpdatedAt(),
	}
}

func ToArticleListItemDTO(article *knowledge.Article) ArticleListItemDTO {
	return ArticleListItemDTO{
		ID:         article.ID(),
		Title:      article.Title(),
		CategoryID: article.CategoryID(),
		AuthorID:   article.AuthorID(),
		IsPublic:   article.IsPublic(),
		ViewCount:  article.ViewCount(),
		Tags:       article.Tags(),
		UpdatedAt:  article.UpdatedAt(),
	}
}
