// Package knowledge models staff-authored reference articles, optionally
// linked back to the inquiries they originated from.
package knowledge

import (
	"fmt"
	"time"
)

type Article struct {
	id                uint
	title             string
	content           string
	categoryID        *uint
	authorID          uint
	isPublic          bool
	viewCount         uint
	relatedInquiryIDs []uint
	tags              []string
	createdAt         time.Time
	updatedAt         time.Time
}

func NewArticle(
	title string,
	content string,
	categoryID *uint,
	authorID uint,
	isPublic bool,
	relatedInquiryIDs []uint,
	tags []string,
) (*Article, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if relatedInquiryIDs == nil {
		relatedInquiryIDs = []uint{}
	}
	if tags == nil {
		tags = []string{}
	}

	now := time.Now()

	return &Article{
		title:             title,
		content:           content,
		categoryID:        categoryID,
		authorID:          authorID,
		isPublic:          isPublic,
		relatedInquiryIDs: relatedInquiryIDs,
		tags:              tags,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

func ReconstructArticle(
	id uint,
	title string,
	content string,
	categoryID *uint,
	authorID uint,
	isPublic bool,
	viewCount uint,
	relatedInquiryIDs []uint,
	tags []string,
	createdAt, updatedAt time.Time,
) (*Article, error) {
	if id == 0 {
		return nil, fmt.Errorf("article ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if relatedInquiryIDs == nil {
		relatedInquiryIDs = []uint{}
	}
	if tags == nil {
		tags = []string{}
	}

	return &Article{
		id:                id,
		title:             title,
		content:           content,
		categoryID:        categoryID,
		authorID:          authorID,
		isPublic:          isPublic,
		viewCount:         viewCount,
		relatedInquiryIDs: relatedInquiryIDs,
		tags:              tags,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

func (a *Article) ID() uint             { return a.id }
func (a *Article) Title() string        { return a.title }
func (a *Article) Content() string      { return a.content }
func (a *Article) CategoryID() *uint    { return a.categoryID }
func (a *Article) AuthorID() uint       { return a.authorID }
func (a *Article) IsPublic() bool       { return a.isPublic }
func (a *Article) ViewCount() uint      { return a.viewCount }
func (a *Article) CreatedAt() time.Time { return a.createdAt }
func (a *Article) UpdatedAt() time.Time { return a.updatedAt }

func (a *Article) RelatedInquiryIDs() []uint {
	idsCopy := make([]uint, len(a.relatedInquiryIDs))
	copy(idsCopy, a.relatedInquiryIDs)
	return idsCopy
}

func (a *Article) Tags() []string {
	tagsCopy := make([]string, len(a.tags))
	copy(tagsCopy, a.tags)
	return tagsCopy
}

func (a *Article) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("article ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("article ID cannot be zero")
	}
	a.id = id
	return nil
}

func (a *Article) UpdateDetails(title, content string, categoryID *uint, isPublic bool) error {
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(content) == 0 {
		return fmt.Errorf("content is required")
	}

	a.title = title
	a.content = content
	a.categoryID = categoryID
	a.isPublic = isPublic
	a.updatedAt = time.Now()
	return nil
}

func (a *Article) ReplaceRelatedInquiries(inquiryIDs []uint) {
	if inquiryIDs == nil {
		inquiryIDs = []uint{}
	}
	a.relatedInquiryIDs = inquiryIDs
	a.updatedAt = time.Now()
}

func (a *Article) ReplaceTags(tags []string) {
	if tags == nil {
		tags = []string{}
	}
	a.tags = tags
	a.updatedAt = time.Now()
}
