package models

type ArticleModel struct {
	ID         uint   `gorm:"primaryKey"`
	Title      string `gorm:"size:200;not null"`
	Content    string `gorm:"type:text;not null"`
	CategoryID *uint  `gorm:"index"`
	AuthorID   uint   `gorm:"not null;index"`
	IsPublic   bool   `gorm:"not null;default:true;index"`
	ViewCount  uint   `gorm:"not null;default:0"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt  int64  `gorm:"autoUpdateTime:milli;not null;index"`
}

func (ArticleModel) TableName() string {
	return "articles"
}

type ArticleTagModel struct {
	ArticleID uint `gorm:"primaryKey;autoIncrement:false"`
	TagID     uint `gorm:"primaryKey;autoIncrement:false;index"`
}

func (ArticleTagModel) TableName() string {
	return "article_tags"
}

type ArticleInquiryModel struct {
	ArticleID uint `gorm:"primaryKey;autoIncrement:false"`
	InquiryID uint `gorm:"primaryKey;autoIncrement:false;index"`
}

func (ArticleInquiryModel) TableName() string {
	return "article_inquiries"
}
