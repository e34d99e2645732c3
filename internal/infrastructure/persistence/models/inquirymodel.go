package models

import "gorm.io/datatypes"

type InquiryModel struct {
	ID            uint   `gorm:"primaryKey"`
	Title         string `gorm:"size:200;not null"`
	Content       string `gorm:"type:text;not null"`
	CustomerName  string `gorm:"size:100;not null;index"`
	CustomerEmail string `gorm:"size:254;not null;index"`
	CustomerPhone string `gorm:"size:20"`
	Status        string `gorm:"size:20;not null;index"`
	Priority      string `gorm:"size:20;not null;index"`
	CategoryID    *uint  `gorm:"index"`
	AssigneeID    *uint  `gorm:"index"`
	CreatedAt     int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt     int64  `gorm:"autoUpdateTime:milli;not null"`
	ResolvedAt    *int64
}

func (InquiryModel) TableName() string {
	return "inquiries"
}

type ResponseModel struct {
	ID          uint   `gorm:"primaryKey"`
	InquiryID   uint   `gorm:"not null;index"`
	ResponderID uint   `gorm:"not null;index"`
	Content     string `gorm:"type:text;not null"`
	IsInternal  bool   `gorm:"not null;default:false"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (ResponseModel) TableName() string {
	return "responses"
}

type AttachmentModel struct {
	ID         uint           `gorm:"primaryKey"`
	InquiryID  uint           `gorm:"not null;index"`
	StorageKey string         `gorm:"size:255;not null"`
	Filename   string         `gorm:"size:255;not null"`
	Meta       datatypes.JSON `gorm:"type:json"`
	UploadedAt int64          `gorm:"autoCreateTime:milli;not null"`
}

func (AttachmentModel) TableName() string {
	return "attachments"
}

type InquiryTagModel struct {
	InquiryID uint `gorm:"primaryKey;autoIncrement:false"`
	TagID     uint `gorm:"primaryKey;autoIncrement:false;index"`
}

func (InquiryTagModel) TableName() string {
	return "inquiry_tags"
}
