package models

type TagModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:50;not null;uniqueIndex"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (TagModel) TableName() string {
	return "tags"
}
