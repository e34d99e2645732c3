package migration

import (
	"aster/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.CategoryModel{},
		&models.TagModel{},
		&models.InquiryModel{},
		&models.ResponseModel{},
		&models.AttachmentModel{},
		&models.InquiryTagModel{},
		&models.ArticleModel{},
		&models.ArticleTagModel{},
		&models.ArticleInquiryModel{},
	}
}
