package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"aster/internal/domain/user"
	"aster/internal/infrastructure/persistence/mappers"
	"aster/internal/infrastructure/persistence/models"
	db "aster/internal/shared/db"
	"aster/internal/shared/errors"
	"aster/internal/shared/logger"
)

// UserDirectoryImpl backs the user directory with the local users table.
type UserDirectoryImpl struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

func NewUserDirectory(database *gorm.DB, log logger.Interface) user.Directory {
	return &UserDirectoryImpl{
		db:     database,
		mapper: mappers.NewUserMapper(),
		logger: log,
	}
}

func (r *UserDirectoryImpl) FindByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserDirectoryImpl) FindByIDs(ctx context.Context, ids []uint) (map[uint]*user.User, error) {
	if len(ids) == 0 {
		return map[uint]*user.User{}, nil
	}

	tx := db.GetTxFromContext(ctx, r.db)

	var userModels []models.UserModel
	if err := tx.Where("id IN ?", ids).Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find users: %w", err)
	}

	users := make(map[uint]*user.User, len(userModels))
	for _, model := range userModels {
		u, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		users[u.ID()] = u
	}

	return users, nil
}

func (r *UserDirectoryImpl) ListStaff(ctx context.Context) ([]*user.User, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var userModels []models.UserModel
	if err := tx.Where("is_staff = ?", true).Order("display_name ASC, email ASC").Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list staff users: %w", err)
	}

	users := make([]*user.User, len(userModels))
	for i, model := range userModels {
		u, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		users[i] = u
	}

	return users, nil
}
