package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"aster/internal/infrastructure/persistence/models"
	"aster/internal/shared/errors"
	"aster/internal/shared/logger"
)

// Identity carries the verified account attributes a token is minted from.
type Identity struct {
	UserID      uint
	Email       string
	DisplayName string
	IsStaff     bool
	IsAdmin     bool
}

type CredentialVerifier interface {
	Verify(ctx context.Context, email, password string) (*Identity, error)
}

// GormCredentialVerifier checks passwords against the local users table.
type GormCredentialVerifier struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewGormCredentialVerifier(database *gorm.DB, log logger.Interface) *GormCredentialVerifier {
	return &GormCredentialVerifier{db: database, logger: log}
}

// Verify returns the same unauthorized error for an unknown email and a wrong
// password so the response does not reveal which one failed.
func (v *GormCredentialVerifier) Verify(ctx context.Context, email, password string) (*Identity, error) {
	var model models.UserModel
	if err := v.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewUnauthorizedError("invalid email or password")
		}
		v.logger.Errorw("credential lookup failed", "error", err)
		return nil, errors.NewInternalError("failed to verify credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(model.PasswordHash), []byte(password)); err != nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	return &Identity{
		UserID:      model.ID,
		Email:       model.Email,
		DisplayName: model.DisplayName,
		IsStaff:     model.IsStaff,
		IsAdmin:     model.IsAdmin,
	}, nil
}
