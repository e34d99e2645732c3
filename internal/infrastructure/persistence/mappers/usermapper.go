package mappers

import (
	"aster/internal/domain/user"
	"aster/internal/infrastructure/persistence/models"
)

// UserMapper converts user persistence models to directory entries.
// The directory is read-only from the helpdesk's point of view, so there
// is no ToModel counterpart.
type UserMapper interface {
	ToDomain(model *models.UserModel) (*user.User, error)
}

// UserMapperImpl is the concrete implementation of UserMapper.
type UserMapperImpl struct{}

// NewUserMapper creates a new UserMapper.
func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		model.ID,
		model.Email,
		model.DisplayName,
		model.IsStaff,
		model.IsAdmin,
		convertMillisToTime(model.CreatedAt),
	)
}
