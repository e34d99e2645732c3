// Package seeds loads the initial category tree and bootstrap users from a
// YAML file on first startup. Seeding is idempotent: existing rows are left
// alone.
package seeds

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"aster/internal/infrastructure/persistence/models"
	"aster/internal/shared/logger"
)

type seedCategory struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Children    []seedCategory `yaml:"children"`
}

type seedUser struct {
	Email       string `yaml:"email"`
	Password    string `yaml:"password"`
	DisplayName string `yaml:"display_name"`
	IsStaff     bool   `yaml:"is_staff"`
	IsAdmin     bool   `yaml:"is_admin"`
}

type seedFile struct {
	Categories []seedCategory `yaml:"categories"`
	Users      []seedUser     `yaml:"users"`
}

type Seeder struct {
	db         *gorm.DB
	bcryptCost int
	logger     logger.Interface
}

func NewSeeder(db *gorm.DB, bcryptCost int) *Seeder {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Seeder{
		db:         db,
		bcryptCost: bcryptCost,
		logger:     logger.NewLogger().With("component", "seeds"),
	}
}

// Run loads the seed file and applies it. A missing file is not an error.
func (s *Seeder) Run(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debugw("seed file not found, skipping", "path", path)
			return nil
		}
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, u := range file.Users {
			if err := s.seedUser(tx, u); err != nil {
				return err
			}
		}
		for _, c := range file.Categories {
			if err := s.seedCategory(tx, c, nil); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Seeder) seedUser(tx *gorm.DB, u seedUser) error {
	if u.Email == "" || u.Password == "" {
		return fmt.Errorf("seed user requires email and password")
	}

	var count int64
	if err := tx.Model(&models.UserModel{}).Where("email = ?", u.Email).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check seed user: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed user password: %w", err)
	}

	model := models.UserModel{
		Email:        u.Email,
		PasswordHash: string(hash),
		DisplayName:  u.DisplayName,
		IsStaff:      u.IsStaff,
		IsAdmin:      u.IsAdmin,
	}
	if err := tx.Create(&model).Error; err != nil {
		return fmt.Errorf("failed to create seed user: %w", err)
	}

	s.logger.Infow("seeded user", "email", u.Email, "is_staff", u.IsStaff)
	return nil
}

func (s *Seeder) seedCategory(tx *gorm.DB, c seedCategory, parentID *uint) error {
	if c.Name == "" {
		return fmt.Errorf("seed category requires a name")
	}

	query := tx.Model(&models.CategoryModel{}).Where("name = ?", c.Name)
	if parentID == nil {
		query = query.Where("parent_id IS NULL")
	} else {
		query = query.Where("parent_id = ?", *parentID)
	}

	var existing models.CategoryModel
	err := query.First(&existing).Error
	switch {
	case err == nil:
		// Already present; descend into children.
	case err == gorm.ErrRecordNotFound:
		existing = models.CategoryModel{
			Name:        c.Name,
			Description: c.Description,
			ParentID:    parentID,
		}
		if err := tx.Create(&existing).Error; err != nil {
			return fmt.Errorf("failed to create seed category: %w", err)
		}
		s.logger.Infow("seeded category", "name", c.Name)
	default:
		return fmt.Errorf("failed to check seed category: %w", err)
	}

	for _, child := range c.Children {
		if err := s.seedCategory(tx, child, &existing.ID); err != nil {
			return err
		}
	}

	return nil
}
