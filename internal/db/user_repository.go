package db

import (
	"errors"

	"gorm.io/gorm"

	"github.com/hollisb/caltrack/internal/errs"
	"github.com/hollisb/caltrack/internal/models"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) Create(user *models.User) error {
	if err := repo.database.Create(user).Error; err != nil {
		if isDuplicateKey(err) {
			return &errs.DuplicateKeyError{Entity: "user", Key: user.Username}
		}
		return &errs.StoreError{Op: "create user", Err: err}
	}
	return nil
}

func (repo *UserRepository) FindIDByUsername(username string) (uint, error) {
	var user models.User
	err := repo.database.Select("id").Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, &errs.NotFoundError{Entity: "user", Key: username}
	}
	if err != nil {
		return 0, &errs.StoreError{Op: "find user", Err: err}
	}
	return user.ID, nil
}

func (repo *UserRepository) FindByUsername(username string) (models.User, error) {
	var user models.User
	err := repo.database.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, &errs.NotFoundError{Entity: "user", Key: username}
	}
	if err != nil {
		return models.User{}, &errs.StoreError{Op: "find user", Err: err}
	}
	return user, nil
}

// UpdateByUsername applies a partial update. The column map must come from the
// allow-list policy in services; it is never built from raw caller input.
func (repo *UserRepository) UpdateByUsername(username string, columns map[string]any) error {
	result := repo.database.Model(&models.User{}).Where("username = ?", username).Updates(columns)
	if result.Error != nil {
		return &errs.StoreError{Op: "update user", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return &errs.NotFoundError{Entity: "user", Key: username}
	}
	return nil
}
