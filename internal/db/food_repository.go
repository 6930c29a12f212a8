package db

import (
	"errors"

	"gorm.io/gorm"

	"github.com/hollisb/caltrack/internal/errs"
	"github.com/hollisb/caltrack/internal/models"
)

type FoodRepository struct {
	database *gorm.DB
}

func NewFoodRepository(database *gorm.DB) *FoodRepository {
	return &FoodRepository{database: database}
}

func (repo *FoodRepository) Create(food *models.Food) error {
	if err := repo.database.Create(food).Error; err != nil {
		if isDuplicateKey(err) {
			return &errs.DuplicateKeyError{Entity: "food", Key: food.Name}
		}
		return &errs.StoreError{Op: "create food", Err: err}
	}
	return nil
}

func (repo *FoodRepository) FindIDByName(name string) (uint, error) {
	var food models.Food
	err := repo.database.Select("id").Where("name = ?", name).First(&food).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, &errs.NotFoundError{Entity: "food", Key: name}
	}
	if err != nil {
		return 0, &errs.StoreError{Op: "find food", Err: err}
	}
	return food.ID, nil
}

func (repo *FoodRepository) FindByName(name string) (models.Food, error) {
	var food models.Food
	err := repo.database.Where("name = ?", name).First(&food).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Food{}, &errs.NotFoundError{Entity: "food", Key: name}
	}
	if err != nil {
		return models.Food{}, &errs.StoreError{Op: "find food", Err: err}
	}
	return food, nil
}

func (repo *FoodRepository) UpdateByName(name string, columns map[string]any) error {
	result := repo.database.Model(&models.Food{}).Where("name = ?", name).Updates(columns)
	if result.Error != nil {
		return &errs.StoreError{Op: "update food", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return &errs.NotFoundError{Entity: "food", Key: name}
	}
	return nil
}

// ListByCaloriesDesc returns every food ordered by calories descending. The id
// tiebreak keeps equal-calorie foods in insertion order.
func (repo *FoodRepository) ListByCaloriesDesc() ([]models.Food, error) {
	foods := make([]models.Food, 0)
	if err := repo.database.Order("calories DESC, id ASC").Find(&foods).Error; err != nil {
		return nil, &errs.StoreError{Op: "list foods", Err: err}
	}
	return foods, nil
}
