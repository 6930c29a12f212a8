package db

import (
	"database/sql"

	"gorm.io/gorm"

	"github.com/hollisb/caltrack/internal/errs"
	"github.com/hollisb/caltrack/internal/models"
)

type EntryRepository struct {
	database *gorm.DB
}

func NewEntryRepository(database *gorm.DB) *EntryRepository {
	return &EntryRepository{database: database}
}

func (repo *EntryRepository) Create(entry *models.FoodEntry) error {
	if err := repo.database.Create(entry).Error; err != nil {
		return &errs.StoreError{Op: "create food entry", Err: err}
	}
	return nil
}

// ListForRange returns the user's entries with entry date inside the closed
// range [start, end], joined against foods and users for display fields. Dates
// are ISO text, so the comparisons are plain lexicographic ones.
func (repo *EntryRepository) ListForRange(userID uint, start string, end string) ([]models.DiaryRow, error) {
	rows := make([]models.DiaryRow, 0)
	err := repo.database.Table("food_entries").
		Select("users.username AS username, foods.name AS food_name, foods.calories AS calories, food_entries.date AS date, food_entries.time AS time").
		Joins("JOIN foods ON foods.id = food_entries.food_id").
		Joins("JOIN users ON users.id = food_entries.user_id").
		Where("food_entries.user_id = ? AND food_entries.date >= ? AND food_entries.date <= ?", userID, start, end).
		Order("food_entries.date ASC, food_entries.time ASC, food_entries.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, &errs.StoreError{Op: "list food entries", Err: err}
	}
	return rows, nil
}

// TotalCaloriesForRange sums joined food calories over the closed range. It
// returns nil, not zero, when the range holds no entries; callers must tell
// "no data" apart from "zero calories".
func (repo *EntryRepository) TotalCaloriesForRange(userID uint, start string, end string) (*int64, error) {
	var total sql.NullInt64
	err := repo.database.Table("food_entries").
		Select("SUM(foods.calories)").
		Joins("JOIN foods ON foods.id = food_entries.food_id").
		Where("food_entries.user_id = ? AND food_entries.date >= ? AND food_entries.date <= ?", userID, start, end).
		Scan(&total).Error
	if err != nil {
		return nil, &errs.StoreError{Op: "sum calories", Err: err}
	}
	if !total.Valid {
		return nil, nil
	}
	value := total.Int64
	return &value, nil
}
