package db

import (
	"strconv"

	"gorm.io/gorm"

	"github.com/hollisb/caltrack/internal/errs"
	"github.com/hollisb/caltrack/internal/models"
)

type MacroRepository struct {
	database *gorm.DB
}

func NewMacroRepository(database *gorm.DB) *MacroRepository {
	return &MacroRepository{database: database}
}

// CreateForUser inserts the macro row and its user association in one
// transaction, so a failed association never leaves an orphaned macro.
func (repo *MacroRepository) CreateForUser(userID uint, macro *models.Macro) error {
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(macro).Error; err != nil {
			return err
		}
		return tx.Create(&models.UserMacro{UserID: userID, MacroID: macro.ID}).Error
	})
	if err != nil {
		if isDuplicateKey(err) {
			return &errs.DuplicateKeyError{Entity: "macro", Key: macro.Name}
		}
		return &errs.StoreError{Op: "create macro", Err: err}
	}
	return nil
}

// LatestCalGoalForUser resolves the user's current daily calorie goal: the
// macro with the highest id among the user's associations wins. Ordering by
// surrogate id as a recency proxy is kept on purpose for compatibility with
// existing stores; it is not date-based.
func (repo *MacroRepository) LatestCalGoalForUser(userID uint) (int, error) {
	var row struct {
		CalGoal int
	}
	result := repo.database.Table("user_macros").
		Select("macros.cal_goal AS cal_goal").
		Joins("JOIN macros ON macros.id = user_macros.macro_id").
		Where("user_macros.user_id = ?", userID).
		Order("macros.id DESC").
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return 0, &errs.StoreError{Op: "resolve calorie goal", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return 0, &errs.NotFoundError{Entity: "macro for user", Key: strconv.FormatUint(uint64(userID), 10)}
	}
	return row.CalGoal, nil
}
