package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/hollisb/caltrack/internal/models"
)

func newTestStore(t *testing.T) (*gorm.DB, *Repositories) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "caltrack-test.db")
	database, err := OpenSQLite(databasePath)
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return database, NewRepositories(database)
}

func createTestUser(t *testing.T, repos *Repositories, username string) uint {
	t.Helper()

	user := models.User{Username: username, Weight: 80, WeightGoal: 75}
	require.NoError(t, repos.Users.Create(&user))
	return user.ID
}

func createTestFood(t *testing.T, repos *Repositories, name string, calories int) uint {
	t.Helper()

	food := models.Food{Name: name, Calories: calories, Protein: 1, Fat: 1, Carbs: 1}
	require.NoError(t, repos.Foods.Create(&food))
	return food.ID
}

func createTestEntry(t *testing.T, repos *Repositories, userID uint, foodID uint, date string) {
	t.Helper()

	entry := models.FoodEntry{UserID: userID, FoodID: foodID, Date: date, Time: "12:30:00"}
	require.NoError(t, repos.Entries.Create(&entry))
}
