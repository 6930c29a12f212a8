package services

import (
	"time"

	"github.com/hollisb/caltrack/internal/models"
)

const clockLayout = "15:04:05"

type LogUserReader interface {
	FindIDByUsername(username string) (uint, error)
}

type LogFoodReader interface {
	FindIDByName(name string) (uint, error)
}

type LogEntryWriter interface {
	Create(entry *models.FoodEntry) error
}

type LogService struct {
	users    LogUserReader
	foods    LogFoodReader
	entries  LogEntryWriter
	location *time.Location
}

func NewLogService(users LogUserReader, foods LogFoodReader, entries LogEntryWriter, location *time.Location) *LogService {
	if location == nil {
		location = time.UTC
	}
	return &LogService{
		users:    users,
		foods:    foods,
		entries:  entries,
		location: location,
	}
}

// LogFood records one consumption event. An empty date means "now"; a supplied
// date is stored as given for retroactive logging, while the time column
// always carries the current clock time.
func (service *LogService) LogFood(username string, foodName string, date string, now time.Time) (models.FoodEntry, error) {
	userID, err := service.users.FindIDByUsername(username)
	if err != nil {
		return models.FoodEntry{}, err
	}
	foodID, err := service.foods.FindIDByName(foodName)
	if err != nil {
		return models.FoodEntry{}, err
	}

	localized := now.In(service.location)
	if date == "" {
		date = localized.Format(isoDateLayout)
	}

	entry := models.FoodEntry{
		FoodID: foodID,
		UserID: userID,
		Date:   date,
		Time:   localized.Format(clockLayout),
	}
	if err := service.entries.Create(&entry); err != nil {
		return models.FoodEntry{}, err
	}
	return entry, nil
}
