package services

import (
	"time"

	"github.com/hollisb/caltrack/internal/models"
)

type SummaryUserReader interface {
	FindIDByUsername(username string) (uint, error)
}

type SummaryGoalReader interface {
	LatestCalGoalForUser(userID uint) (int, error)
}

type SummaryEntryReader interface {
	ListForRange(userID uint, start string, end string) ([]models.DiaryRow, error)
	TotalCaloriesForRange(userID uint, start string, end string) (*int64, error)
}

// Summary is the structured result the presentation layer renders: diary rows
// for the window, the summed total (nil when no entries), the resolved goal,
// and the classification.
type Summary struct {
	Username   string
	Period     Period
	Window     Window
	Rows       []models.DiaryRow
	Total      *int64
	CalGoal    int
	Multiplier int
	Status     GoalStatus
}

type SummaryService struct {
	users    SummaryUserReader
	goals    SummaryGoalReader
	entries  SummaryEntryReader
	location *time.Location
}

func NewSummaryService(users SummaryUserReader, goals SummaryGoalReader, entries SummaryEntryReader, location *time.Location) *SummaryService {
	if location == nil {
		location = time.UTC
	}
	return &SummaryService{
		users:    users,
		goals:    goals,
		entries:  entries,
		location: location,
	}
}

// BuildSummary aggregates the user's entries over the period window ending
// "now" and classifies the total against the current macro goal. It fails
// with a not-found error when the user is unknown or has no macro.
func (service *SummaryService) BuildSummary(username string, period Period, now time.Time) (Summary, error) {
	userID, err := service.users.FindIDByUsername(username)
	if err != nil {
		return Summary{}, err
	}

	window := period.Window(now, service.location)
	rows, err := service.entries.ListForRange(userID, window.StartDate(), window.EndDate())
	if err != nil {
		return Summary{}, err
	}
	total, err := service.entries.TotalCaloriesForRange(userID, window.StartDate(), window.EndDate())
	if err != nil {
		return Summary{}, err
	}
	goal, err := service.goals.LatestCalGoalForUser(userID)
	if err != nil {
		return Summary{}, err
	}

	multiplier := period.Multiplier()
	return Summary{
		Username:   username,
		Period:     period,
		Window:     window,
		Rows:       rows,
		Total:      total,
		CalGoal:    goal,
		Multiplier: multiplier,
		Status:     EvaluateGoal(total, goal, multiplier),
	}, nil
}
