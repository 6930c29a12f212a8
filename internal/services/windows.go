package services

import "time"

const isoDateLayout = "2006-01-02"

// Window is a closed date range used for aggregation. Start and End are both
// inclusive.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) StartDate() string { return w.Start.Format(isoDateLayout) }

func (w Window) EndDate() string { return w.End.Format(isoDateLayout) }

// Period names the supported aggregation windows. Each carries a fixed goal
// multiplier; month uses 30 regardless of calendar length.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

func (p Period) Multiplier() int {
	switch p {
	case PeriodWeek:
		return 7
	case PeriodMonth:
		return 30
	default:
		return 1
	}
}

// Window computes the period's date range relative to now, not anchored to
// any entry date.
func (p Period) Window(now time.Time, location *time.Location) Window {
	switch p {
	case PeriodWeek:
		return WeekWindow(now, location)
	case PeriodMonth:
		return MonthWindow(now, location)
	default:
		return DayWindow(now, location)
	}
}

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func DayWindow(now time.Time, location *time.Location) Window {
	today := DateAtLocation(now, location)
	return Window{Start: today, End: today}
}

// WeekWindow is the Sunday-to-Saturday week containing today.
func WeekWindow(now time.Time, location *time.Location) Window {
	today := DateAtLocation(now, location)
	start := today.AddDate(0, 0, -int(today.Weekday()))
	return Window{Start: start, End: start.AddDate(0, 0, 6)}
}

// MonthWindow is the first through last calendar day of the current month.
func MonthWindow(now time.Time, location *time.Location) Window {
	today := DateAtLocation(now, location)
	first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	last := first.AddDate(0, 1, -1)
	return Window{Start: first, End: last}
}
