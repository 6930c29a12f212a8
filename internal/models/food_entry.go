package models

// FoodEntry records one consumption event. Date and Time are stored as ISO
// text (YYYY-MM-DD and HH:MM:SS) so closed-range window queries can compare
// lexicographically.
type FoodEntry struct {
	ID     uint   `gorm:"primaryKey"`
	FoodID uint   `gorm:"not null;index"`
	UserID uint   `gorm:"not null;index"`
	Date   string `gorm:"type:date;not null"`
	Time   string `gorm:"type:time;not null"`
}

// DiaryRow is the joined projection returned by range listings: one entry with
// its user and food display fields resolved.
type DiaryRow struct {
	Username string
	FoodName string
	Calories int
	Date     string
	Time     string
}
