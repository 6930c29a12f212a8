package models

type User struct {
	ID         uint   `gorm:"primaryKey"`
	Username   string `gorm:"uniqueIndex;not null"`
	Weight     int
	WeightGoal int
}
