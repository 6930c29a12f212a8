package models

type Food struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"uniqueIndex;not null"`
	Calories int    `gorm:"not null"`
	Protein  int    `gorm:"not null;default:0"`
	Fat      int    `gorm:"not null;default:0"`
	Carbs    int    `gorm:"not null;default:0"`
}
