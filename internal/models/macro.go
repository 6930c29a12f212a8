package models

// Macro is a named macro-nutrient allocation profile. The allocations are
// informational percentages; CalGoal is the authoritative daily calorie goal.
type Macro struct {
	ID                uint   `gorm:"primaryKey"`
	Name              string `gorm:"uniqueIndex;not null"`
	ProteinAllocation int
	FatAllocation     int
	CarbAllocation    int
	CalGoal           int `gorm:"not null"`
}

// UserMacro links a user to a macro profile. A user may accumulate several
// associations over time; the one with the highest macro id counts as current.
type UserMacro struct {
	UserID  uint `gorm:"not null;index"`
	MacroID uint `gorm:"not null;index"`
}
