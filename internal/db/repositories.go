package db

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

type Repositories struct {
	Users   *UserRepository
	Foods   *FoodRepository
	Macros  *MacroRepository
	Entries *EntryRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:   NewUserRepository(database),
		Foods:   NewFoodRepository(database),
		Macros:  NewMacroRepository(database),
		Entries: NewEntryRepository(database),
	}
}

// isDuplicateKey recognizes unique-constraint violations. TranslateError
// covers the common path; the string check catches violations raised inside
// raw statements the translator does not see.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
