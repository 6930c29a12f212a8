package db

import (
	"gorm.io/gorm"

	"github.com/hollisb/caltrack/internal/errs"
)

type tableDefinition struct {
	name string
	sql  string
}

var schemaTables = []tableDefinition{
	{
		name: "users",
		sql: `
CREATE TABLE IF NOT EXISTS users (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  username TEXT NOT NULL UNIQUE,
  weight INTEGER,
  weight_goal INTEGER
);`,
	},
	{
		name: "macros",
		sql: `
CREATE TABLE IF NOT EXISTS macros (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL UNIQUE,
  protein_allocation INTEGER,
  fat_allocation INTEGER,
  carb_allocation INTEGER,
  cal_goal INTEGER NOT NULL
);`,
	},
	{
		name: "user_macros",
		sql: `
CREATE TABLE IF NOT EXISTS user_macros (
  user_id INTEGER NOT NULL REFERENCES users(id),
  macro_id INTEGER NOT NULL REFERENCES macros(id)
);`,
	},
	{
		name: "foods",
		sql: `
CREATE TABLE IF NOT EXISTS foods (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL UNIQUE,
  calories INTEGER NOT NULL,
  protein INTEGER NOT NULL DEFAULT 0,
  fat INTEGER NOT NULL DEFAULT 0,
  carbs INTEGER NOT NULL DEFAULT 0
);`,
	},
	{
		name: "food_entries",
		sql: `
CREATE TABLE IF NOT EXISTS food_entries (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  food_id INTEGER NOT NULL REFERENCES foods(id),
  user_id INTEGER NOT NULL REFERENCES users(id),
  date TEXT NOT NULL DEFAULT CURRENT_DATE,
  time TEXT NOT NULL DEFAULT CURRENT_TIME
);`,
	},
}

// EnsureSchema creates the five tables if absent. It is safe to run on every
// process start; there is no versioning and no migration history.
func EnsureSchema(database *gorm.DB) error {
	for _, table := range schemaTables {
		if err := database.Exec(table.sql).Error; err != nil {
			return &errs.SchemaError{Table: table.name, Err: err}
		}
	}
	return nil
}
