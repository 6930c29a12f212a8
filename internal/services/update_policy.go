package services

import (
	"errors"
	"fmt"
)

// Partial updates are expressed as typed field/value maps and resolved against
// a fixed allow-list of columns per entity. Field names never travel from
// caller input into SQL.

var ErrEmptyUpdate = errors.New("no fields to update")

type UserField string

const (
	UserFieldWeight     UserField = "weight"
	UserFieldWeightGoal UserField = "weight_goal"
)

type FoodField string

const (
	FoodFieldCalories FoodField = "calories"
	FoodFieldProtein  FoodField = "protein"
	FoodFieldFat      FoodField = "fat"
	FoodFieldCarbs    FoodField = "carbs"
)

var userColumns = map[UserField]string{
	UserFieldWeight:     "weight",
	UserFieldWeightGoal: "weight_goal",
}

var foodColumns = map[FoodField]string{
	FoodFieldCalories: "calories",
	FoodFieldProtein:  "protein",
	FoodFieldFat:      "fat",
	FoodFieldCarbs:    "carbs",
}

func ParseUserField(name string) (UserField, error) {
	field := UserField(name)
	if _, ok := userColumns[field]; !ok {
		return "", fmt.Errorf("unknown user field %q", name)
	}
	return field, nil
}

func ParseFoodField(name string) (FoodField, error) {
	field := FoodField(name)
	if _, ok := foodColumns[field]; !ok {
		return "", fmt.Errorf("unknown food field %q", name)
	}
	return field, nil
}

// UserUpdateColumns validates a typed field map and produces the column map
// the repository applies. Only named fields end up in the update statement.
func UserUpdateColumns(fields map[UserField]int) (map[string]any, error) {
	if len(fields) == 0 {
		return nil, ErrEmptyUpdate
	}
	columns := make(map[string]any, len(fields))
	for field, value := range fields {
		column, ok := userColumns[field]
		if !ok {
			return nil, fmt.Errorf("unknown user field %q", field)
		}
		columns[column] = value
	}
	return columns, nil
}

func FoodUpdateColumns(fields map[FoodField]int) (map[string]any, error) {
	if len(fields) == 0 {
		return nil, ErrEmptyUpdate
	}
	columns := make(map[string]any, len(fields))
	for field, value := range fields {
		column, ok := foodColumns[field]
		if !ok {
			return nil, fmt.Errorf("unknown food field %q", field)
		}
		if field == FoodFieldCalories && value < 0 {
			return nil, fmt.Errorf("calories must be non-negative, got %d", value)
		}
		columns[column] = value
	}
	return columns, nil
}
