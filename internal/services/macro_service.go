package services

import (
	"errors"
	"strings"

	"github.com/hollisb/caltrack/internal/models"
)

var ErrMacroNameRequired = errors.New("macro name is required")

type MacroUserReader interface {
	FindIDByUsername(username string) (uint, error)
}

type MacroWriter interface {
	CreateForUser(userID uint, macro *models.Macro) error
	LatestCalGoalForUser(userID uint) (int, error)
}

type MacroInput struct {
	Name       string
	ProteinPct int
	FatPct     int
	CarbPct    int
	CalGoal    int
}

type MacroService struct {
	users  MacroUserReader
	macros MacroWriter
}

func NewMacroService(users MacroUserReader, macros MacroWriter) *MacroService {
	return &MacroService{
		users:  users,
		macros: macros,
	}
}

// CreateMacro resolves the user, then inserts the macro row and its
// association as one logical operation.
func (service *MacroService) CreateMacro(username string, input MacroInput) (models.Macro, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return models.Macro{}, ErrMacroNameRequired
	}

	userID, err := service.users.FindIDByUsername(username)
	if err != nil {
		return models.Macro{}, err
	}

	macro := models.Macro{
		Name:              name,
		ProteinAllocation: input.ProteinPct,
		FatAllocation:     input.FatPct,
		CarbAllocation:    input.CarbPct,
		CalGoal:           input.CalGoal,
	}
	if err := service.macros.CreateForUser(userID, &macro); err != nil {
		return models.Macro{}, err
	}
	return macro, nil
}

// CurrentCalGoal resolves the user's active daily calorie goal through the
// latest macro association.
func (service *MacroService) CurrentCalGoal(username string) (int, error) {
	userID, err := service.users.FindIDByUsername(username)
	if err != nil {
		return 0, err
	}
	return service.macros.LatestCalGoalForUser(userID)
}
