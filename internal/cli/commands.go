// Package cli implements the command verbs. Each command opens a dedicated
// store handle for its run, wires the repositories and services it needs, and
// prints the structured result; the core packages never print.
package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/hollisb/caltrack/internal/config"
	"github.com/hollisb/caltrack/internal/db"
	"github.com/hollisb/caltrack/internal/models"
	"github.com/hollisb/caltrack/internal/services"
)

func RunRegisterCommand(cfg *config.Config, username string, weight int, weightGoal int) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return fmt.Errorf("username is required")
	}

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	repos := db.NewRepositories(database)
	user := models.User{Username: username, Weight: weight, WeightGoal: weightGoal}
	if err := repos.Users.Create(&user); err != nil {
		return err
	}

	fmt.Printf("Created profile for %s (weight %d, goal %d).\n", username, weight, weightGoal)
	return nil
}

func RunAddFoodCommand(cfg *config.Config, name string, calories int, protein int, fat int, carbs int) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("food name is required")
	}
	if calories < 0 {
		return fmt.Errorf("calories must be non-negative, got %d", calories)
	}

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	repos := db.NewRepositories(database)
	food := models.Food{Name: name, Calories: calories, Protein: protein, Fat: fat, Carbs: carbs}
	if err := repos.Foods.Create(&food); err != nil {
		return err
	}

	fmt.Printf("Added %s (%d kcal) to the food catalog.\n", name, calories)
	return nil
}

func RunMacroCommand(cfg *config.Config, username string, name string, proteinPct int, fatPct int, carbPct int, calGoal int) error {
	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	repos := db.NewRepositories(database)
	macros := services.NewMacroService(repos.Users, repos.Macros)
	macro, err := macros.CreateMacro(username, services.MacroInput{
		Name:       name,
		ProteinPct: proteinPct,
		FatPct:     fatPct,
		CarbPct:    carbPct,
		CalGoal:    calGoal,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added macro %s for %s (daily goal %d kcal).\n", macro.Name, username, macro.CalGoal)
	return nil
}

func RunEntryCommand(cfg *config.Config, username string, foodName string, date string) error {
	date = strings.TrimSpace(date)
	if date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return fmt.Errorf("invalid date %q, want YYYY-MM-DD", date)
		}
	}

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	repos := db.NewRepositories(database)
	logs := services.NewLogService(repos.Users, repos.Foods, repos.Entries, cfg.Location())
	entry, err := logs.LogFood(username, foodName, date, time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("Logged %s for %s on %s at %s.\n", foodName, username, entry.Date, entry.Time)
	return nil
}

func RunUpdateUserCommand(cfg *config.Config, username string, assignments []string) error {
	fields := make(map[services.UserField]int, len(assignments))
	for _, assignment := range assignments {
		name, value, err := parseAssignment(assignment)
		if err != nil {
			return err
		}
		field, err := services.ParseUserField(name)
		if err != nil {
			return err
		}
		fields[field] = value
	}

	columns, err := services.UserUpdateColumns(fields)
	if err != nil {
		return err
	}

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	repos := db.NewRepositories(database)
	if err := repos.Users.UpdateByUsername(username, columns); err != nil {
		return err
	}

	fmt.Printf("Updated %d field(s) for %s.\n", len(columns), username)
	return nil
}

func RunUpdateFoodCommand(cfg *config.Config, name string, assignments []string) error {
	fields := make(map[services.FoodField]int, len(assignments))
	for _, assignment := range assignments {
		fieldName, value, err := parseAssignment(assignment)
		if err != nil {
			return err
		}
		field, err := services.ParseFoodField(fieldName)
		if err != nil {
			return err
		}
		fields[field] = value
	}

	columns, err := services.FoodUpdateColumns(fields)
	if err != nil {
		return err
	}

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	repos := db.NewRepositories(database)
	if err := repos.Foods.UpdateByName(name, columns); err != nil {
		return err
	}

	fmt.Printf("Updated %d field(s) for %s.\n", len(columns), name)
	return nil
}

func RunFoodsCommand(cfg *config.Config, out io.Writer) error {
	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	repos := db.NewRepositories(database)
	foods, err := repos.Foods.ListByCaloriesDesc()
	if err != nil {
		return err
	}

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "NAME\tCALORIES\tPROTEIN\tFAT\tCARBS")
	for _, food := range foods {
		fmt.Fprintf(writer, "%s\t%d\t%d\t%d\t%d\n", food.Name, food.Calories, food.Protein, food.Fat, food.Carbs)
	}
	return writer.Flush()
}

func RunShowCommand(cfg *config.Config, out io.Writer, username string, period services.Period) error {
	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	repos := db.NewRepositories(database)
	summaries := services.NewSummaryService(repos.Users, repos.Macros, repos.Entries, cfg.Location())
	summary, err := summaries.BuildSummary(username, period, time.Now())
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Food diary for %s: %s (%s .. %s)\n", summary.Username, summary.Period, summary.Window.StartDate(), summary.Window.EndDate())

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "USER\tMEAL\tCALORIES\tDATE\tTIME")
	for _, row := range summary.Rows {
		fmt.Fprintf(writer, "%s\t%s\t%d\t%s\t%s\n", row.Username, row.FoodName, row.Calories, row.Date, row.Time)
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	total := "--"
	if summary.Total != nil {
		total = strconv.FormatInt(*summary.Total, 10)
	}
	fmt.Fprintf(out, "Total calories: %s / %d (%s goal: %s)\n", total, summary.CalGoal*summary.Multiplier, summary.Period, summary.Status)
	return nil
}

func parseAssignment(assignment string) (string, int, error) {
	name, rawValue, found := strings.Cut(assignment, "=")
	name = strings.TrimSpace(name)
	if !found || name == "" {
		return "", 0, fmt.Errorf("invalid assignment %q, want field=value", assignment)
	}
	value, err := strconv.Atoi(strings.TrimSpace(rawValue))
	if err != nil {
		return "", 0, fmt.Errorf("invalid value in %q: %w", assignment, err)
	}
	return name, value, nil
}
