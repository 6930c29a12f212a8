package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/hollisb/caltrack/internal/cli"
	"github.com/hollisb/caltrack/internal/config"
	"github.com/hollisb/caltrack/internal/errs"
	"github.com/hollisb/caltrack/internal/services"
)

const usage = `caltrack - personal calorie and macro tracker

Usage:
  caltrack register <username> <weight> <weight-goal>
  caltrack add <food> <calories> [protein] [fat] [carbs]
  caltrack macro <username> <name> <protein%> <fat%> <carb%> <cal-goal>
  caltrack entry <username> <food> [--date YYYY-MM-DD]
  caltrack update-user <username> --set field=value [--set ...]
  caltrack update-food <food> --set field=value [--set ...]
  caltrack foods
  caltrack show <username> [--window day|week|month]

Environment:
  CALTRACK_CONFIG   config file path (default caltrack.yaml)
  CALTRACK_DB_PATH  store file path (default calories.db)
  CALTRACK_TZ       timezone for date windows (default local)
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load(getEnv("CALTRACK_CONFIG", config.DefaultConfigPath))
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	command, args := os.Args[1], os.Args[2:]
	if err := dispatch(cfg, command, args); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", describeError(err))
		os.Exit(exitCode(err))
	}
}

func dispatch(cfg *config.Config, command string, args []string) error {
	switch command {
	case "register":
		if len(args) != 3 {
			return usageError("register <username> <weight> <weight-goal>")
		}
		weight, err := parseIntArg("weight", args[1])
		if err != nil {
			return err
		}
		weightGoal, err := parseIntArg("weight-goal", args[2])
		if err != nil {
			return err
		}
		return cli.RunRegisterCommand(cfg, args[0], weight, weightGoal)

	case "add":
		if len(args) < 2 || len(args) > 5 {
			return usageError("add <food> <calories> [protein] [fat] [carbs]")
		}
		values := make([]int, 4)
		names := []string{"calories", "protein", "fat", "carbs"}
		for i, raw := range args[1:] {
			value, err := parseIntArg(names[i], raw)
			if err != nil {
				return err
			}
			values[i] = value
		}
		return cli.RunAddFoodCommand(cfg, args[0], values[0], values[1], values[2], values[3])

	case "macro":
		if len(args) != 6 {
			return usageError("macro <username> <name> <protein%> <fat%> <carb%> <cal-goal>")
		}
		values := make([]int, 4)
		names := []string{"protein%", "fat%", "carb%", "cal-goal"}
		for i, raw := range args[2:] {
			value, err := parseIntArg(names[i], raw)
			if err != nil {
				return err
			}
			values[i] = value
		}
		return cli.RunMacroCommand(cfg, args[0], args[1], values[0], values[1], values[2], values[3])

	case "entry":
		flags := flag.NewFlagSet("entry", flag.ContinueOnError)
		date := flags.String("date", "", "entry date (YYYY-MM-DD), defaults to today")
		positional, err := parseFlags(flags, args, 2, "entry <username> <food> [--date YYYY-MM-DD]")
		if err != nil {
			return err
		}
		return cli.RunEntryCommand(cfg, positional[0], positional[1], *date)

	case "update-user":
		flags := flag.NewFlagSet("update-user", flag.ContinueOnError)
		sets := repeatedFlag{}
		flags.Var(&sets, "set", "field=value assignment (repeatable)")
		positional, err := parseFlags(flags, args, 1, "update-user <username> --set field=value")
		if err != nil {
			return err
		}
		return cli.RunUpdateUserCommand(cfg, positional[0], sets)

	case "update-food":
		flags := flag.NewFlagSet("update-food", flag.ContinueOnError)
		sets := repeatedFlag{}
		flags.Var(&sets, "set", "field=value assignment (repeatable)")
		positional, err := parseFlags(flags, args, 1, "update-food <food> --set field=value")
		if err != nil {
			return err
		}
		return cli.RunUpdateFoodCommand(cfg, positional[0], sets)

	case "foods":
		return cli.RunFoodsCommand(cfg, os.Stdout)

	case "show":
		flags := flag.NewFlagSet("show", flag.ContinueOnError)
		window := flags.String("window", "day", "aggregation window: day, week or month")
		positional, err := parseFlags(flags, args, 1, "show <username> [--window day|week|month]")
		if err != nil {
			return err
		}
		period := services.Period(*window)
		switch period {
		case services.PeriodDay, services.PeriodWeek, services.PeriodMonth:
		default:
			return usageError("show --window must be day, week or month")
		}
		return cli.RunShowCommand(cfg, os.Stdout, positional[0], period)

	default:
		fmt.Fprint(os.Stderr, usage)
		return usageError(fmt.Sprintf("unknown command %q", command))
	}
}

// parseFlags accepts flags before or after the positional arguments, so both
// "entry alice Banana --date ..." and "entry --date ... alice Banana" work.
func parseFlags(flags *flag.FlagSet, args []string, wantPositional int, usageLine string) ([]string, error) {
	if err := flags.Parse(args); err != nil {
		return nil, usageError(usageLine)
	}
	positional := flags.Args()
	if len(positional) > 0 {
		rest := positional[min(wantPositional, len(positional)):]
		positional = positional[:min(wantPositional, len(positional))]
		if len(rest) > 0 {
			if err := flags.Parse(rest); err != nil {
				return nil, usageError(usageLine)
			}
			positional = append(positional, flags.Args()...)
		}
	}
	if len(positional) != wantPositional {
		return nil, usageError(usageLine)
	}
	return positional, nil
}

type repeatedFlag []string

func (f *repeatedFlag) String() string { return fmt.Sprint([]string(*f)) }

func (f *repeatedFlag) Set(value string) error {
	*f = append(*f, value)
	return nil
}

type usageErr string

func (e usageErr) Error() string { return string(e) }

func usageError(message string) error { return usageErr("usage: caltrack " + message) }

func parseIntArg(name string, raw string) (int, error) {
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, usageError(fmt.Sprintf("%s must be an integer, got %q", name, raw))
	}
	return value, nil
}

func describeError(err error) string {
	switch {
	case errs.IsDuplicateKey(err):
		return fmt.Sprintf("already exists: %v", err)
	case errs.IsNotFound(err):
		return fmt.Sprintf("not found: %v", err)
	case errs.IsSchema(err):
		return fmt.Sprintf("schema error: %v", err)
	case errs.IsStore(err):
		return fmt.Sprintf("store error: %v", err)
	default:
		return fmt.Sprintf("error: %v", err)
	}
}

func exitCode(err error) int {
	var badUsage usageErr
	if errors.As(err, &badUsage) {
		return 2
	}
	return 1
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
