package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hollisb/caltrack/internal/config"
	"github.com/hollisb/caltrack/internal/errs"
	"github.com/hollisb/caltrack/internal/services"
)

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		DBPath:   filepath.Join(t.TempDir(), "caltrack-cli-test.db"),
		Timezone: "UTC",
	}
}

func TestRegisterAddEntryShowFlow(t *testing.T) {
	cfg := newTestConfig(t)

	require.NoError(t, RunRegisterCommand(cfg, "alice", 80, 75))
	require.NoError(t, RunAddFoodCommand(cfg, "Banana", 105, 1, 0, 27))
	require.NoError(t, RunMacroCommand(cfg, "alice", "cut", 40, 20, 40, 1800))
	require.NoError(t, RunEntryCommand(cfg, "alice", "Banana", ""))

	var out bytes.Buffer
	require.NoError(t, RunShowCommand(cfg, &out, "alice", services.PeriodDay))

	rendered := out.String()
	require.Contains(t, rendered, "Banana")
	require.Contains(t, rendered, "105 / 1800")
	require.Contains(t, rendered, string(services.GoalWithin))
}

func TestShowRendersDashForEmptyRange(t *testing.T) {
	cfg := newTestConfig(t)

	require.NoError(t, RunRegisterCommand(cfg, "alice", 80, 75))
	require.NoError(t, RunMacroCommand(cfg, "alice", "cut", 40, 20, 40, 1800))

	var out bytes.Buffer
	require.NoError(t, RunShowCommand(cfg, &out, "alice", services.PeriodDay))
	require.Contains(t, out.String(), "Total calories: --")
}

func TestRetroactiveEntryStaysOutOfCurrentWindow(t *testing.T) {
	cfg := newTestConfig(t)

	require.NoError(t, RunRegisterCommand(cfg, "alice", 80, 75))
	require.NoError(t, RunAddFoodCommand(cfg, "Banana", 105, 1, 0, 27))
	require.NoError(t, RunMacroCommand(cfg, "alice", "cut", 40, 20, 40, 1800))
	require.NoError(t, RunEntryCommand(cfg, "alice", "Banana", "2019-01-15"))

	var out bytes.Buffer
	require.NoError(t, RunShowCommand(cfg, &out, "alice", services.PeriodWeek))
	require.NotContains(t, out.String(), "2019-01-15")
	require.Contains(t, out.String(), "Total calories: --")
}

func TestRegisterDuplicateSurfacesTypedError(t *testing.T) {
	cfg := newTestConfig(t)

	require.NoError(t, RunRegisterCommand(cfg, "alice", 80, 75))
	err := RunRegisterCommand(cfg, "alice", 60, 58)
	require.Error(t, err)
	require.True(t, errs.IsDuplicateKey(err), "want DuplicateKeyError, got %v", err)
}

func TestEntryRejectsMalformedDate(t *testing.T) {
	cfg := newTestConfig(t)

	err := RunEntryCommand(cfg, "alice", "Banana", "15-01-2024")
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "invalid date"))
}

func TestUpdateFoodRejectsUnknownField(t *testing.T) {
	cfg := newTestConfig(t)

	require.NoError(t, RunRegisterCommand(cfg, "alice", 80, 75))
	require.NoError(t, RunAddFoodCommand(cfg, "Banana", 105, 1, 0, 27))

	err := RunUpdateFoodCommand(cfg, "Banana", []string{"name=Apple"})
	require.Error(t, err)

	err = RunUpdateFoodCommand(cfg, "Banana", []string{"protein=garbage"})
	require.Error(t, err)
}

func TestParseAssignment(t *testing.T) {
	name, value, err := parseAssignment("weight=78")
	require.NoError(t, err)
	require.Equal(t, "weight", name)
	require.Equal(t, 78, value)

	_, _, err = parseAssignment("weight")
	require.Error(t, err)

	_, _, err = parseAssignment("=78")
	require.Error(t, err)
}
