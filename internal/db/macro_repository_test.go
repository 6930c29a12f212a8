package db

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hollisb/caltrack/internal/errs"
	"github.com/hollisb/caltrack/internal/models"
)

func TestMacroLatestAssociationWins(t *testing.T) {
	_, repos := newTestStore(t)

	userID := createTestUser(t, repos, "alice")

	bulk := models.Macro{Name: "bulk", CalGoal: 3000}
	require.NoError(t, repos.Macros.CreateForUser(userID, &bulk))
	cut := models.Macro{Name: "cut", CalGoal: 1800}
	require.NoError(t, repos.Macros.CreateForUser(userID, &cut))

	goal, err := repos.Macros.LatestCalGoalForUser(userID)
	require.NoError(t, err)
	require.Equal(t, 1800, goal)
}

func TestMacroGoalWithoutAssociation(t *testing.T) {
	_, repos := newTestStore(t)

	userID := createTestUser(t, repos, "alice")

	_, err := repos.Macros.LatestCalGoalForUser(userID)
	require.Error(t, err)
	require.True(t, errs.IsNotFound(err), "want NotFoundError, got %v", err)
}

func TestMacroDuplicateNameLeavesNoAssociation(t *testing.T) {
	database, repos := newTestStore(t)

	alice := createTestUser(t, repos, "alice")
	bob := createTestUser(t, repos, "bob")

	first := models.Macro{Name: "cut", CalGoal: 1800}
	require.NoError(t, repos.Macros.CreateForUser(alice, &first))

	second := models.Macro{Name: "cut", CalGoal: 1500}
	err := repos.Macros.CreateForUser(bob, &second)
	require.Error(t, err)
	require.True(t, errs.IsDuplicateKey(err), "want DuplicateKeyError, got %v", err)

	// The failed insert must not leave an association row for bob.
	var count int64
	require.NoError(t, database.Table("user_macros").Where("user_id = ?", bob).Count(&count).Error)
	require.Zero(t, count)
}

func TestMacroSharedByMultipleUsers(t *testing.T) {
	_, repos := newTestStore(t)

	alice := createTestUser(t, repos, "alice")
	bob := createTestUser(t, repos, "bob")

	macro := models.Macro{Name: "maintenance", CalGoal: 2200}
	require.NoError(t, repos.Macros.CreateForUser(alice, &macro))
	require.NoError(t, repos.Macros.CreateForUser(bob, &models.Macro{Name: "cut", CalGoal: 1800}))

	aliceGoal, err := repos.Macros.LatestCalGoalForUser(alice)
	require.NoError(t, err)
	require.Equal(t, 2200, aliceGoal)

	bobGoal, err := repos.Macros.LatestCalGoalForUser(bob)
	require.NoError(t, err)
	require.Equal(t, 1800, bobGoal)
}
