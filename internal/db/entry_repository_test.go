package db

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEntriesForClosedRange(t *testing.T) {
	_, repos := newTestStore(t)

	userID := createTestUser(t, repos, "alice")
	banana := createTestFood(t, repos, "Banana", 105)
	oats := createTestFood(t, repos, "Oats", 380)

	createTestEntry(t, repos, userID, banana, "2024-03-10")
	createTestEntry(t, repos, userID, oats, "2024-03-12")
	createTestEntry(t, repos, userID, banana, "2024-01-15") // retroactive, outside range

	rows, err := repos.Entries.ListForRange(userID, "2024-03-10", "2024-03-16")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.Equal(t, "alice", rows[0].Username)
	require.Equal(t, "Banana", rows[0].FoodName)
	require.Equal(t, 105, rows[0].Calories)
	require.Equal(t, "2024-03-10", rows[0].Date)
	require.Equal(t, "Oats", rows[1].FoodName)
}

func TestEntriesRangeBoundsAreInclusive(t *testing.T) {
	_, repos := newTestStore(t)

	userID := createTestUser(t, repos, "alice")
	banana := createTestFood(t, repos, "Banana", 105)

	createTestEntry(t, repos, userID, banana, "2024-03-10")
	createTestEntry(t, repos, userID, banana, "2024-03-16")

	rows, err := repos.Entries.ListForRange(userID, "2024-03-10", "2024-03-16")
	require.NoError(t, err)
	require.Len(t, rows, 2)
}

func TestEntriesScopedToUser(t *testing.T) {
	_, repos := newTestStore(t)

	alice := createTestUser(t, repos, "alice")
	bob := createTestUser(t, repos, "bob")
	banana := createTestFood(t, repos, "Banana", 105)

	createTestEntry(t, repos, alice, banana, "2024-03-10")
	createTestEntry(t, repos, bob, banana, "2024-03-10")

	rows, err := repos.Entries.ListForRange(alice, "2024-03-10", "2024-03-10")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "alice", rows[0].Username)
}

func TestTotalCaloriesForRange(t *testing.T) {
	_, repos := newTestStore(t)

	userID := createTestUser(t, repos, "alice")
	banana := createTestFood(t, repos, "Banana", 105)
	oats := createTestFood(t, repos, "Oats", 380)

	createTestEntry(t, repos, userID, banana, "2024-03-10")
	createTestEntry(t, repos, userID, oats, "2024-03-12")

	total, err := repos.Entries.TotalCaloriesForRange(userID, "2024-03-10", "2024-03-16")
	require.NoError(t, err)
	require.NotNil(t, total)
	require.Equal(t, int64(485), *total)
}

func TestTotalCaloriesEmptyRangeIsNilNotZero(t *testing.T) {
	_, repos := newTestStore(t)

	userID := createTestUser(t, repos, "alice")
	banana := createTestFood(t, repos, "Banana", 105)
	createTestEntry(t, repos, userID, banana, "2024-01-15")

	total, err := repos.Entries.TotalCaloriesForRange(userID, "2024-03-10", "2024-03-16")
	require.NoError(t, err)
	require.Nil(t, total, "empty range must yield nil, not zero")
}
