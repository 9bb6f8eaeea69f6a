package streak_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/lingoflash/internal/models"
	"github.com/vytor/lingoflash/internal/streak"
)

var today = time.Date(2026, time.March, 14, 8, 0, 0, 0, time.UTC)

func stateWithLastLogin(streakCount int, lastLogin string) models.GamificationState {
	return models.GamificationState{
		Streak:        streakCount,
		LastLoginDate: lastLogin,
		History:       []models.StreakDay{{Date: lastLogin, Status: models.StreakFlame}},
	}
}

func TestAdvance_FirstRun(t *testing.T) {
	state, notification := streak.Advance(models.GamificationState{}, today)

	assert.Equal(t, 1, state.Streak)
	assert.Equal(t, "2026-03-14", state.LastLoginDate)
	assert.Equal(t, streak.NotificationFlame, notification)
	require.Len(t, state.History, 1)
	assert.Equal(t, models.StreakDay{Date: "2026-03-14", Status: models.StreakFlame}, state.History[0])
}

func TestAdvance_SameDayIsNoOp(t *testing.T) {
	initial := stateWithLastLogin(5, "2026-03-14")

	state, notification := streak.Advance(initial, today)

	assert.Equal(t, streak.NotificationNone, notification)
	assert.Equal(t, initial, state, "second evaluation the same day changes nothing")
}

func TestAdvance_Scenarios(t *testing.T) {
	tests := []struct {
		name                 string
		lastLogin            string
		expectedStreak       int
		expectedNotification streak.Notification
		expectedNewEntries   int
	}{
		{
			name:                 "consecutive day extends the streak",
			lastLogin:            "2026-03-13",
			expectedStreak:       6,
			expectedNotification: streak.NotificationFlame,
			expectedNewEntries:   1,
		},
		{
			name:                 "one missed day freezes and still extends",
			lastLogin:            "2026-03-12",
			expectedStreak:       6,
			expectedNotification: streak.NotificationFreeze,
			expectedNewEntries:   2,
		},
		{
			name:                 "two missed days reset the streak",
			lastLogin:            "2026-03-11",
			expectedStreak:       1,
			expectedNotification: streak.NotificationExtinguish,
			expectedNewEntries:   1,
		},
		{
			name:                 "long absence resets the streak",
			lastLogin:            "2025-11-02",
			expectedStreak:       1,
			expectedNotification: streak.NotificationExtinguish,
			expectedNewEntries:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			initial := stateWithLastLogin(5, tt.lastLogin)

			state, notification := streak.Advance(initial, today)

			assert.Equal(t, tt.expectedStreak, state.Streak)
			assert.Equal(t, tt.expectedNotification, notification)
			assert.Equal(t, "2026-03-14", state.LastLoginDate)
			assert.Len(t, state.History, 1+tt.expectedNewEntries)
		})
	}
}

func TestAdvance_FreezeHistoryEntries(t *testing.T) {
	initial := stateWithLastLogin(5, "2026-03-12")

	state, _ := streak.Advance(initial, today)

	require.Len(t, state.History, 3)
	assert.Equal(t, models.StreakDay{Date: "2026-03-13", Status: models.StreakFreeze}, state.History[1],
		"the skipped day is recorded as frozen")
	assert.Equal(t, models.StreakDay{Date: "2026-03-14", Status: models.StreakFlame}, state.History[2])
}

func TestAdvance_DoesNotMutateInput(t *testing.T) {
	initial := stateWithLastLogin(5, "2026-03-13")
	historyBefore := len(initial.History)

	_, _ = streak.Advance(initial, today)

	assert.Len(t, initial.History, historyBefore)
	assert.Equal(t, "2026-03-13", initial.LastLoginDate)
}

func TestAdvance_OneEntryPerDate(t *testing.T) {
	state := models.GamificationState{}
	day := time.Date(2026, time.January, 1, 7, 0, 0, 0, time.UTC)

	// Simulate three months of daily check-ins with occasional double calls.
	for i := 0; i < 90; i++ {
		state, _ = streak.Advance(state, day)
		state, _ = streak.Advance(state, day)
		day = day.AddDate(0, 0, 1)
	}

	seen := map[string]bool{}
	for _, entry := range state.History {
		assert.False(t, seen[entry.Date], "duplicate history entry for %s", entry.Date)
		seen[entry.Date] = true
	}
	assert.Equal(t, 90, state.Streak)
}
