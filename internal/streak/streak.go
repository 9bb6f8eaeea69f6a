package streak

import (
	"math"
	"time"

	"github.com/vytor/lingoflash/internal/models"
)

// Notification is the transient signal produced by a daily check. It is
// returned to the caller for one-shot display and never persisted;
// "extinguish" in particular has no history counterpart.
type Notification string

const (
	NotificationFlame      Notification = "flame"
	NotificationFreeze     Notification = "freeze"
	NotificationExtinguish Notification = "extinguish"
	NotificationNone       Notification = "none"
)

// DateLayout is the calendar-date format used for streak bookkeeping.
const DateLayout = "2006-01-02"

// Advance applies at most one calendar day's streak transition and
// returns the new state plus the notification to show. The input state
// is not modified. A zero-value state means first-ever run. Calling
// twice on the same day is a no-op on the second call.
func Advance(state models.GamificationState, today time.Time) (models.GamificationState, Notification) {
	todayStr := today.Format(DateLayout)

	if state.LastLoginDate == "" {
		state.Streak = 1
		state.LastLoginDate = todayStr
		state.History = []models.StreakDay{{Date: todayStr, Status: models.StreakFlame}}
		return state, NotificationFlame
	}

	if state.LastLoginDate == todayStr {
		return state, NotificationNone
	}

	// Copy before appending so the caller's slice is left alone.
	history := make([]models.StreakDay, len(state.History), len(state.History)+2)
	copy(history, state.History)

	var notification Notification
	switch diff := dayDistance(state.LastLoginDate, todayStr); {
	case diff == 1:
		state.Streak++
		history = append(history, models.StreakDay{Date: todayStr, Status: models.StreakFlame})
		notification = NotificationFlame
	case diff == 2:
		// One missed day freezes rather than breaks the streak, and
		// today's check-in still extends it.
		yesterday := today.AddDate(0, 0, -1).Format(DateLayout)
		history = append(history,
			models.StreakDay{Date: yesterday, Status: models.StreakFreeze},
			models.StreakDay{Date: todayStr, Status: models.StreakFlame},
		)
		state.Streak++
		notification = NotificationFreeze
	default:
		state.Streak = 1
		history = append(history, models.StreakDay{Date: todayStr, Status: models.StreakFlame})
		notification = NotificationExtinguish
	}

	state.History = history
	state.LastLoginDate = todayStr
	return state, notification
}

// dayDistance returns the whole calendar days between two YYYY-MM-DD
// dates, ignoring direction.
func dayDistance(a, b string) int {
	ta, errA := time.Parse(DateLayout, a)
	tb, errB := time.Parse(DateLayout, b)
	if errA != nil || errB != nil {
		// Unparseable state counts as a long absence, resetting the streak.
		return math.MaxInt32
	}
	return int(math.Abs(tb.Sub(ta).Hours()) / 24)
}
