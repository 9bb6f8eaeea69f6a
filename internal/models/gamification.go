package models

// StreakStatus marks how a calendar day counted toward the streak.
type StreakStatus string

const (
	StreakFlame  StreakStatus = "flame"
	StreakFreeze StreakStatus = "freeze"
	StreakMissed StreakStatus = "missed"
)

// StreakDay is one calendar-day entry in the streak history.
type StreakDay struct {
	Date   string       `json:"date"`
	Status StreakStatus `json:"status"`
}

// GamificationState is the singleton streak record. Dates use the
// YYYY-MM-DD layout; an empty LastLoginDate means no check-in has
// ever happened.
type GamificationState struct {
	Streak        int         `json:"streak"`
	LastLoginDate string      `json:"lastLoginDate"`
	History       []StreakDay `json:"history"`
}
