package models

import "time"

// CardStatus tracks where a card sits in its learning lifecycle. It is
// derived from rating history by the scheduler and never set directly.
type CardStatus string

const (
	StatusNew      CardStatus = "new"
	StatusLearning CardStatus = "learning"
	StatusReview   CardStatus = "review"
	StatusMastered CardStatus = "mastered"
)

// QueueRank orders statuses for study queues: relearn cards first,
// mastered cards last. Unknown statuses sort after everything.
func (s CardStatus) QueueRank() int {
	switch s {
	case StatusLearning:
		return 0
	case StatusReview:
		return 1
	case StatusNew:
		return 2
	case StatusMastered:
		return 3
	default:
		return 4
	}
}

// Valid reports whether s is one of the four known statuses.
func (s CardStatus) Valid() bool {
	return s == StatusNew || s == StatusLearning || s == StatusReview || s == StatusMastered
}

// Flashcard is a bilingual card with its scheduling state.
// Scheduling fields (NextReview, IntervalDays, EaseFactor, Repetition,
// Status) are owned by the scheduler; text edits must leave them intact.
type Flashcard struct {
	ID           string     `json:"id"`
	FolderID     string     `json:"folderId"`
	FR           string     `json:"fr"`
	ES           string     `json:"es"`
	NextReview   time.Time  `json:"nextReview"`
	IntervalDays int        `json:"interval"`
	EaseFactor   float64    `json:"easeFactor"`
	Repetition   int        `json:"repetition"`
	Status       CardStatus `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// NewFlashcard returns a card with the initial scheduling state: due
// immediately, zero interval, default ease.
func NewFlashcard(id, folderID, fr, es string, now time.Time) Flashcard {
	return Flashcard{
		ID:           id,
		FolderID:     folderID,
		FR:           fr,
		ES:           es,
		NextReview:   now,
		IntervalDays: 0,
		EaseFactor:   2.5,
		Repetition:   0,
		Status:       StatusNew,
		CreatedAt:    now,
	}
}
