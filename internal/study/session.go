package study

import (
	"errors"
	"sync"

	"github.com/vytor/lingoflash/internal/models"
)

// ErrRatingInProgress is returned when a rating is requested while the
// previous one has not finished persisting.
var ErrRatingInProgress = errors.New("a rating is already in progress")

// ErrSessionFinished is returned when the cursor has passed the last card.
var ErrSessionFinished = errors.New("session finished")

type sessionState int

const (
	stateIdle sessionState = iota
	stateRating
)

// Session is an in-progress study queue with a cursor. Ratings follow
// an explicit idle → rating → idle state machine: BeginRating claims
// the current card, and exactly one of FinishRating or AbortRating
// must follow before the next rating may begin. Failed cards are
// appended to the end of this queue so they resurface before the
// session ends.
type Session struct {
	mu     sync.Mutex
	cards  []models.Flashcard
	cursor int
	state  sessionState
}

// NewSession wraps an ordered queue produced by BuildQueue.
func NewSession(cards []models.Flashcard) *Session {
	return &Session{cards: cards}
}

// Current returns the card under the cursor, or false when the session
// is finished.
func (s *Session) Current() (models.Flashcard, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor >= len(s.cards) {
		return models.Flashcard{}, false
	}
	return s.cards[s.cursor], true
}

// BeginRating claims the current card for rating. It fails when another
// rating is in flight or the session is over.
func (s *Session) BeginRating() (models.Flashcard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == stateRating {
		return models.Flashcard{}, ErrRatingInProgress
	}
	if s.cursor >= len(s.cards) {
		return models.Flashcard{}, ErrSessionFinished
	}
	s.state = stateRating
	return s.cards[s.cursor], nil
}

// FinishRating records the persisted outcome of the claimed card,
// advances the cursor, and re-enqueues the updated card when the
// answer was wrong.
func (s *Session) FinishRating(updated models.Flashcard, requeue bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != stateRating {
		return
	}
	s.cards[s.cursor] = updated
	if requeue {
		s.cards = append(s.cards, updated)
	}
	s.cursor++
	s.state = stateIdle
}

// AbortRating releases the claim without advancing, leaving the card to
// be rated again. Used when persistence fails.
func (s *Session) AbortRating() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = stateIdle
}

// Done reports whether the cursor has passed the last card, including
// any re-enqueued failures.
func (s *Session) Done() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor >= len(s.cards)
}

// Progress returns the cursor position and the current queue length.
func (s *Session) Progress() (position, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor, len(s.cards)
}

// Cards returns a copy of the current queue.
func (s *Session) Cards() []models.Flashcard {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Flashcard, len(s.cards))
	copy(out, s.cards)
	return out
}
