package services

import (
	"context"
	"sync"
	"time"

	"github.com/vytor/lingoflash/internal/errors"
	"github.com/vytor/lingoflash/internal/logger"
	"github.com/vytor/lingoflash/internal/models"
	"github.com/vytor/lingoflash/internal/repository"
	"github.com/vytor/lingoflash/internal/scheduler"
	"github.com/vytor/lingoflash/internal/study"
)

// RatingResult is the outcome of rating the current card.
type RatingResult struct {
	Card     models.Flashcard `json:"card"`
	Requeued bool             `json:"requeued"`
	Done     bool             `json:"done"`
	Position int              `json:"position"`
	Total    int              `json:"total"`
}

// StudyService runs study sessions. It holds at most one active session
// and serializes ratings: each rating computes the scheduling update,
// waits for the write to land, then advances the queue cursor. Starting
// a new session abandons the previous one, which is safe because every
// rated card was already persisted.
type StudyService interface {
	StartSession(ctx context.Context, folderID string, onlyDue bool, mode study.Mode) ([]models.Flashcard, error)
	CurrentCard(ctx context.Context) (*models.Flashcard, int, int, error)
	RateCurrent(ctx context.Context, quality int) (*RatingResult, error)
	EndSession(ctx context.Context)
}

type studyService struct {
	cards     repository.FlashcardRepository
	folders   repository.FolderRepository
	lookahead time.Duration
	now       func() time.Time

	mu      sync.Mutex
	session *study.Session
}

// NewStudyService creates a new StudyService. A zero lookahead falls
// back to study.DefaultLookahead.
func NewStudyService(cards repository.FlashcardRepository, folders repository.FolderRepository, lookahead time.Duration) StudyService {
	return &studyService{
		cards:     cards,
		folders:   folders,
		lookahead: lookahead,
		now:       time.Now,
	}
}

func (s *studyService) StartSession(ctx context.Context, folderID string, onlyDue bool, mode study.Mode) ([]models.Flashcard, error) {
	log := logger.FromContext(ctx)

	var folders []models.Folder
	if folderID != "" {
		var err error
		folders, err = s.folders.List(ctx)
		if err != nil {
			return nil, errors.NewInternalError(err)
		}
		found := false
		for _, f := range folders {
			if f.ID == folderID {
				found = true
				break
			}
		}
		if !found {
			return nil, errors.NewNotFoundError("folder", folderID)
		}
	}

	cards, err := s.cards.List(ctx)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}

	queue, err := study.BuildQueue(cards, study.QueueOptions{
		Folders:   folders,
		FolderID:  folderID,
		OnlyDue:   onlyDue,
		Mode:      mode,
		Now:       s.now(),
		Lookahead: s.lookahead,
	})
	if err != nil {
		// ErrNothingToStudy passes through as an empty-state signal.
		return nil, err
	}

	s.mu.Lock()
	s.session = study.NewSession(queue)
	s.mu.Unlock()

	log.Info("study session started: cards=%d, folder=%q, mode=%q", len(queue), folderID, mode)
	return queue, nil
}

func (s *studyService) CurrentCard(ctx context.Context) (*models.Flashcard, int, int, error) {
	session := s.activeSession()
	if session == nil {
		return nil, 0, 0, errors.NewBadRequestError("no active study session")
	}
	position, total := session.Progress()
	card, ok := session.Current()
	if !ok {
		return nil, position, total, nil
	}
	return &card, position, total, nil
}

func (s *studyService) RateCurrent(ctx context.Context, quality int) (*RatingResult, error) {
	log := logger.FromContext(ctx)

	session := s.activeSession()
	if session == nil {
		return nil, errors.NewBadRequestError("no active study session")
	}

	card, err := session.BeginRating()
	if err != nil {
		switch err {
		case study.ErrRatingInProgress:
			return nil, errors.NewConflictError("previous rating still in progress")
		case study.ErrSessionFinished:
			return nil, errors.NewBadRequestError("study session is finished")
		}
		return nil, errors.NewInternalError(err)
	}

	updated, err := scheduler.Rate(card, quality, s.now())
	if err != nil {
		session.AbortRating()
		return nil, err
	}

	// The in-memory view only advances once the write is durable; a
	// failed write leaves the same card up for rating on retry.
	if err := s.cards.Put(ctx, updated); err != nil {
		session.AbortRating()
		log.Error("failed to persist rating for card %s: %v", card.ID, err)
		return nil, errors.NewInternalError(err)
	}

	requeue := quality == scheduler.QualityAgain
	session.FinishRating(updated, requeue)

	position, total := session.Progress()
	log.Debug("card rated: id=%s, quality=%d, interval=%d, status=%s", updated.ID, quality, updated.IntervalDays, updated.Status)
	return &RatingResult{
		Card:     updated,
		Requeued: requeue,
		Done:     session.Done(),
		Position: position,
		Total:    total,
	}, nil
}

func (s *studyService) EndSession(ctx context.Context) {
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()
	logger.FromContext(ctx).Debug("study session ended")
}

func (s *studyService) activeSession() *study.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}
