package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vytor/lingoflash/internal/errors"
	"github.com/vytor/lingoflash/internal/logger"
	"github.com/vytor/lingoflash/internal/models"
	"github.com/vytor/lingoflash/internal/repository"
)

// CardService handles flashcard CRUD. Text and folder edits never touch
// scheduling state; that belongs to the scheduler alone.
type CardService interface {
	ListCards(ctx context.Context) ([]models.Flashcard, error)
	CreateCard(ctx context.Context, folderID, fr, es string) (*models.Flashcard, error)
	UpdateCard(ctx context.Context, id, folderID, fr, es string) (*models.Flashcard, error)
	DeleteCard(ctx context.Context, id string) error
}

type cardService struct {
	cards   repository.FlashcardRepository
	folders repository.FolderRepository
	now     func() time.Time
}

// NewCardService creates a new CardService
func NewCardService(cards repository.FlashcardRepository, folders repository.FolderRepository) CardService {
	return &cardService{cards: cards, folders: folders, now: time.Now}
}

func (s *cardService) ListCards(ctx context.Context) ([]models.Flashcard, error) {
	cards, err := s.cards.List(ctx)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return cards, nil
}

func (s *cardService) CreateCard(ctx context.Context, folderID, fr, es string) (*models.Flashcard, error) {
	log := logger.FromContext(ctx)

	folder, err := s.folders.Get(ctx, folderID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if folder == nil {
		return nil, errors.NewNotFoundError("folder", folderID)
	}

	card := models.NewFlashcard(uuid.NewString(), folderID, fr, es, s.now())
	if err := s.cards.Put(ctx, card); err != nil {
		log.Error("failed to save new card: %v", err)
		return nil, errors.NewInternalError(err)
	}

	log.Info("card created: id=%s, folder=%s", card.ID, folderID)
	return &card, nil
}

func (s *cardService) UpdateCard(ctx context.Context, id, folderID, fr, es string) (*models.Flashcard, error) {
	log := logger.FromContext(ctx)

	existing, err := s.cards.Get(ctx, id)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("flashcard", id)
	}

	if folderID != "" && folderID != existing.FolderID {
		folder, err := s.folders.Get(ctx, folderID)
		if err != nil {
			return nil, errors.NewInternalError(err)
		}
		if folder == nil {
			return nil, errors.NewNotFoundError("folder", folderID)
		}
		existing.FolderID = folderID
	}

	// Only text and folder change here; scheduling fields carry over as-is.
	existing.FR = fr
	existing.ES = es

	if err := s.cards.Put(ctx, *existing); err != nil {
		log.Error("failed to update card %s: %v", id, err)
		return nil, errors.NewInternalError(err)
	}
	return existing, nil
}

func (s *cardService) DeleteCard(ctx context.Context, id string) error {
	if err := s.cards.Delete(ctx, id); err != nil {
		return errors.NewInternalError(err)
	}
	logger.FromContext(ctx).Info("card deleted: id=%s", id)
	return nil
}
