package repository

import (
	"context"
	"encoding/json"

	"github.com/vytor/lingoflash/internal/logger"
	"github.com/vytor/lingoflash/internal/models"
	"github.com/vytor/lingoflash/internal/storage"
)

type flashcardRepository struct {
	store storage.Store
}

// NewFlashcardRepository creates a new FlashcardRepository over the store
func NewFlashcardRepository(store storage.Store) FlashcardRepository {
	return &flashcardRepository{store: store}
}

func (r *flashcardRepository) List(ctx context.Context) ([]models.Flashcard, error) {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")

	records, err := r.store.GetAll(ctx, storage.CollectionFlashcards)
	if err != nil {
		log.Error("failed to list flashcards: %v", err)
		return nil, err
	}

	cards := make([]models.Flashcard, 0, len(records))
	for _, data := range records {
		var c models.Flashcard
		if err := json.Unmarshal(data, &c); err != nil {
			log.Error("failed to decode flashcard record: %v", err)
			return nil, err
		}
		cards = append(cards, c)
	}
	log.Debug("listed %d flashcards", len(cards))
	return cards, nil
}

func (r *flashcardRepository) Get(ctx context.Context, id string) (*models.Flashcard, error) {
	data, err := r.store.Get(ctx, storage.CollectionFlashcards, id)
	if err != nil || data == nil {
		return nil, err
	}
	var c models.Flashcard
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *flashcardRepository) Put(ctx context.Context, card models.Flashcard) error {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")
	log.Debug("saving flashcard: id=%s, interval=%d, ease=%.2f", card.ID, card.IntervalDays, card.EaseFactor)

	data, err := json.Marshal(card)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, storage.CollectionFlashcards, card.ID, data)
}

func (r *flashcardRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, storage.CollectionFlashcards, id)
}
