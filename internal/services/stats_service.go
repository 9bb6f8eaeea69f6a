package services

import (
	"context"
	"time"

	"github.com/vytor/lingoflash/internal/errors"
	"github.com/vytor/lingoflash/internal/models"
	"github.com/vytor/lingoflash/internal/repository"
)

// StatsService aggregates read-only collection statistics.
type StatsService interface {
	Overview(ctx context.Context) (*models.StatsOverview, error)
}

type statsService struct {
	cards repository.FlashcardRepository
	now   func() time.Time
}

// NewStatsService creates a new StatsService
func NewStatsService(cards repository.FlashcardRepository) StatsService {
	return &statsService{cards: cards, now: time.Now}
}

func (s *statsService) Overview(ctx context.Context) (*models.StatsOverview, error) {
	cards, err := s.cards.List(ctx)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}

	now := s.now()
	overview := &models.StatsOverview{
		TotalCards: len(cards),
		ByStatus:   map[models.CardStatus]int{},
	}
	for _, c := range cards {
		overview.ByStatus[c.Status]++
		if !c.NextReview.After(now) {
			overview.DueNow++
		}
	}
	return overview, nil
}
