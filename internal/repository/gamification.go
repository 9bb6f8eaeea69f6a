package repository

import (
	"context"
	"encoding/json"

	"github.com/vytor/lingoflash/internal/logger"
	"github.com/vytor/lingoflash/internal/models"
	"github.com/vytor/lingoflash/internal/storage"
)

const gamificationKey = "state"

type gamificationRepository struct {
	store storage.Store
}

// NewGamificationRepository creates a new GamificationRepository over the store
func NewGamificationRepository(store storage.Store) GamificationRepository {
	return &gamificationRepository{store: store}
}

// State returns the singleton streak record, or nil on first-ever run.
func (r *gamificationRepository) State(ctx context.Context) (*models.GamificationState, error) {
	data, err := r.store.Get(ctx, storage.CollectionGamification, gamificationKey)
	if err != nil || data == nil {
		return nil, err
	}
	var state models.GamificationState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (r *gamificationRepository) SaveState(ctx context.Context, state models.GamificationState) error {
	log := logger.FromContext(ctx).WithPrefix("gamification_repo")
	log.Debug("saving streak state: streak=%d, last_login=%s", state.Streak, state.LastLoginDate)

	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, storage.CollectionGamification, gamificationKey, data)
}
