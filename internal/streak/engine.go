package streak

import (
	"context"
	"time"

	"github.com/vytor/lingoflash/internal/logger"
	"github.com/vytor/lingoflash/internal/models"
	"github.com/vytor/lingoflash/internal/repository"
)

// Engine runs the daily streak check against the persisted singleton
// record. Persistence failures never escalate: on a failed read the
// engine reports no streak info, on a failed write it reports the
// stale state, and since lastLoginDate is only advanced by a durable
// save the next check-in retries the same transition.
type Engine struct {
	repo repository.GamificationRepository
	now  func() time.Time
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithClock overrides the engine's time source.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates an Engine backed by the given repository.
func NewEngine(repo repository.GamificationRepository, opts ...EngineOption) *Engine {
	e := &Engine{repo: repo, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CheckIn evaluates today's streak transition, persists it, and returns
// the resulting state plus the one-shot notification to display.
// Calling it again the same day is a no-op.
func (e *Engine) CheckIn(ctx context.Context) (models.GamificationState, Notification) {
	log := logger.FromContext(ctx).WithPrefix("streak")
	today := e.now()

	stored, err := e.repo.State(ctx)
	if err != nil {
		log.Error("failed to load streak state: %v", err)
		return models.GamificationState{}, NotificationNone
	}

	var state models.GamificationState
	if stored != nil {
		state = *stored
	}

	next, notification := Advance(state, today)
	if notification == NotificationNone {
		log.Debug("streak already evaluated today: streak=%d", state.Streak)
		return state, NotificationNone
	}

	if err := e.repo.SaveState(ctx, next); err != nil {
		log.Error("failed to save streak state, keeping previous state: %v", err)
		return state, NotificationNone
	}

	log.Info("streak check-in: streak=%d, notification=%s", next.Streak, notification)
	return next, notification
}

// State returns the persisted streak record without evaluating a
// transition, degrading to an empty state when the read fails.
func (e *Engine) State(ctx context.Context) models.GamificationState {
	log := logger.FromContext(ctx).WithPrefix("streak")

	stored, err := e.repo.State(ctx)
	if err != nil {
		log.Error("failed to load streak state: %v", err)
		return models.GamificationState{}
	}
	if stored == nil {
		return models.GamificationState{}
	}
	return *stored
}
