package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/lingoflash/internal/models"
)

// MockGamificationRepository is a mock implementation of repository.GamificationRepository
type MockGamificationRepository struct {
	mock.Mock
}

func (m *MockGamificationRepository) State(ctx context.Context) (*models.GamificationState, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GamificationState), args.Error(1)
}

func (m *MockGamificationRepository) SaveState(ctx context.Context, state models.GamificationState) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}
