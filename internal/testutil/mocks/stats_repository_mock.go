package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/karim/quizrush/internal/models"
)

// MockStatsRepository is a mock implementation of repository.StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) Get(ctx context.Context, userID string) (*models.UserStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserStats), args.Error(1)
}

func (m *MockStatsRepository) ApplyAttempt(ctx context.Context, delta models.AttemptDelta) error {
	args := m.Called(ctx, delta)
	return args.Error(0)
}
