package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/karim/quizrush/internal/models"
)

// MockSessionRepository is a mock implementation of repository.SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Insert(ctx context.Context, userID string) (*models.GameSession, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GameSession), args.Error(1)
}

func (m *MockSessionRepository) Get(ctx context.Context, id int64) (*models.GameSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GameSession), args.Error(1)
}

func (m *MockSessionRepository) ApplyAttempt(ctx context.Context, id int64, pointsEarned, solved int) error {
	args := m.Called(ctx, id, pointsEarned, solved)
	return args.Error(0)
}

func (m *MockSessionRepository) ListRecent(ctx context.Context, userID string, limit int) ([]models.GameSession, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.GameSession), args.Error(1)
}
