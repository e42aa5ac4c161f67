package services

import (
	"context"

	"github.com/karim/quizrush/internal/errors"
	"github.com/karim/quizrush/internal/logger"
	"github.com/karim/quizrush/internal/models"
	"github.com/karim/quizrush/internal/repository"
)

// historyLimit caps how many sessions the history view returns.
const historyLimit = 10

// StatsService handles statistics-related business logic
type StatsService interface {
	UserStats(ctx context.Context, userID string) (*models.UserStats, error)
	History(ctx context.Context, userID string) ([]models.GameSession, error)
}

type statsService struct {
	statsRepo   repository.StatsRepository
	sessionRepo repository.SessionRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(statsRepo repository.StatsRepository, sessionRepo repository.SessionRepository) StatsService {
	return &statsService{
		statsRepo:   statsRepo,
		sessionRepo: sessionRepo,
	}
}

// UserStats returns the user's aggregates, or a zeroed default for users
// who have never submitted an answer.
func (s *statsService) UserStats(ctx context.Context, userID string) (*models.UserStats, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting user stats: user_id=%s", userID)

	stats, err := s.statsRepo.Get(ctx, userID)
	if err != nil {
		log.Error("failed to get user stats: %v", err)
		return nil, errors.NewStoreUnavailableError(err)
	}
	if stats == nil {
		return &models.UserStats{UserID: userID}, nil
	}
	return stats, nil
}

func (s *statsService) History(ctx context.Context, userID string) ([]models.GameSession, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting session history: user_id=%s", userID)

	sessions, err := s.sessionRepo.ListRecent(ctx, userID, historyLimit)
	if err != nil {
		log.Error("failed to list sessions: %v", err)
		return nil, errors.NewStoreUnavailableError(err)
	}
	if sessions == nil {
		sessions = []models.GameSession{}
	}
	return sessions, nil
}
