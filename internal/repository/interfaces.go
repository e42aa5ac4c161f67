package repository

import (
	"context"

	"github.com/karim/quizrush/internal/models"
)

// SessionRepository handles game session data access
type SessionRepository interface {
	Insert(ctx context.Context, userID string) (*models.GameSession, error)
	Get(ctx context.Context, id int64) (*models.GameSession, error)
	ApplyAttempt(ctx context.Context, id int64, pointsEarned, solved int) error
	ListRecent(ctx context.Context, userID string, limit int) ([]models.GameSession, error)
}

// ResultRepository handles the append-only attempt log
type ResultRepository interface {
	Insert(ctx context.Context, result models.PuzzleResult) (int64, error)
}

// StatsRepository handles per-user aggregate data access
type StatsRepository interface {
	Get(ctx context.Context, userID string) (*models.UserStats, error)
	ApplyAttempt(ctx context.Context, delta models.AttemptDelta) error
}
