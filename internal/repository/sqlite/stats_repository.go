package sqlite

import (
	"context"

	"github.com/karim/quizrush/internal/db"
	"github.com/karim/quizrush/internal/models"
	"github.com/karim/quizrush/internal/repository"
)

type statsRepository struct {
	db *db.DB
}

// NewStatsRepository creates a new StatsRepository implementation
func NewStatsRepository(db *db.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) Get(ctx context.Context, userID string) (*models.UserStats, error) {
	return r.db.GetUserStats(ctx, userID)
}

func (r *statsRepository) ApplyAttempt(ctx context.Context, delta models.AttemptDelta) error {
	return r.db.UpsertUserStatsForAttempt(ctx, delta)
}
