package sqlite

import (
	"context"

	"github.com/karim/quizrush/internal/db"
	"github.com/karim/quizrush/internal/models"
	"github.com/karim/quizrush/internal/repository"
)

type resultRepository struct {
	db *db.DB
}

// NewResultRepository creates a new ResultRepository implementation
func NewResultRepository(db *db.DB) repository.ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) Insert(ctx context.Context, result models.PuzzleResult) (int64, error) {
	return r.db.InsertPuzzleResult(ctx, result)
}
