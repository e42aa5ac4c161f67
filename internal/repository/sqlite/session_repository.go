package sqlite

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/karim/quizrush/internal/db"
	"github.com/karim/quizrush/internal/logger"
	"github.com/karim/quizrush/internal/models"
	"github.com/karim/quizrush/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

type sessionRepository struct {
	db *db.DB
}

// NewSessionRepository creates a new SessionRepository implementation
func NewSessionRepository(db *db.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Insert(ctx context.Context, userID string) (*models.GameSession, error) {
	return r.db.InsertGameSession(ctx, userID)
}

func (r *sessionRepository) Get(ctx context.Context, id int64) (*models.GameSession, error) {
	return r.db.GetGameSession(ctx, id)
}

func (r *sessionRepository) ApplyAttempt(ctx context.Context, id int64, pointsEarned, solved int) error {
	return r.db.ApplyAttemptToSession(ctx, id, pointsEarned, solved)
}

func (r *sessionRepository) ListRecent(ctx context.Context, userID string, limit int) ([]models.GameSession, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("listing recent sessions: user_id=%s, limit=%d", userID, limit)

	if limit <= 0 {
		limit = 10
	}

	query := sqlBuilder.Select(
		"id", "user_id", "total_score", "puzzles_solved", "puzzles_attempted",
		"session_duration_seconds", "created_at", "updated_at",
	).From("game_sessions").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit))

	sql, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sql, args...)
	if err != nil {
		log.Error("failed to list sessions: %v", err)
		return nil, err
	}
	defer rows.Close()

	var sessions []models.GameSession
	for rows.Next() {
		var s models.GameSession
		if err := rows.Scan(&s.ID, &s.UserID, &s.TotalScore, &s.PuzzlesSolved, &s.PuzzlesAttempted, &s.SessionDurationSeconds, &s.CreatedAt, &s.UpdatedAt); err != nil {
			log.Error("failed to scan session row: %v", err)
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating session rows: %v", err)
		return nil, err
	}
	log.Debug("found %d sessions", len(sessions))
	return sessions, nil
}
