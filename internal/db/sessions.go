package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/karim/quizrush/internal/logger"
	"github.com/karim/quizrush/internal/models"
)

func (db *DB) InsertGameSession(ctx context.Context, userID string) (*models.GameSession, error) {
	log := logger.FromContext(ctx).WithPrefix("db")
	log.Debug("inserting game session: user_id=%s", userID)

	res, err := db.ExecContext(ctx, `
INSERT INTO game_sessions (user_id, total_score, puzzles_solved, puzzles_attempted, session_duration_seconds)
VALUES (?, 0, 0, 0, 0)
`, userID)
	if err != nil {
		log.Error("failed to insert game session: %v", err)
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get game session id: %v", err)
		return nil, err
	}
	log.Debug("game session inserted: id=%d", id)
	return db.GetGameSession(ctx, id)
}

func (db *DB) GetGameSession(ctx context.Context, id int64) (*models.GameSession, error) {
	log := logger.FromContext(ctx).WithPrefix("db")
	log.Debug("fetching game session: id=%d", id)

	var s models.GameSession
	err := db.QueryRowContext(ctx, `
SELECT id, user_id, total_score, puzzles_solved, puzzles_attempted, session_duration_seconds, created_at, updated_at
FROM game_sessions
WHERE id = ?
`, id).Scan(&s.ID, &s.UserID, &s.TotalScore, &s.PuzzlesSolved, &s.PuzzlesAttempted, &s.SessionDurationSeconds, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("game session not found: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get game session: %v", err)
		return nil, err
	}
	return &s, nil
}

// ApplyAttemptToSession folds one scored attempt into the session row.
// The increments run in a single statement so concurrent submissions
// serialize in the store.
func (db *DB) ApplyAttemptToSession(ctx context.Context, id int64, pointsEarned, solved int) error {
	log := logger.FromContext(ctx).WithPrefix("db")
	log.Debug("applying attempt to session: id=%d, points=%d, solved=%d", id, pointsEarned, solved)

	_, err := db.ExecContext(ctx, `
UPDATE game_sessions
SET total_score = total_score + ?,
    puzzles_solved = puzzles_solved + ?,
    puzzles_attempted = puzzles_attempted + 1,
    updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`, pointsEarned, solved, id)
	if err != nil {
		log.Error("failed to update game session: %v", err)
	}
	return err
}
