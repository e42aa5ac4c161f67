package db

import (
	"context"

	"github.com/karim/quizrush/internal/logger"
	"github.com/karim/quizrush/internal/models"
)

// InsertPuzzleResult appends one attempt to the append-only result log.
func (db *DB) InsertPuzzleResult(ctx context.Context, r models.PuzzleResult) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("db")
	log.Debug("inserting puzzle result: session_id=%d, type=%s, correct=%t", r.GameSessionID, r.PuzzleType, r.IsCorrect)

	res, err := db.ExecContext(ctx, `
INSERT INTO puzzle_results
(game_session_id, user_id, puzzle_type, puzzle_data, user_answer, correct_answer, is_correct, time_taken_seconds, points_earned)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`, r.GameSessionID, r.UserID, r.PuzzleType, r.PuzzleData, r.UserAnswer, r.CorrectAnswer, r.IsCorrect, r.TimeTakenSeconds, r.PointsEarned)
	if err != nil {
		log.Error("failed to insert puzzle result: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get puzzle result id: %v", err)
		return 0, err
	}
	log.Debug("puzzle result inserted: id=%d", id)
	return id, nil
}
