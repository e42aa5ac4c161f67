package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/karim/quizrush/internal/logger"
	"github.com/karim/quizrush/internal/models"
)

func (db *DB) GetUserStats(ctx context.Context, userID string) (*models.UserStats, error) {
	log := logger.FromContext(ctx).WithPrefix("db")
	log.Debug("fetching user stats: user_id=%s", userID)

	var s models.UserStats
	err := db.QueryRowContext(ctx, `
SELECT user_id, total_score, total_puzzles_solved, total_puzzles_attempted, best_session_score,
       average_time_per_puzzle, math_puzzles_solved, science_puzzles_solved, puzzle_puzzles_solved,
       created_at, updated_at
FROM user_stats
WHERE user_id = ?
`, userID).Scan(&s.UserID, &s.TotalScore, &s.TotalPuzzlesSolved, &s.TotalPuzzlesAttempted, &s.BestSessionScore,
		&s.AverageTimePerPuzzle, &s.MathPuzzlesSolved, &s.SciencePuzzlesSolved, &s.PuzzlePuzzlesSolved,
		&s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no user stats yet: user_id=%s", userID)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get user stats: %v", err)
		return nil, err
	}
	return &s, nil
}

// UpsertUserStatsForAttempt folds one scored attempt into the user's
// stats row, creating it on first attempt. A single statement keeps the
// running mean and the best-score MAX atomic in the store: the mean
// weights the old average by the old attempt count before the count is
// bumped, and best_session_score folds in the owning session's total
// after the session update, so it can only grow.
func (db *DB) UpsertUserStatsForAttempt(ctx context.Context, d models.AttemptDelta) error {
	log := logger.FromContext(ctx).WithPrefix("db")
	log.Debug("upserting user stats: user_id=%s, points=%d, correct=%t", d.UserID, d.PointsEarned, d.IsCorrect)

	solved := 0
	if d.IsCorrect {
		solved = 1
	}
	var mathInc, scienceInc, puzzleInc int
	if d.IsCorrect {
		switch d.PuzzleType {
		case models.CategoryMath:
			mathInc = 1
		case models.CategoryScience:
			scienceInc = 1
		case models.CategoryPuzzle:
			puzzleInc = 1
		}
	}

	_, err := db.ExecContext(ctx, `
INSERT INTO user_stats
(user_id, total_score, total_puzzles_solved, total_puzzles_attempted, best_session_score,
 average_time_per_puzzle, math_puzzles_solved, science_puzzles_solved, puzzle_puzzles_solved)
VALUES (?, ?, ?, 1, COALESCE((SELECT total_score FROM game_sessions WHERE id = ?), 0), ?, ?, ?, ?)
ON CONFLICT(user_id) DO UPDATE SET
    total_score = user_stats.total_score + excluded.total_score,
    total_puzzles_solved = user_stats.total_puzzles_solved + excluded.total_puzzles_solved,
    average_time_per_puzzle = (user_stats.average_time_per_puzzle * user_stats.total_puzzles_attempted + ?)
        / (user_stats.total_puzzles_attempted + 1),
    total_puzzles_attempted = user_stats.total_puzzles_attempted + 1,
    best_session_score = MAX(user_stats.best_session_score, excluded.best_session_score),
    math_puzzles_solved = user_stats.math_puzzles_solved + excluded.math_puzzles_solved,
    science_puzzles_solved = user_stats.science_puzzles_solved + excluded.science_puzzles_solved,
    puzzle_puzzles_solved = user_stats.puzzle_puzzles_solved + excluded.puzzle_puzzles_solved,
    updated_at = CURRENT_TIMESTAMP
`, d.UserID, d.PointsEarned, solved, d.SessionID, d.ElapsedSeconds, mathInc, scienceInc, puzzleInc, d.ElapsedSeconds)
	if err != nil {
		log.Error("failed to upsert user stats: %v", err)
	}
	return err
}
