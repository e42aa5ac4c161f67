package models

import "time"

// UserStats aggregates across all of a user's sessions, at most one row
// per user. AverageTimePerPuzzle is a running mean over every attempt,
// correct or not. BestSessionScore never decreases.
type UserStats struct {
	UserID                string    `json:"userId"`
	TotalScore            int       `json:"totalScore"`
	TotalPuzzlesSolved    int       `json:"totalPuzzlesSolved"`
	TotalPuzzlesAttempted int       `json:"totalPuzzlesAttempted"`
	BestSessionScore      int       `json:"bestSessionScore"`
	AverageTimePerPuzzle  float64   `json:"averageTimePerPuzzle"`
	MathPuzzlesSolved     int       `json:"mathPuzzlesSolved"`
	SciencePuzzlesSolved  int       `json:"sciencePuzzlesSolved"`
	PuzzlePuzzlesSolved   int       `json:"puzzlePuzzlesSolved"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// AttemptDelta carries one scored attempt into the stats upsert.
// SessionID identifies the owning session so the store can fold its
// post-update total into BestSessionScore atomically.
type AttemptDelta struct {
	UserID         string
	SessionID      int64
	PuzzleType     string
	PointsEarned   int
	IsCorrect      bool
	ElapsedSeconds float64
}
