package models

import "time"

// GuestUserID is the sentinel owner of ephemeral sessions. Guest sessions
// use ID 0 and are never persisted.
const GuestUserID = "guest"

type GameSession struct {
	ID                     int64     `json:"id"`
	UserID                 string    `json:"userId"`
	TotalScore             int       `json:"totalScore"`
	PuzzlesSolved          int       `json:"puzzlesSolved"`
	PuzzlesAttempted       int       `json:"puzzlesAttempted"`
	SessionDurationSeconds int       `json:"sessionDurationSeconds"`
	CreatedAt              time.Time `json:"createdAt"`
	UpdatedAt              time.Time `json:"updatedAt"`
}

// IsGuest reports whether the session is the ephemeral guest sentinel.
func (s GameSession) IsGuest() bool {
	return s.ID == 0
}

// PuzzleResult is one scored attempt, append-only once written.
// PuzzleData holds the puzzle serialized as JSON at submission time.
type PuzzleResult struct {
	ID               int64     `json:"id"`
	GameSessionID    int64     `json:"gameSessionId"`
	UserID           string    `json:"userId"`
	PuzzleType       string    `json:"puzzleType"`
	PuzzleData       string    `json:"puzzleData"`
	UserAnswer       string    `json:"userAnswer"`
	CorrectAnswer    string    `json:"correctAnswer"`
	IsCorrect        bool      `json:"isCorrect"`
	TimeTakenSeconds float64   `json:"timeTakenSeconds"`
	PointsEarned     int       `json:"pointsEarned"`
	CreatedAt        time.Time `json:"createdAt"`
}

// SubmitAnswerRequest is the validated submit payload handed to the
// game service. UserAnswer may legitimately be empty: the client
// auto-submits an empty answer when the countdown expires.
type SubmitAnswerRequest struct {
	GameSessionID  int64   `json:"gameSessionId"`
	Puzzle         Puzzle  `json:"puzzle"`
	UserAnswer     string  `json:"userAnswer"`
	ElapsedSeconds float64 `json:"elapsedSeconds"`
}

// SubmitResult is what the client sees for every submission, guest or not.
type SubmitResult struct {
	IsCorrect     bool   `json:"isCorrect"`
	CorrectAnswer string `json:"correctAnswer"`
	PointsEarned  int    `json:"pointsEarned"`
}
