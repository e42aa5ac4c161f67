package game

import (
	"math"

	"github.com/karim/quizrush/internal/models"
)

// speedBonusWindow is the countdown length in seconds: answers at the
// buzzer earn no bonus, instant answers earn the full window/2.
const speedBonusWindow = 30

// ScoreResult is the outcome of scoring one submission.
type ScoreResult struct {
	IsCorrect     bool
	CorrectAnswer string
	PointsEarned  int
}

// Score compares the submitted answer against the puzzle's reference
// answer and computes the points earned. The difficulty tier comes from
// the session score at submission time, which can differ from the score
// the puzzle was drawn at; that ordering is deliberate.
//
// CorrectAnswer is returned verbatim for display, not normalized.
// Pure computation: persistence belongs to the caller.
func Score(p models.Puzzle, userAnswer string, elapsedSeconds float64, currentSessionScore int) ScoreResult {
	res := ScoreResult{CorrectAnswer: p.Answer}

	res.IsCorrect = NormalizeAnswer(userAnswer) == NormalizeAnswer(p.Answer)
	if !res.IsCorrect {
		return res
	}

	res.PointsEarned = BasePoints(TierForScore(currentSessionScore)) + speedBonus(elapsedSeconds)
	return res
}

// speedBonus rewards fast answers: half a point per second under the
// window, rounded, never negative. Elapsed times past the window earn
// nothing; negative elapsed (client clock skew) has no upper clamp and
// simply yields a larger bonus.
func speedBonus(elapsedSeconds float64) int {
	bonus := int(math.Round((speedBonusWindow - elapsedSeconds) / 2))
	if bonus < 0 {
		return 0
	}
	return bonus
}
