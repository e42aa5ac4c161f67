package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/karim/quizrush/internal/game"
	"github.com/karim/quizrush/internal/models"
)

func TestScore_CorrectAcrossDigitScripts(t *testing.T) {
	puzzle := models.Puzzle{Type: models.CategoryMath, Question: "2 + 2 = ?", Answer: "4"}

	res := game.Score(puzzle, "٤", 0, 0)

	assert.True(t, res.IsCorrect)
	assert.Equal(t, "4", res.CorrectAnswer)
	// beginner base 5 plus the full 15-point instant-answer bonus
	assert.Equal(t, 20, res.PointsEarned)
}

func TestScore_Incorrect(t *testing.T) {
	puzzle := models.Puzzle{Type: models.CategoryMath, Question: "2 + 2 = ?", Answer: "4"}

	res := game.Score(puzzle, "5", 0, 0)

	assert.False(t, res.IsCorrect)
	assert.Equal(t, "4", res.CorrectAnswer)
	assert.Equal(t, 0, res.PointsEarned)
}

func TestScore_NoBonusAtOrPastWindow(t *testing.T) {
	puzzle := models.Puzzle{Type: models.CategoryMath, Question: "2 + 2 = ?", Answer: "4"}

	for _, elapsed := range []float64{30, 31, 120} {
		res := game.Score(puzzle, "4", elapsed, 0)
		assert.True(t, res.IsCorrect)
		assert.Equal(t, 5, res.PointsEarned, "elapsed %.0f", elapsed)
	}
}

func TestScore_TierFromCurrentSessionScore(t *testing.T) {
	puzzle := models.Puzzle{Type: models.CategoryMath, Question: "2 + 2 = ?", Answer: "4"}

	cases := []struct {
		score int
		want  int
	}{
		{0, 5},
		{50, 10},
		{100, 15},
		{200, 25},
		{300, 40},
	}
	for _, c := range cases {
		res := game.Score(puzzle, "4", 30, c.score)
		assert.Equal(t, c.want, res.PointsEarned, "session score %d", c.score)
	}
}

func TestScore_CaseAndWhitespaceInsensitive(t *testing.T) {
	puzzle := models.Puzzle{
		Type:     models.CategoryScience,
		Question: "Which planet is closest to the sun?",
		Options:  []string{"Venus", "Mercury", "Mars", "Earth"},
		Answer:   "Mercury",
	}

	res := game.Score(puzzle, "  mercury ", 12, 0)

	assert.True(t, res.IsCorrect)
	assert.Equal(t, "Mercury", res.CorrectAnswer)
	// base 5 plus round((30-12)/2) = 9
	assert.Equal(t, 14, res.PointsEarned)
}
