package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/karim/quizrush/internal/game"
)

func TestTierForScore_Boundaries(t *testing.T) {
	cases := []struct {
		score int
		want  game.Tier
	}{
		{0, game.TierBeginner},
		{49, game.TierBeginner},
		{50, game.TierEasy},
		{99, game.TierEasy},
		{100, game.TierMedium},
		{199, game.TierMedium},
		{200, game.TierHard},
		{299, game.TierHard},
		{300, game.TierExpert},
		{10000, game.TierExpert},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, game.TierForScore(c.score), "score %d", c.score)
	}
}

func TestTierForScore_Monotonic(t *testing.T) {
	rank := map[game.Tier]int{}
	for i, tier := range game.Tiers() {
		rank[tier] = i
	}

	prev := game.TierForScore(0)
	for score := 1; score <= 400; score++ {
		cur := game.TierForScore(score)
		assert.GreaterOrEqual(t, rank[cur], rank[prev], "tier regressed at score %d", score)
		prev = cur
	}
}

func TestBasePoints(t *testing.T) {
	assert.Equal(t, 5, game.BasePoints(game.TierBeginner))
	assert.Equal(t, 10, game.BasePoints(game.TierEasy))
	assert.Equal(t, 15, game.BasePoints(game.TierMedium))
	assert.Equal(t, 25, game.BasePoints(game.TierHard))
	assert.Equal(t, 40, game.BasePoints(game.TierExpert))
}

func TestBasePoints_UnknownTierClamps(t *testing.T) {
	assert.Equal(t, 10, game.BasePoints(game.Tier("legendary")))
}
