package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/karim/quizrush/internal/game"
)

func TestNormalizeAnswer(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"٥", "5"},
		{" Cat ", "cat"},
		{"٤٢", "42"},
		{"  Mercury\t", "mercury"},
		{"7", "7"},
		{"", ""},
		{"   ", ""},
		// Arabic words pass through untouched, only digits are mapped.
		{"قطة", "قطة"},
		{"١٠ قطط", "10 قطط"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, game.NormalizeAnswer(c.in), "input %q", c.in)
	}
}

func TestNormalizeAnswer_Idempotent(t *testing.T) {
	inputs := []string{"٥", " Cat ", "٤٢", "mercury", "١٠ قطط", "MiXeD ٣"}
	for _, in := range inputs {
		once := game.NormalizeAnswer(in)
		assert.Equal(t, once, game.NormalizeAnswer(once), "input %q", in)
	}
}
