package game

import (
	"math/rand/v2"

	"github.com/karim/quizrush/internal/errors"
	"github.com/karim/quizrush/internal/models"
)

// Locales supported by the puzzle bank. Anything that isn't Arabic
// falls back to English, matching the client's default.
const (
	LocaleEN = "en"
	LocaleAR = "ar"
)

// Generate draws one puzzle for the category at the difficulty tier the
// score maps to. Selection is uniform over the pool and independent
// across calls; repeats are expected. Unknown categories fail with an
// INVALID_CATEGORY error before any draw.
func Generate(category string, score int, locale string) (*models.Puzzle, error) {
	byLocale, ok := pools[category]
	if !ok {
		return nil, errors.NewInvalidCategoryError(category)
	}
	if locale != LocaleAR {
		locale = LocaleEN
	}

	pool := byLocale[locale][TierForScore(score)]
	p := pool[rand.IntN(len(pool))]
	p.Type = category
	return &p, nil
}
