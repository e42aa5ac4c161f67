package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karim/quizrush/internal/models"
)

// Every category, locale and tier must have a non-empty pool, and each
// entry must be answerable.
func TestBankIntegrity(t *testing.T) {
	locales := []string{LocaleEN, LocaleAR}

	for _, category := range models.Categories() {
		byLocale, ok := pools[category]
		require.True(t, ok, "category %s missing from bank", category)

		for _, locale := range locales {
			byTier, ok := byLocale[locale]
			require.True(t, ok, "category %s missing locale %s", category, locale)

			for _, tier := range Tiers() {
				pool := byTier[tier]
				require.NotEmpty(t, pool, "empty pool: %s/%s/%s", category, locale, tier)

				for i, p := range pool {
					assert.NotEmpty(t, p.Question, "%s/%s/%s[%d]: empty question", category, locale, tier, i)
					assert.NotEmpty(t, p.Answer, "%s/%s/%s[%d]: empty answer", category, locale, tier, i)
					assert.Empty(t, p.Type, "%s/%s/%s[%d]: type must be stamped by the generator", category, locale, tier, i)

					if category == models.CategoryScience {
						assert.Len(t, p.Options, 4, "%s/%s/%s[%d]", category, locale, tier, i)
						assert.Contains(t, p.Options, p.Answer, "%s/%s/%s[%d]: answer not among options", category, locale, tier, i)
					} else {
						assert.Empty(t, p.Options, "%s/%s/%s[%d]: unexpected options", category, locale, tier, i)
					}
				}
			}
		}
	}
}
