package game

import "github.com/karim/quizrush/internal/models"

// pools indexes the static puzzle bank: category → locale → tier.
// The tables are package-level constants in all but name: initialized
// once, read-only afterwards, so no synchronization is needed. Every
// category × locale × tier combination holds at least one entry; pools
// grow richer at higher tiers. Entries leave Type unset, the generator
// stamps it on the drawn copy.
var pools = map[string]map[string]map[Tier][]models.Puzzle{
	models.CategoryMath: {
		LocaleEN: mathPuzzlesEN,
		LocaleAR: mathPuzzlesAR,
	},
	models.CategoryScience: {
		LocaleEN: sciencePuzzlesEN,
		LocaleAR: sciencePuzzlesAR,
	},
	models.CategoryPuzzle: {
		LocaleEN: wordPuzzlesEN,
		LocaleAR: wordPuzzlesAR,
	},
}
