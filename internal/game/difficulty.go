package game

// Tier is a difficulty band derived purely from a session score.
// Tiers are totally ordered from beginner to expert.
type Tier string

const (
	TierBeginner Tier = "beginner"
	TierEasy     Tier = "easy"
	TierMedium   Tier = "medium"
	TierHard     Tier = "hard"
	TierExpert   Tier = "expert"
)

// Tiers lists every tier in ascending order.
func Tiers() []Tier {
	return []Tier{TierBeginner, TierEasy, TierMedium, TierHard, TierExpert}
}

// TierForScore maps a cumulative session score to its difficulty tier.
func TierForScore(score int) Tier {
	switch {
	case score < 50:
		return TierBeginner
	case score < 100:
		return TierEasy
	case score < 200:
		return TierMedium
	case score < 300:
		return TierHard
	default:
		return TierExpert
	}
}

// BasePoints returns the points a correct answer earns at the given tier,
// before any speed bonus. Unknown tiers clamp to the easy value.
func BasePoints(t Tier) int {
	switch t {
	case TierBeginner:
		return 5
	case TierEasy:
		return 10
	case TierMedium:
		return 15
	case TierHard:
		return 25
	case TierExpert:
		return 40
	default:
		return 10
	}
}
