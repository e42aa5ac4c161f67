package models

// Puzzle categories as they appear on the wire and in storage.
const (
	CategoryMath    = "math"
	CategoryScience = "science"
	CategoryPuzzle  = "puzzle" // wordplay: anagrams, sequences, riddles
)

// Categories lists every valid puzzle category.
func Categories() []string {
	return []string{CategoryMath, CategoryScience, CategoryPuzzle}
}

// ValidCategory reports whether c names a known puzzle category.
func ValidCategory(c string) bool {
	switch c {
	case CategoryMath, CategoryScience, CategoryPuzzle:
		return true
	}
	return false
}

// Puzzle is a single question presented to the player. Type discriminates
// the variant: math and puzzle entries are free-answer, science entries
// carry exactly four options and Answer equals one of them. Answer is the
// single ground truth a submission is compared against.
type Puzzle struct {
	Type     string   `json:"type"`
	Question string   `json:"question"`
	Options  []string `json:"options,omitempty"`
	Answer   string   `json:"answer"`
	Hint     string   `json:"hint,omitempty"`
}
