package game

import "strings"

// digitReplacer maps each Arabic-Indic digit to its Latin equivalent.
// The ranges don't overlap, so replacement order doesn't matter.
var digitReplacer = strings.NewReplacer(
	"٠", "0",
	"١", "1",
	"٢", "2",
	"٣", "3",
	"٤", "4",
	"٥", "5",
	"٦", "6",
	"٧", "7",
	"٨", "8",
	"٩", "9",
)

// NormalizeAnswer canonicalizes an answer for comparison: lowercase,
// trim surrounding whitespace, then map Arabic-Indic digits to Latin.
// It is applied to both the submitted and the reference answer, so a
// player answering "٤" matches a reference of "4" and vice versa.
// Non-numeric Arabic text is left as-is.
func NormalizeAnswer(text string) string {
	return digitReplacer.Replace(strings.TrimSpace(strings.ToLower(text)))
}
