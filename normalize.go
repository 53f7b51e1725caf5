package arabizi

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

// nonWord matches a maximal run of characters that are neither letters,
// combining marks nor digits in any script. Underscore falls in this class
// (it is punctuation, not a letter), matching the comparison semantics of the
// gate. Marks are kept so that Arabic harakat and the combining dots full
// case folding can produce (U+0130 folds to "i" plus U+0307) stay attached to
// their base letter.
var nonWord = regexp.MustCompile(`[^\p{L}\p{M}\p{N}]+`)

// Normalize returns the canonical, comparison-ready form of s: the text is
// Unicode case folded, then runs of punctuation, whitespace and underscores
// collapse to single spaces and the result is trimmed. Arabic script has no
// case and passes through the fold unchanged.
//
// The fold runs first because full case folding can emit characters outside
// the word class; collapsing afterwards keeps the output a fixed point.
// Normalize is total, pure and idempotent: Normalize(Normalize(s)) ==
// Normalize(s) for every s. Invalid UTF-8 sequences are treated like any
// other non-word run and collapse away.
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	// cases.Caser is stateful; build one per call rather than sharing.
	folded := cases.Fold().String(s)

	collapsed := nonWord.ReplaceAllString(folded, " ")
	return strings.TrimSpace(collapsed)
}
