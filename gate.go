package arabizi

// Decision records an equivalence comparison between an original text and
// its candidate translation.
type Decision struct {
	Original   string // Raw input as the user wrote it
	Translated string // Candidate translation

	// CanonicalOriginal and CanonicalTranslated are the normalized forms the
	// comparison was made on.
	CanonicalOriginal   string
	CanonicalTranslated string

	// Emit is true when the translation differs meaningfully from the
	// original.
	Emit bool
}

// ShouldEmit reports whether translated differs meaningfully from original,
// i.e. by more than case, punctuation or whitespace. It is the sole
// gatekeeper against echoing input back at the user: a "translation" of text
// that was already in the target language normalizes to the same canonical
// form and is suppressed.
//
// Decisions are stateless and computed fresh on every call; inputs are
// arbitrary free text, so there is nothing bounded to cache.
func ShouldEmit(original, translated string) bool {
	return Normalize(original) != Normalize(translated)
}

// Compare runs the equivalence gate and returns the full decision, including
// the canonical forms it compared. Useful for logging and debugging emit
// choices.
func Compare(original, translated string) Decision {
	co := Normalize(original)
	ct := Normalize(translated)

	return Decision{
		Original:            original,
		Translated:          translated,
		CanonicalOriginal:   co,
		CanonicalTranslated: ct,
		Emit:                co != ct,
	}
}
