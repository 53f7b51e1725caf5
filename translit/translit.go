// Package translit converts romanized Arabic (Arabizi) into Arabic script.
//
// Arabizi spells Arabic with Latin letters and digits: digits stand in for
// phonemes the Latin alphabet lacks (3 for ع, 7 for ح), and digraphs like
// "sh" and "kh" spell single Arabic letters. Three interchangeable strategies
// are provided: a substitution table, a phonetic longest-match transcriber,
// and a word lexicon. Callers should depend only on the Strategy contract,
// not on which concrete strategy is active.
//
// All strategies are safe for concurrent use; their tables are built once and
// never mutated.
package translit

// Strategy converts romanized Arabic text into Arabic script.
type Strategy interface {
	// Convert returns the Arabic-script rendition of input. Characters with
	// no mapping (spaces, punctuation, already-Arabic text) pass through
	// unchanged.
	Convert(input string) (string, error)

	// Name identifies the strategy (e.g. "table", "phonetic", "lexicon").
	Name() string
}

// Transliterate applies the strategy and guarantees a usable result: on any
// internal failure, including a panic, the original input is returned
// unchanged. It never fails the surrounding pipeline.
func Transliterate(s Strategy, input string) (out string) {
	if input == "" {
		return ""
	}

	defer func() {
		if recover() != nil {
			out = input
		}
	}()

	converted, err := s.Convert(input)
	if err != nil || converted == "" {
		return input
	}
	return converted
}
