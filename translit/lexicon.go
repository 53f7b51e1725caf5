package translit

import (
	"regexp"
	"strings"
)

// defaultLexicon maps whole Arabizi words to their conventional Arabic
// spellings. Spelling by phoneme substitution alone misses words whose
// written form is idiomatic (hamza seats, taa marbuta, assimilated articles),
// so common words are looked up before falling back to character rules.
var defaultLexicon = map[string]string{
	"ana":       "أنا",
	"enta":      "أنت",
	"enti":      "أنتي",
	"howa":      "هو",
	"heya":      "هي",
	"e7na":      "احنا",
	"3omri":     "عمري",
	"7abibi":    "حبيبي",
	"habibi":    "حبيبي",
	"7abibti":   "حبيبتي",
	"bahebak":   "بحبك",
	"ba7ebak":   "بحبك",
	"bahebik":   "بحبك",
	"shukran":   "شكرا",
	"salam":     "سلام",
	"marhaba":   "مرحبا",
	"mar7aba":   "مرحبا",
	"sabah":     "صباح",
	"masa":      "مساء",
	"kheir":     "خير",
	"5eir":      "خير",
	"keefak":    "كيفك",
	"kifak":     "كيفك",
	"kwayes":    "كويس",
	"tamam":     "تمام",
	"yalla":     "يلا",
	"inshallah": "إن شاء الله",
	"mashallah": "ما شاء الله",
	"wallah":    "والله",
	"akhi":      "أخي",
	"a5i":       "أخي",
	"okhti":     "أختي",
	"sadiki":    "صديقي",
	"shway":     "شوي",
	"shwaya":    "شوية",
	"ktir":      "كتير",
	"la":        "لا",
	"aywa":      "أيوه",
	"na3am":     "نعم",
	"leh":       "ليه",
	"eh":        "ايه",
	"fen":       "فين",
	"delwa2ti":  "دلوقتي",
	"bokra":     "بكرة",
	"embare7":   "امبارح",
	"mabrouk":   "مبروك",
	"ma3lesh":   "معلش",
	"khalas":    "خلص",
	"5alas":     "خلص",
}

// wordPattern isolates romanized word tokens; punctuation and whitespace stay
// outside the match and therefore pass through untouched.
var wordPattern = regexp.MustCompile(`[a-zA-Z0-9']+`)

// LexiconStrategy transliterates word by word: known words come from a
// dictionary, unknown words are handed to a fallback strategy.
type LexiconStrategy struct {
	entries  map[string]string
	fallback Strategy
}

// LexiconOption configures a LexiconStrategy.
type LexiconOption func(*LexiconStrategy)

// WithEntries merges additional word entries into the lexicon, overriding
// built-in words on collision.
func WithEntries(entries map[string]string) LexiconOption {
	return func(s *LexiconStrategy) {
		for word, arabic := range entries {
			s.entries[strings.ToLower(word)] = arabic
		}
	}
}

// WithFallback sets the strategy used for words absent from the lexicon.
// Default is the table strategy.
func WithFallback(fallback Strategy) LexiconOption {
	return func(s *LexiconStrategy) {
		s.fallback = fallback
	}
}

// NewLexiconStrategy creates a lexicon-based strategy with the built-in
// dictionary of common Arabizi words.
func NewLexiconStrategy(opts ...LexiconOption) *LexiconStrategy {
	s := &LexiconStrategy{
		entries:  make(map[string]string, len(defaultLexicon)),
		fallback: NewTableStrategy(nil),
	}
	for word, arabic := range defaultLexicon {
		s.entries[word] = arabic
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Convert replaces each romanized word: lexicon hit wins, otherwise the word
// goes through the fallback strategy. Non-word characters are untouched.
func (s *LexiconStrategy) Convert(input string) (string, error) {
	if input == "" {
		return "", nil
	}

	var convErr error
	out := wordPattern.ReplaceAllStringFunc(input, func(word string) string {
		if arabic, ok := s.entries[strings.ToLower(word)]; ok {
			return arabic
		}
		converted, err := s.fallback.Convert(word)
		if err != nil {
			convErr = err
			return word
		}
		return converted
	})

	return out, convErr
}

// Name implements Strategy.
func (s *LexiconStrategy) Name() string {
	return "lexicon"
}

// Verify LexiconStrategy implements Strategy
var _ Strategy = (*LexiconStrategy)(nil)
