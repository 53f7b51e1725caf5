package translit

import (
	"strings"
	"unicode/utf8"
)

// phoneticRules maps romanized sequences to Arabic script. Longer sequences
// carry more phonetic information, so the scanner always tries the longest
// window first.
var phoneticRules = map[string]string{
	// Trigraphs
	"sch": "ش",
	"tch": "تش",

	// Digraphs
	"sh": "ش",
	"ch": "تش",
	"th": "ث",
	"kh": "خ",
	"gh": "غ",
	"dh": "ذ",
	"3'": "غ",
	"6'": "ظ",
	"7'": "خ",
	"9'": "ض",

	// Long vowels
	"aa": "ا",
	"ee": "ي",
	"ii": "ي",
	"oo": "و",
	"ou": "و",
	"uu": "و",
	"ei": "ي",
	"ai": "اي",

	// Digit stand-ins
	"2": "ء",
	"3": "ع",
	"5": "خ",
	"6": "ط",
	"7": "ح",
	"8": "ق",
	"9": "ص",

	// Single letters
	"a": "ا",
	"b": "ب",
	"c": "ك",
	"d": "د",
	"e": "ي",
	"f": "ف",
	"g": "ج",
	"h": "ه",
	"i": "ي",
	"j": "ج",
	"k": "ك",
	"l": "ل",
	"m": "م",
	"n": "ن",
	"o": "و",
	"p": "ب",
	"q": "ق",
	"r": "ر",
	"s": "س",
	"t": "ت",
	"u": "و",
	"v": "ف",
	"w": "و",
	"x": "كس",
	"y": "ي",
	"z": "ز",
	"'": "ء",
}

// maxRuleLen is the widest window the scanner tries.
const maxRuleLen = 3

// PhoneticStrategy transcribes Arabizi with a longest-match-first scan. It
// differs from the table strategy in that matching is positional: each input
// position is consumed exactly once, so overlapping rules cannot interact.
type PhoneticStrategy struct {
	rules map[string]string
}

// NewPhoneticStrategy creates a phonetic transcription strategy. A nil rules
// map selects the built-in rule set.
func NewPhoneticStrategy(rules map[string]string) *PhoneticStrategy {
	if rules == nil {
		rules = phoneticRules
	}
	return &PhoneticStrategy{rules: rules}
}

// Convert scans the lowercased input left to right, consuming the longest
// matching rule at each position. Runes with no rule, including Arabic text
// and punctuation, pass through unchanged.
func (s *PhoneticStrategy) Convert(input string) (string, error) {
	if input == "" {
		return "", nil
	}

	text := strings.ToLower(input)

	var b strings.Builder
	b.Grow(len(text))

	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])

		// Rules are ASCII-keyed; multi-byte runes can never match.
		if size == 1 {
			matched := false
			for length := maxRuleLen; length > 0; length-- {
				if i+length > len(text) {
					continue
				}
				if arabic, ok := s.rules[text[i:i+length]]; ok {
					b.WriteString(arabic)
					i += length
					matched = true
					break
				}
			}
			if matched {
				continue
			}
		}

		b.WriteRune(r)
		i += size
	}

	return b.String(), nil
}

// Name implements Strategy.
func (s *PhoneticStrategy) Name() string {
	return "phonetic"
}

// Verify PhoneticStrategy implements Strategy
var _ Strategy = (*PhoneticStrategy)(nil)
