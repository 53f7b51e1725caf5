package arabizi

import (
	"strings"
	"unicode"
)

// LanguageNames maps language codes to human-readable names for AI prompts.
var LanguageNames = map[string]string{
	"en": "English",
	"ar": "Arabic",
	"fr": "French",
	"de": "German",
	"es": "Spanish",
	"it": "Italian",
	"nl": "Dutch",
	"pt": "Portuguese",
	"ru": "Russian",
	"tr": "Turkish",
	"ur": "Urdu",
	"fa": "Persian",
	"he": "Hebrew",
	"hi": "Hindi",
	"id": "Indonesian",
	"ja": "Japanese",
	"ko": "Korean",
	"zh": "Chinese",
}

// RTLLanguages contains language codes that use right-to-left text direction.
var RTLLanguages = map[string]bool{
	"ar": true, // Arabic
	"he": true, // Hebrew
	"fa": true, // Persian/Farsi
	"ur": true, // Urdu
	"ps": true, // Pashto
	"sd": true, // Sindhi
	"ug": true, // Uyghur
}

// GetLanguageName returns the human-readable name for a language code.
// Falls back to the code itself if not found.
func GetLanguageName(langCode string) string {
	if name, ok := LanguageNames[BaseLang(langCode)]; ok {
		return name
	}
	return langCode
}

// BaseLang extracts the base language code (e.g., "en" from "en_US" or
// "en-GB").
func BaseLang(langCode string) string {
	base := langCode
	if idx := strings.IndexAny(base, "-_"); idx >= 0 {
		base = base[:idx]
	}
	return strings.ToLower(base)
}

// GetDirection returns "rtl" for right-to-left languages, "ltr" otherwise.
func GetDirection(langCode string) string {
	if RTLLanguages[BaseLang(langCode)] {
		return "rtl"
	}
	return "ltr"
}

// IsRTL returns true if the language uses right-to-left text direction.
func IsRTL(langCode string) bool {
	return GetDirection(langCode) == "rtl"
}

// ContainsArabic reports whether s contains at least one Arabic-script rune.
// Input already in Arabic script skips transliteration entirely.
func ContainsArabic(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Arabic, r) {
			return true
		}
	}
	return false
}
