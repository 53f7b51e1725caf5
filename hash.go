package arabizi

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashText computes the SHA-256 hash of the trimmed text. Used as the
// translation-memory key so arbitrary user text never ends up in cache keys.
func HashText(text string) string {
	trimmed := strings.TrimSpace(text)
	hash := sha256.Sum256([]byte(trimmed))
	return hex.EncodeToString(hash[:])
}

// CacheKey generates a translation-memory key from a text hash and target
// language.
func CacheKey(hash, targetLang string) string {
	return hash + ":" + targetLang
}

// CacheKeyExtended generates an extended key including the source language
// and backend name, for deployments that mix backends on one store.
func CacheKeyExtended(hash, sourceLang, targetLang, backend string) string {
	return hash + ":" + sourceLang + ":" + targetLang + ":" + backend
}
