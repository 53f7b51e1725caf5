// Package cache provides translation-memory implementations for the arabizi
// pipeline: an in-memory store with TTL and a Redis-backed store. Keys are
// SHA-256 hashes of the transliterated text joined with the target language,
// so the same phrase resent by a user never hits the backend twice.
package cache

import "github.com/ZaguanLabs/arabizi"

// TranslationCache is the interface for translation-memory caching.
// This is an alias to the main package interface for convenience.
type TranslationCache = arabizi.TranslationCache
