package arabizi

import (
	"errors"
	"strings"
	"testing"
)

func TestTranslationError(t *testing.T) {
	cause := errors.New("underlying")
	err := &TranslationError{Message: "pipeline failed", Cause: cause}

	if !strings.Contains(err.Error(), "pipeline failed") {
		t.Errorf("unexpected message: %s", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("Unwrap should expose the cause")
	}

	bare := &TranslationError{Message: "no cause"}
	if bare.Error() != "no cause" {
		t.Errorf("unexpected message: %s", bare.Error())
	}
}

func TestTranslatorError(t *testing.T) {
	cause := errors.New("connection reset")
	err := &TranslatorError{Message: "request failed", Cause: cause, Retryable: true}

	if !strings.Contains(err.Error(), "translator error") {
		t.Errorf("unexpected message: %s", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("Unwrap should expose the cause")
	}

	var trErr *TranslatorError
	if !errors.As(err, &trErr) || !trErr.Retryable {
		t.Error("errors.As should recover the Retryable flag")
	}
}

func TestTransliterationError(t *testing.T) {
	err := &TransliterationError{Message: "bad rune", Strategy: "phonetic"}

	if !strings.Contains(err.Error(), "phonetic") {
		t.Errorf("message should name the strategy: %s", err.Error())
	}
}

func TestCacheError(t *testing.T) {
	cause := errors.New("redis down")
	err := &CacheError{Message: "set failed", Cause: cause}

	if !strings.Contains(err.Error(), "cache error") {
		t.Errorf("unexpected message: %s", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("Unwrap should expose the cause")
	}
}
