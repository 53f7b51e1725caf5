package arabizi

import "fmt"

// TranslationError is the base error type for pipeline failures.
type TranslationError struct {
	Message string
	Cause   error
}

func (e *TranslationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *TranslationError) Unwrap() error {
	return e.Cause
}

// TranslatorError indicates a translation backend failure (network error,
// rate limit, malformed response). The pipeline converts any TranslatorError
// into the ReasonUnavailable outcome; it never crosses the core boundary as
// a raw error.
type TranslatorError struct {
	Message   string
	Cause     error
	Retryable bool // Whether the operation can be retried
}

func (e *TranslatorError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("translator error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("translator error: %s", e.Message)
}

func (e *TranslatorError) Unwrap() error {
	return e.Cause
}

// TransliterationError indicates a transliteration strategy failure. It is
// recovered inside the pipeline (the original text is kept and processing
// continues) and is never surfaced to callers.
type TransliterationError struct {
	Message  string
	Cause    error
	Strategy string // Name of the strategy that failed
}

func (e *TransliterationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("transliteration error (%s): %s: %v", e.Strategy, e.Message, e.Cause)
	}
	return fmt.Sprintf("transliteration error (%s): %s", e.Strategy, e.Message)
}

func (e *TransliterationError) Unwrap() error {
	return e.Cause
}

// CacheError indicates a translation-memory operation failure.
type CacheError struct {
	Message string
	Cause   error
}

func (e *CacheError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cache error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("cache error: %s", e.Message)
}

func (e *CacheError) Unwrap() error {
	return e.Cause
}
