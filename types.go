// Package arabizi converts romanized Arabic into Arabic script and gates
// machine translations of it.
package arabizi

import "context"

// Reason classifies the outcome of a pipeline run.
type Reason string

const (
	// ReasonOK means the pipeline completed; Emit tells whether the
	// translation differed meaningfully from the input.
	ReasonOK Reason = "ok"
	// ReasonUnavailable means the translation backend failed or returned an
	// empty payload. Nothing was translated.
	ReasonUnavailable Reason = "unavailable"
)

// Result is the outcome of processing one text unit.
//
// When Emit is true the collaborator should surface Payload to the user.
// When Reason is ReasonUnavailable, Payload is empty and Emit follows the
// pipeline's notify-on-failure policy: true means the collaborator should
// tell the user translation is unavailable, false means stay silent.
type Result struct {
	Emit    bool   // Surface something to the user
	Payload string // Translated text (empty when suppressed or unavailable)
	Reason  Reason // ReasonOK or ReasonUnavailable
}

// Translator is the interface for external translation backends.
//
// Implementations must return either a non-empty translation or an error,
// never an ambiguous empty success; the pipeline treats an empty payload as
// a backend failure.
type Translator interface {
	Translate(ctx context.Context, req TranslateRequest) (string, error)
}

// TranslateRequest contains the parameters for a translation request.
type TranslateRequest struct {
	Text       string // Text to translate (best transliteration attempt)
	TargetLang string // Target language code (e.g. "en", "en_US")
	SourceLang string // Source language code; "auto" lets the backend detect
}

// TranslationCache is the interface for translation-memory caching.
type TranslationCache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// PipelineConfig holds configuration for the pipeline, for callers that load
// settings from flags or a file. See NewPipelineFromConfig.
type PipelineConfig struct {
	TargetLang      string // Target language code (e.g. "en")
	SourceLang      string // Source language code (default: "auto")
	NotifyOnFailure bool   // Emit an unavailable signal instead of staying silent
}
