package arabizi

import (
	"context"
	"strings"

	"github.com/ZaguanLabs/arabizi/translit"
)

// Pipeline orchestrates one text unit end to end: transliterate the raw
// input, translate it through the external backend, then gate the candidate
// against the original.
//
// A Pipeline holds no mutable state; every Process call is independent and
// the zero shared structure is the read-only transliteration strategy, so a
// single Pipeline is safe for unlimited concurrent use.
type Pipeline struct {
	targetLang      string
	sourceLang      string
	translator      Translator
	strategy        translit.Strategy
	cache           TranslationCache
	notifyOnFailure bool
}

// PipelineOption is a functional option for configuring the Pipeline.
type PipelineOption func(*Pipeline)

// WithSourceLang sets the source language hint passed to the backend.
// Default is "auto" (backend-side detection).
func WithSourceLang(lang string) PipelineOption {
	return func(p *Pipeline) {
		p.sourceLang = lang
	}
}

// WithStrategy sets the transliteration strategy. Default is the lexicon
// strategy with table fallback.
func WithStrategy(s translit.Strategy) PipelineOption {
	return func(p *Pipeline) {
		p.strategy = s
	}
}

// WithCache sets the translation-memory cache. Without a cache every unit
// goes to the backend.
func WithCache(cache TranslationCache) PipelineOption {
	return func(p *Pipeline) {
		p.cache = cache
	}
}

// WithNotifyOnFailure controls the unavailable policy. When enabled, a
// backend failure produces Result{Emit: true, Reason: ReasonUnavailable} so
// the collaborator can tell the user translation is down; when disabled
// (the default) the failure is silent.
func WithNotifyOnFailure(notify bool) PipelineOption {
	return func(p *Pipeline) {
		p.notifyOnFailure = notify
	}
}

// NewPipeline creates a pipeline translating into targetLang via the given
// backend.
func NewPipeline(targetLang string, translator Translator, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		targetLang: targetLang,
		sourceLang: "auto",
		translator: translator,
		strategy:   translit.NewLexiconStrategy(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// NewPipelineFromConfig creates a pipeline from a config struct, for callers
// that load settings from flags or a file. Zero-value fields keep the
// defaults; extra options apply on top of the config.
func NewPipelineFromConfig(cfg PipelineConfig, translator Translator, opts ...PipelineOption) *Pipeline {
	base := []PipelineOption{
		WithNotifyOnFailure(cfg.NotifyOnFailure),
	}
	if cfg.SourceLang != "" {
		base = append(base, WithSourceLang(cfg.SourceLang))
	}

	return NewPipeline(cfg.TargetLang, translator, append(base, opts...)...)
}

// Process runs one text unit through the pipeline.
//
// The returned error is non-nil only when ctx was cancelled; the in-flight
// unit is discarded and nothing is emitted. Every other failure mode is data:
// backend trouble comes back as Result{Reason: ReasonUnavailable}, and a
// transliteration failure silently falls back to the raw input.
func (p *Pipeline) Process(ctx context.Context, raw string) (Result, error) {
	if strings.TrimSpace(raw) == "" {
		return Result{Emit: false, Reason: ReasonOK}, nil
	}

	// Already-Arabic input needs no script conversion.
	text := raw
	if !ContainsArabic(raw) {
		text = translit.Transliterate(p.strategy, raw)
	}

	candidate, ok := p.lookupCache(text)
	if !ok {
		translated, err := p.translator.Translate(ctx, TranslateRequest{
			Text:       text,
			TargetLang: p.targetLang,
			SourceLang: p.sourceLang,
		})
		if ctx.Err() != nil {
			return Result{}, ctx.Err()
		}
		if err != nil || strings.TrimSpace(translated) == "" {
			return p.unavailable(), nil
		}

		candidate = translated
		p.storeCache(text, candidate)
	}

	if !ShouldEmit(raw, candidate) {
		return Result{Emit: false, Reason: ReasonOK}, nil
	}

	return Result{Emit: true, Payload: candidate, Reason: ReasonOK}, nil
}

// unavailable builds the backend-failure outcome under the configured
// notification policy.
func (p *Pipeline) unavailable() Result {
	return Result{
		Emit:   p.notifyOnFailure,
		Reason: ReasonUnavailable,
	}
}

func (p *Pipeline) lookupCache(text string) (string, bool) {
	if p.cache == nil {
		return "", false
	}
	return p.cache.Get(CacheKey(HashText(text), p.targetLang))
}

func (p *Pipeline) storeCache(text, translation string) {
	if p.cache == nil {
		return
	}
	// Ignore cache set errors; the memory is best effort.
	_ = p.cache.Set(CacheKey(HashText(text), p.targetLang), translation)
}

// TargetLang returns the target language.
func (p *Pipeline) TargetLang() string {
	return p.targetLang
}

// SourceLang returns the source language hint.
func (p *Pipeline) SourceLang() string {
	return p.sourceLang
}

// Strategy returns the active transliteration strategy.
func (p *Pipeline) Strategy() translit.Strategy {
	return p.strategy
}

// NotifyOnFailure reports the configured unavailable policy.
func (p *Pipeline) NotifyOnFailure() bool {
	return p.notifyOnFailure
}
