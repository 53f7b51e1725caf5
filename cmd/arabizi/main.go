// Command arabizi transliterates and translates Franco-Arabic text.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ZaguanLabs/arabizi"
	"github.com/ZaguanLabs/arabizi/cache"
	"github.com/ZaguanLabs/arabizi/translator"
	"github.com/ZaguanLabs/arabizi/translit"
)

// Build-time variables (can be overridden with ldflags)
var (
	version   = arabizi.Version
	commit    = arabizi.GitCommit
	buildDate = arabizi.BuildDate
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("arabizi", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Flags
	targetLang := fs.String("lang", "en", "Target language code (e.g., en, fr)")
	sourceLang := fs.String("source", "auto", "Source language code")
	strategy := fs.String("strategy", "lexicon", "Transliteration strategy: table, phonetic, lexicon")
	backend := fs.String("backend", "google", "Translation backend: google, openai")
	apiKey := fs.String("api-key", "", "OpenAI API key (default: OPENAI_API_KEY env)")
	model := fs.String("model", "gpt-4o-mini", "OpenAI model to use")
	cacheTTL := fs.Int("cache-ttl", 3600, "Translation memory TTL in seconds (0 to disable)")
	notify := fs.Bool("notify-on-failure", false, "Emit an unavailable notice when translation fails")
	translitOnly := fs.Bool("translit-only", false, "Show the transliteration without calling a backend")
	showVersion := fs.Bool("version", false, "Show version")
	quiet := fs.Bool("quiet", false, "Suppress progress output")
	jsonOutput := fs.Bool("json", false, "Output result as JSON")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", arabizi.Name, version)
		if commit != "unknown" && commit != "" {
			fmt.Fprintf(stdout, "  commit:  %s\n", commit)
		}
		if buildDate != "unknown" && buildDate != "" {
			fmt.Fprintf(stdout, "  built:   %s\n", buildDate)
		}
		return nil
	}

	// Get input: arguments joined, or stdin.
	var input string
	if fs.NArg() > 0 {
		input = strings.Join(fs.Args(), " ")
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		input = strings.TrimSpace(string(data))
	}
	if input == "" {
		return fmt.Errorf("no input text (pass as arguments or on stdin)")
	}

	strat, err := buildStrategy(*strategy)
	if err != nil {
		return err
	}

	// Transliteration-only mode needs no backend.
	if *translitOnly {
		converted := translit.Transliterate(strat, input)
		if *jsonOutput {
			return writeJSON(stdout, map[string]string{
				"input":          input,
				"strategy":       strat.Name(),
				"transliterated": converted,
			})
		}
		fmt.Fprintln(stdout, converted)
		return nil
	}

	backendImpl, err := buildBackend(*backend, *apiKey, *model)
	if err != nil {
		return err
	}

	opts := []arabizi.PipelineOption{
		arabizi.WithSourceLang(*sourceLang),
		arabizi.WithStrategy(strat),
		arabizi.WithNotifyOnFailure(*notify),
	}
	if *cacheTTL > 0 {
		opts = append(opts, arabizi.WithCache(cache.NewInMemoryCache(*cacheTTL)))
	}

	pipeline := arabizi.NewPipeline(*targetLang, backendImpl, opts...)

	if !*quiet {
		fmt.Fprintf(stderr, "Translating to %s via %s...\n", *targetLang, *backend)
	}

	start := time.Now()
	result, err := pipeline.Process(context.Background(), input)
	if err != nil {
		return fmt.Errorf("processing failed: %w", err)
	}
	elapsed := time.Since(start)

	if *jsonOutput {
		return writeJSON(stdout, struct {
			Emit      bool   `json:"emit"`
			Payload   string `json:"payload,omitempty"`
			Reason    string `json:"reason"`
			ElapsedMs int64  `json:"elapsed_ms"`
		}{
			Emit:      result.Emit,
			Payload:   result.Payload,
			Reason:    string(result.Reason),
			ElapsedMs: elapsed.Milliseconds(),
		})
	}

	switch {
	case result.Reason == arabizi.ReasonUnavailable:
		fmt.Fprintln(stdout, "translation unavailable")
	case result.Emit:
		fmt.Fprintln(stdout, result.Payload)
	default:
		fmt.Fprintln(stdout, "(suppressed: translation matches input)")
	}

	if !*quiet {
		fmt.Fprintf(stderr, "Done in %v\n", elapsed.Round(time.Millisecond))
	}

	return nil
}

// buildStrategy selects the transliteration strategy by name.
func buildStrategy(name string) (translit.Strategy, error) {
	switch name {
	case "table":
		return translit.NewTableStrategy(nil), nil
	case "phonetic":
		return translit.NewPhoneticStrategy(nil), nil
	case "lexicon":
		return translit.NewLexiconStrategy(), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (want table, phonetic or lexicon)", name)
	}
}

// buildBackend selects and configures the translation backend by name.
func buildBackend(name, apiKey, model string) (arabizi.Translator, error) {
	switch name {
	case "google":
		g := translator.NewGoogleTranslator(translator.GoogleConfig{})
		// The scraping endpoint dislikes bursts.
		return arabizi.NewRateLimitedTranslator(g, arabizi.RateLimitConfig{RequestsPerMinute: 30}), nil
	case "openai":
		key := apiKey
		if key == "" {
			key = os.Getenv("OPENAI_API_KEY")
		}
		if key == "" {
			return nil, fmt.Errorf("OpenAI API key required (--api-key or OPENAI_API_KEY env)")
		}
		o := translator.NewOpenAITranslator(translator.OpenAIConfig{
			APIKey: key,
			Model:  model,
		})
		return arabizi.NewRetryableTranslator(o, arabizi.DefaultRetryConfig()), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (want google or openai)", name)
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
