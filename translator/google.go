package translator

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/ZaguanLabs/arabizi"
)

const (
	// defaultGoogleBaseURL is the mobile translation page; it serves plain
	// HTML with the translation in a .result-container element, no API key
	// needed.
	defaultGoogleBaseURL = "https://translate.google.com"

	// defaultGoogleTimeout bounds one translation request.
	defaultGoogleTimeout = 15 * time.Second

	// resultSelector is the CSS class holding the translated text on the
	// mobile page.
	resultSelector = ".result-container"
)

// GoogleTranslator implements Translator by scraping Google Translate's
// mobile endpoint. No authentication is required, but the endpoint is not an
// official API: wrap it with a rate limiter and expect occasional 429s.
type GoogleTranslator struct {
	client  *http.Client
	baseURL string
}

// GoogleConfig holds configuration for the Google backend.
type GoogleConfig struct {
	BaseURL string        // Custom base URL (for testing; default: translate.google.com)
	Timeout time.Duration // Request timeout (default: 15s)
	Client  *http.Client  // Custom HTTP client (optional)
}

// NewGoogleTranslator creates a new Google Translate scraping backend.
func NewGoogleTranslator(cfg GoogleConfig) *GoogleTranslator {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultGoogleBaseURL
	}

	client := cfg.Client
	if client == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = defaultGoogleTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	return &GoogleTranslator{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Translate fetches the translation of req.Text into req.TargetLang.
func (g *GoogleTranslator) Translate(ctx context.Context, req TranslateRequest) (string, error) {
	if strings.TrimSpace(req.Text) == "" {
		return "", &arabizi.TranslatorError{
			Message:   "empty text",
			Retryable: false,
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, g.buildURL(req), nil)
	if err != nil {
		return "", &arabizi.TranslatorError{
			Message:   "building request",
			Cause:     err,
			Retryable: false,
		}
	}
	httpReq.Header.Set("User-Agent", arabizi.UserAgent())

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return "", &arabizi.TranslatorError{
			Message:   "Google Translate request failed",
			Cause:     err,
			Retryable: true,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &arabizi.TranslatorError{
			Message:   fmt.Sprintf("unexpected status %d", resp.StatusCode),
			Retryable: resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500,
		}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", &arabizi.TranslatorError{
			Message:   "parsing response HTML",
			Cause:     err,
			Retryable: false,
		}
	}

	sel := doc.Find(resultSelector)
	if sel.Length() == 0 {
		return "", &arabizi.TranslatorError{
			Message:   "no translation in response",
			Retryable: false,
		}
	}

	translated := strings.TrimSpace(sel.First().Text())
	if translated == "" {
		return "", &arabizi.TranslatorError{
			Message:   "empty translation in response",
			Retryable: false,
		}
	}

	return translated, nil
}

// buildURL assembles the mobile-endpoint query for the request.
func (g *GoogleTranslator) buildURL(req TranslateRequest) string {
	source := req.SourceLang
	if source == "" {
		source = "auto"
	}

	q := url.Values{}
	q.Set("sl", source)
	q.Set("tl", arabizi.BaseLang(req.TargetLang))
	q.Set("q", req.Text)

	return g.baseURL + "/m?" + q.Encode()
}

// Verify GoogleTranslator implements Translator
var _ Translator = (*GoogleTranslator)(nil)
