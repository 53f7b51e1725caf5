package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ZaguanLabs/arabizi"
	"github.com/sashabaranov/go-openai"
)

// OpenAITranslator implements Translator using OpenAI's API. Unlike the
// scraping backend it understands dialectal Arabic and leftover Arabizi
// tokens the transliterator could not resolve.
type OpenAITranslator struct {
	client      *openai.Client
	model       string
	temperature float32
}

// OpenAIConfig holds configuration for the OpenAI backend.
type OpenAIConfig struct {
	APIKey      string  // OpenAI API key (uses OPENAI_API_KEY env var if empty)
	Model       string  // Model to use (default: "gpt-4o-mini")
	Temperature float32 // Temperature for generation (default: 0.3)
	BaseURL     string  // Custom base URL (optional)
}

// NewOpenAITranslator creates a new OpenAI backend.
func NewOpenAITranslator(cfg OpenAIConfig) *OpenAITranslator {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.3
	}

	return &OpenAITranslator{
		client:      openai.NewClientWithConfig(config),
		model:       model,
		temperature: temperature,
	}
}

// Translate translates one text using OpenAI.
func (t *OpenAITranslator) Translate(ctx context.Context, req TranslateRequest) (string, error) {
	if strings.TrimSpace(req.Text) == "" {
		return "", &arabizi.TranslatorError{
			Message:   "empty text",
			Retryable: false,
		}
	}

	resp, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: t.buildSystemPrompt(req)},
			{Role: openai.ChatMessageRoleUser, Content: req.Text},
		},
		Temperature: t.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", &arabizi.TranslatorError{
			Message:   "OpenAI API call failed",
			Cause:     err,
			Retryable: isRetryableError(err),
		}
	}

	if len(resp.Choices) == 0 {
		return "", &arabizi.TranslatorError{
			Message:   "no response from OpenAI",
			Retryable: true,
		}
	}

	return t.parseResponse(resp.Choices[0].Message.Content)
}

func (t *OpenAITranslator) buildSystemPrompt(req TranslateRequest) string {
	targetName := arabizi.GetLanguageName(req.TargetLang)

	sourceHint := "The source language may be Arabic (any dialect) or another language; detect it."
	if req.SourceLang != "" && req.SourceLang != "auto" {
		sourceHint = fmt.Sprintf("The source language is %s.", arabizi.GetLanguageName(req.SourceLang))
	}

	return fmt.Sprintf(`# Role
You are an expert translator of Arabic, including Egyptian, Levantine and Gulf dialects.

# Task
Translate the user's message into natural %s.
%s

# Rules
- The text may contain leftover romanized Arabic (Arabizi) tokens such as digits standing in for Arabic letters (3 for ain, 7 for haa). Read them phonetically.
- Do not explain, transliterate back, or add commentary. Translate only.
- If the text is already in %s, return it unchanged.

# Format
Return a valid JSON object with a single key "translation" containing the translated string.
Example: { "translation": "my life i love you" }`, targetName, sourceHint, targetName)
}

func (t *OpenAITranslator) parseResponse(content string) (string, error) {
	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(content), &obj); err == nil {
		if v, ok := obj["translation"]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s, nil
			}
		}

		// Fallback: first string value under any key.
		for _, v := range obj {
			if s, ok := v.(string); ok && s != "" {
				return s, nil
			}
		}
	}

	return "", &arabizi.TranslatorError{
		Message:   "invalid response format from OpenAI",
		Retryable: false,
	}
}

func isRetryableError(err error) bool {
	errStr := strings.ToLower(err.Error())
	retryablePatterns := []string{
		"rate limit",
		"timeout",
		"connection refused",
		"temporary",
		"503",
		"502",
		"429",
	}

	for _, pattern := range retryablePatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}
	return false
}

// Verify OpenAITranslator implements Translator
var _ Translator = (*OpenAITranslator)(nil)
