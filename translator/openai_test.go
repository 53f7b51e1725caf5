package translator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ZaguanLabs/arabizi"
)

func TestOpenAITranslator_BuildSystemPrompt(t *testing.T) {
	tr := NewOpenAITranslator(OpenAIConfig{APIKey: "test"})

	prompt := tr.buildSystemPrompt(TranslateRequest{TargetLang: "fr"})
	if !strings.Contains(prompt, "French") {
		t.Error("prompt should name the target language")
	}
	if !strings.Contains(prompt, "detect it") {
		t.Error("auto source should ask for detection")
	}

	prompt = tr.buildSystemPrompt(TranslateRequest{TargetLang: "en", SourceLang: "ar"})
	if !strings.Contains(prompt, "Arabic") {
		t.Error("explicit source language should appear in the prompt")
	}
	if !strings.Contains(prompt, `"translation"`) {
		t.Error("prompt should pin the JSON response key")
	}
}

func TestOpenAITranslator_ParseResponse(t *testing.T) {
	tr := NewOpenAITranslator(OpenAIConfig{APIKey: "test"})

	tests := []struct {
		name    string
		content string
		want    string
		wantErr bool
	}{
		{"translation key", `{"translation": "hello"}`, "hello", false},
		{"other string key", `{"result": "hello"}`, "hello", false},
		{"empty object", `{}`, "", true},
		{"not json", `hello`, "", true},
		{"non-string value", `{"translation": 42}`, "", true},
		{"empty string value", `{"translation": ""}`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tr.parseResponse(tt.content)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseResponse(%q) error = %v, wantErr %v", tt.content, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseResponse(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestOpenAITranslator_EmptyText(t *testing.T) {
	tr := NewOpenAITranslator(OpenAIConfig{APIKey: "test"})

	_, err := tr.Translate(context.Background(), TranslateRequest{Text: "  ", TargetLang: "en"})
	var trErr *arabizi.TranslatorError
	if !errors.As(err, &trErr) {
		t.Fatalf("expected TranslatorError, got %v", err)
	}
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{errors.New("Rate limit reached for gpt-4o-mini"), true},
		{errors.New("request timeout"), true},
		{errors.New("dial tcp: connection refused"), true},
		{errors.New("status code 503"), true},
		{errors.New("invalid API key"), false},
		{errors.New("context length exceeded"), false},
	}

	for _, tt := range tests {
		if got := isRetryableError(tt.err); got != tt.want {
			t.Errorf("isRetryableError(%q) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestMockTranslator(t *testing.T) {
	m := NewMockTranslator()

	got, err := m.Translate(context.Background(), TranslateRequest{Text: "مرحبا", TargetLang: "en"})
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if got != "hello" {
		t.Errorf("got %q, want hello", got)
	}

	got, _ = m.Translate(context.Background(), TranslateRequest{Text: "unknown text", TargetLang: "en"})
	if got != "[unknown text]" {
		t.Errorf("unknown text should be bracketed, got %q", got)
	}

	if m.CallCount != 2 {
		t.Errorf("CallCount = %d, want 2", m.CallCount)
	}
	if m.LastRequest == nil || m.LastRequest.Text != "unknown text" {
		t.Error("LastRequest should record the final call")
	}

	m.Err = errors.New("backend down")
	if _, err := m.Translate(context.Background(), TranslateRequest{Text: "hi"}); err == nil {
		t.Error("configured error should surface")
	}

	m.Err = nil
	m.Empty = true
	got, err = m.Translate(context.Background(), TranslateRequest{Text: "hi"})
	if err != nil || got != "" {
		t.Errorf("Empty mode should return \"\" with no error, got %q, %v", got, err)
	}

	m.Reset()
	if m.CallCount != 0 || m.LastRequest != nil {
		t.Error("Reset should clear call tracking")
	}
}
