package translator

import (
	"context"
	"fmt"
)

// MockTranslator is a mock backend for testing.
type MockTranslator struct {
	Translations map[string]string // Map of source text to translation
	Err          error             // When set, every call fails with this error
	Empty        bool              // When set, every call returns an empty payload
	CallCount    int               // Number of times Translate was called
	LastRequest  *TranslateRequest // Last request received
}

// NewMockTranslator creates a new mock backend with default translations.
func NewMockTranslator() *MockTranslator {
	return &MockTranslator{
		Translations: map[string]string{
			"عمري أنا بحبك": "my life i love you",
			"مرحبا":         "hello",
			"شكرا":          "thank you",
		},
	}
}

// Translate returns mock translations.
func (m *MockTranslator) Translate(ctx context.Context, req TranslateRequest) (string, error) {
	m.CallCount++
	reqCopy := req
	m.LastRequest = &reqCopy

	if m.Err != nil {
		return "", m.Err
	}
	if m.Empty {
		return "", nil
	}

	if translation, ok := m.Translations[req.Text]; ok {
		return translation, nil
	}

	// Bracketed text for unknown translations
	return fmt.Sprintf("[%s]", req.Text), nil
}

// Reset resets the call count and last request.
func (m *MockTranslator) Reset() {
	m.CallCount = 0
	m.LastRequest = nil
}

// Verify MockTranslator implements Translator
var _ Translator = (*MockTranslator)(nil)
