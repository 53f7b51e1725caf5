package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ZaguanLabs/arabizi"
)

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer

	if err := run([]string{"-version"}, &stdout, &stderr); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(stdout.String(), arabizi.Name) {
		t.Errorf("version output missing name: %q", stdout.String())
	}
	if !strings.Contains(stdout.String(), arabizi.Version) {
		t.Errorf("version output missing version: %q", stdout.String())
	}
}

func TestRun_TranslitOnly(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run([]string{"-translit-only", "-strategy", "table", "3omri"}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if got := strings.TrimSpace(stdout.String()); got != "عومري" {
		t.Errorf("output = %q, want عومري", got)
	}
}

func TestRun_TranslitOnlyLexicon(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run([]string{"-translit-only", "3omri", "ana", "bahebak"}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if got := strings.TrimSpace(stdout.String()); got != "عمري أنا بحبك" {
		t.Errorf("output = %q", got)
	}
}

func TestRun_TranslitOnlyJSON(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run([]string{"-translit-only", "-json", "-strategy", "table", "7abibi"}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	var out map[string]string
	if err := json.Unmarshal(stdout.Bytes(), &out); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, stdout.String())
	}
	if out["input"] != "7abibi" {
		t.Errorf("input = %q", out["input"])
	}
	if out["strategy"] != "table" {
		t.Errorf("strategy = %q", out["strategy"])
	}
	if out["transliterated"] != "حابيبي" {
		t.Errorf("transliterated = %q", out["transliterated"])
	}
}

func TestRun_UnknownStrategy(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run([]string{"-strategy", "magic", "-translit-only", "hi"}, &stdout, &stderr)
	if err == nil || !strings.Contains(err.Error(), "unknown strategy") {
		t.Errorf("expected unknown-strategy error, got %v", err)
	}
}

func TestRun_UnknownBackend(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run([]string{"-backend", "bing", "hi"}, &stdout, &stderr)
	if err == nil || !strings.Contains(err.Error(), "unknown backend") {
		t.Errorf("expected unknown-backend error, got %v", err)
	}
}

func TestRun_OpenAIRequiresKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	var stdout, stderr bytes.Buffer
	err := run([]string{"-backend", "openai", "hi"}, &stdout, &stderr)
	if err == nil || !strings.Contains(err.Error(), "API key") {
		t.Errorf("expected missing-key error, got %v", err)
	}
}

func TestBuildStrategy(t *testing.T) {
	for _, name := range []string{"table", "phonetic", "lexicon"} {
		s, err := buildStrategy(name)
		if err != nil {
			t.Errorf("buildStrategy(%q) failed: %v", name, err)
		}
		if s.Name() != name {
			t.Errorf("strategy name = %q, want %q", s.Name(), name)
		}
	}
}
