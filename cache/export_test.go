package cache

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-redis/redismock/v9"
)

func TestExporter_Export(t *testing.T) {
	c := NewInMemoryCache(0)
	_ = c.Set("abc123:en", "my life i love you")
	_ = c.Set("def456:en", "good morning")

	var buf bytes.Buffer
	e := NewExporter(c)
	if err := e.Export(&buf, map[string]string{"source": "test"}); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	var export ExportFormat
	if err := json.Unmarshal(buf.Bytes(), &export); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if export.Version != "1.0" {
		t.Errorf("Version = %q", export.Version)
	}
	if len(export.Entries) != 2 {
		t.Errorf("Entries = %d, want 2", len(export.Entries))
	}
	if export.Metadata["source"] != "test" {
		t.Errorf("Metadata = %v", export.Metadata)
	}
}

func TestExporter_UnsupportedCache(t *testing.T) {
	client, _ := redismock.NewClientMock()
	e := NewExporter(NewRedisCacheFromClient(client, 0, ""))

	var buf bytes.Buffer
	err := e.Export(&buf, nil)
	if err == nil || !strings.Contains(err.Error(), "does not support export") {
		t.Errorf("expected unsupported-cache error, got %v", err)
	}
}

func TestImporter_Import(t *testing.T) {
	payload := `{
  "version": "1.0",
  "exported_at": "2026-01-15T10:00:00Z",
  "entries": [
    {"key": "abc:en", "value": "hello"},
    {"key": "def:fr", "value": "bonjour"}
  ],
  "metadata": {"source": "prod"}
}`

	c := NewInMemoryCache(0)
	imp := NewImporter(c)

	result, err := imp.Import(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if result.Imported != 2 || result.Failed != 0 {
		t.Errorf("result = %+v", result)
	}
	if result.Version != "1.0" || result.Metadata["source"] != "prod" {
		t.Errorf("result header = %+v", result)
	}

	if got, ok := c.Get("def:fr"); !ok || got != "bonjour" {
		t.Errorf("imported entry = %q, %v", got, ok)
	}
}

func TestImporter_InvalidJSON(t *testing.T) {
	imp := NewImporter(NewInMemoryCache(0))
	if _, err := imp.Import(strings.NewReader("{broken")); err == nil {
		t.Error("invalid JSON should fail")
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	src := NewInMemoryCache(0)
	_ = src.Set("k1", "v1")
	_ = src.Set("k2", "v2")

	path := filepath.Join(t.TempDir(), "memory.json")
	if err := NewExporter(src).ExportToFile(path, nil); err != nil {
		t.Fatalf("ExportToFile failed: %v", err)
	}

	dst := NewInMemoryCache(0)
	result, err := NewImporter(dst).ImportFromFile(path)
	if err != nil {
		t.Fatalf("ImportFromFile failed: %v", err)
	}
	if result.Imported != 2 {
		t.Errorf("Imported = %d, want 2", result.Imported)
	}
	if got, _ := dst.Get("k1"); got != "v1" {
		t.Errorf("round-tripped entry = %q", got)
	}
}
