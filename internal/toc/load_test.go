package toc

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("valid toc", func(t *testing.T) {
		src := `[
			{"page": 750, "section": "1", "chapter": "11"},
			{"page": 755, "section": "2", "chapter": "11"}
		]`
		idx, err := Load(strings.NewReader(src))
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		e, ok := idx.Lookup(760)
		if !ok || e.Section != "2" {
			t.Errorf("Lookup(760) = %+v, %v", e, ok)
		}
	})

	t.Run("schema violation", func(t *testing.T) {
		_, err := Load(strings.NewReader(`[{"page": "750", "section": "1", "chapter": "11"}]`))
		if err == nil {
			t.Fatal("expected schema error for string page")
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		if _, err := Load(strings.NewReader(`[{`)); err == nil {
			t.Fatal("expected decode error")
		}
	})

	t.Run("unsorted toc", func(t *testing.T) {
		src := `[
			{"page": 755, "section": "2", "chapter": "11"},
			{"page": 750, "section": "1", "chapter": "11"}
		]`
		_, err := Load(strings.NewReader(src))
		if !errors.Is(err, ErrUnsorted) {
			t.Errorf("Load() error = %v, want ErrUnsorted", err)
		}
	})
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toc.json")

	var buf bytes.Buffer
	if err := WriteJSON(&buf, testEntries()); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("failed to write toc: %v", err)
	}

	idx, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if idx.Len() != len(testEntries()) {
		t.Errorf("Len() = %d, want %d", idx.Len(), len(testEntries()))
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteJSON_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, nil); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("WriteJSON(nil) = %q, want []", buf.String())
	}
}
