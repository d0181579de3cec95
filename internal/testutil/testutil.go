// Package testutil holds fixtures and helpers shared by package tests.
// It imports no other answers packages so any package can use it.
package testutil

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

// TOCJSON is a small table of contents covering chapter 11 and the start
// of chapter 12.
const TOCJSON = `[
    {"page": 750, "section": "1", "chapter": "11"},
    {"page": 755, "section": "2", "chapter": "11"},
    {"page": 763, "section": "3", "chapter": "11"},
    {"page": 812, "section": "R", "chapter": "11"},
    {"page": 815, "section": "PS", "chapter": "11"},
    {"page": 818, "section": "1", "chapter": "12"}
]
`

// CatalogXML is a solution catalog for TOCJSON. Section 11.3 and the
// problem set are deliberately absent.
const CatalogXML = `<?xml version="1.0" encoding="UTF-8"?>
<catalog base="https://cdn.example.com/solutions" ext="png">
    <chapter number="11">
        <section number="1" prefix="se11c01_"/>
        <section number="2" prefix="se11c02_"/>
        <section number="R" prefix="re11_"/>
    </chapter>
    <chapter number="12">
        <section number="1" prefix="se12c01_"/>
    </chapter>
</catalog>
`

// Context returns a context that is canceled when the test finishes,
// standing in for testing.T.Context on toolchains older than Go 1.24.
func Context(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// WriteFile writes content to name under dir, creating parent directories,
// and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// WriteTables writes TOCJSON and CatalogXML into dir/data and returns their paths.
func WriteTables(t *testing.T, dir string) (tocPath, catalogPath string) {
	t.Helper()
	return WriteFile(t, dir, "data/table_of_contents.json", TOCJSON),
		WriteFile(t, dir, "data/catalog.xml", CatalogXML)
}
