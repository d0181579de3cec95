package toc

import (
	"errors"
	"testing"
)

func testEntries() []Entry {
	return []Entry{
		{Page: 750, Chapter: "11", Section: "1"},
		{Page: 755, Chapter: "11", Section: "2"},
		{Page: 763, Chapter: "11", Section: "3"},
		{Page: 812, Chapter: "11", Section: "R"},
		{Page: 815, Chapter: "11", Section: "PS"},
		{Page: 818, Chapter: "12", Section: "1"},
	}
}

func mustIndex(t *testing.T, entries []Entry) *Index {
	t.Helper()
	idx, err := NewIndex(entries)
	if err != nil {
		t.Fatalf("NewIndex() error = %v", err)
	}
	return idx
}

func TestNewIndex(t *testing.T) {
	t.Run("accepts sorted entries", func(t *testing.T) {
		idx := mustIndex(t, testEntries())
		if idx.Len() != 6 {
			t.Errorf("Len() = %d, want 6", idx.Len())
		}
	})

	t.Run("accepts empty input", func(t *testing.T) {
		idx := mustIndex(t, nil)
		if _, ok := idx.Lookup(100); ok {
			t.Error("empty index should never resolve")
		}
	})

	tests := []struct {
		name    string
		entries []Entry
		want    error
	}{
		{
			name:    "unsorted",
			entries: []Entry{{Page: 755, Chapter: "11", Section: "2"}, {Page: 750, Chapter: "11", Section: "1"}},
			want:    ErrUnsorted,
		},
		{
			name:    "duplicate page",
			entries: []Entry{{Page: 750, Chapter: "11", Section: "1"}, {Page: 750, Chapter: "11", Section: "2"}},
			want:    ErrDuplicatePage,
		},
		{
			name:    "zero page",
			entries: []Entry{{Page: 0, Chapter: "11", Section: "1"}},
			want:    ErrInvalidEntry,
		},
		{
			name:    "blank chapter",
			entries: []Entry{{Page: 1, Section: "1"}},
			want:    ErrInvalidEntry,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewIndex(tt.entries)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewIndex() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewIndex_CopiesInput(t *testing.T) {
	entries := testEntries()
	idx := mustIndex(t, entries)
	entries[0].Chapter = "changed"

	e, _ := idx.Lookup(750)
	if e.Chapter != "11" {
		t.Errorf("index was mutated through caller slice: chapter = %q", e.Chapter)
	}

	out := idx.Entries()
	out[0].Chapter = "changed"
	e, _ = idx.Lookup(750)
	if e.Chapter != "11" {
		t.Errorf("index was mutated through Entries(): chapter = %q", e.Chapter)
	}
}

func TestIndex_Lookup(t *testing.T) {
	idx := mustIndex(t, testEntries())

	tests := []struct {
		page    int
		ok      bool
		chapter string
		section string
	}{
		{page: 1, ok: false},
		{page: 749, ok: false},
		{page: 750, ok: true, chapter: "11", section: "1"},
		{page: 754, ok: true, chapter: "11", section: "1"},
		{page: 755, ok: true, chapter: "11", section: "2"},
		{page: 762, ok: true, chapter: "11", section: "2"},
		{page: 763, ok: true, chapter: "11", section: "3"},
		{page: 813, ok: true, chapter: "11", section: "R"},
		{page: 816, ok: true, chapter: "11", section: "PS"},
		{page: 818, ok: true, chapter: "12", section: "1"},
		{page: 100000, ok: true, chapter: "12", section: "1"},
		{page: -5, ok: false},
	}

	for _, tt := range tests {
		e, ok := idx.Lookup(tt.page)
		if ok != tt.ok {
			t.Errorf("Lookup(%d) ok = %v, want %v", tt.page, ok, tt.ok)
			continue
		}
		if !ok {
			continue
		}
		if e.Chapter != tt.chapter || e.Section != tt.section {
			t.Errorf("Lookup(%d) = %s.%s, want %s.%s", tt.page, e.Chapter, e.Section, tt.chapter, tt.section)
		}
	}
}

// Every page in [e.Page, next.Page-1] resolves to e.
func TestIndex_Lookup_FloorCoverage(t *testing.T) {
	entries := testEntries()
	idx := mustIndex(t, entries)

	for i, e := range entries {
		end := e.Page + 50
		if i+1 < len(entries) {
			end = entries[i+1].Page - 1
		}
		for page := e.Page; page <= end; page++ {
			got, ok := idx.Lookup(page)
			if !ok || got != e {
				t.Fatalf("Lookup(%d) = %+v, %v; want %+v", page, got, ok, e)
			}
		}
	}

	for page := 0; page < entries[0].Page; page++ {
		if _, ok := idx.Lookup(page); ok {
			t.Fatalf("Lookup(%d) resolved before first entry", page)
		}
	}
}
