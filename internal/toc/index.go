// Package toc holds the textbook's table of contents as a page-ordered index
// and resolves a page number to the chapter and section it falls in.
package toc

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for index construction.
var (
	// ErrUnsorted is returned when entries are not in ascending page order.
	ErrUnsorted = errors.New("toc entries not sorted by page")

	// ErrDuplicatePage is returned when two entries share a page.
	ErrDuplicatePage = errors.New("duplicate toc page")

	// ErrInvalidEntry is returned for entries with a page below 1 or a blank
	// chapter or section.
	ErrInvalidEntry = errors.New("invalid toc entry")
)

// Entry is one section start in the table of contents.
type Entry struct {
	Page    int    `json:"page" yaml:"page"`
	Section string `json:"section" yaml:"section"`
	Chapter string `json:"chapter" yaml:"chapter"`
}

// Index is an immutable, page-ordered table of contents.
type Index struct {
	entries []Entry
}

// NewIndex builds an Index from entries already sorted by page.
// The slice is copied.
func NewIndex(entries []Entry) (*Index, error) {
	for i, e := range entries {
		if e.Page < 1 || e.Chapter == "" || e.Section == "" {
			return nil, fmt.Errorf("%w at position %d: %+v", ErrInvalidEntry, i, e)
		}
		if i == 0 {
			continue
		}
		prev := entries[i-1].Page
		switch {
		case e.Page == prev:
			return nil, fmt.Errorf("%w %d at position %d", ErrDuplicatePage, e.Page, i)
		case e.Page < prev:
			return nil, fmt.Errorf("%w: page %d follows page %d at position %d", ErrUnsorted, e.Page, prev, i)
		}
	}

	cp := make([]Entry, len(entries))
	copy(cp, entries)
	return &Index{entries: cp}, nil
}

// Lookup returns the entry governing page: the entry with the greatest page
// that is still <= page. It returns false when page precedes every entry.
func (idx *Index) Lookup(page int) (Entry, bool) {
	// First entry starting after page; the one before it governs.
	i := sort.Search(len(idx.entries), func(i int) bool {
		return idx.entries[i].Page > page
	})
	if i == 0 {
		return Entry{}, false
	}
	return idx.entries[i-1], true
}

// Len returns the number of entries.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Entries returns a copy of all entries in page order.
func (idx *Index) Entries() []Entry {
	cp := make([]Entry, len(idx.entries))
	copy(cp, idx.entries)
	return cp
}
