// Package catalog maps textbook chapter/section pairs to the naming pattern
// of their worked-solution images and derives solution image URLs.
package catalog

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/ethansocal/math-answers/internal/types"
)

// PadWidth is the minimum number of digits in a solution file number.
const PadWidth = 3

// Sentinel errors for the catalog package.
var (
	// ErrCatalogMiss is returned when no entry exists for a chapter/section.
	ErrCatalogMiss = errors.New("no solution catalog entry")

	// ErrDuplicateEntry is returned when two entries share a chapter/section.
	ErrDuplicateEntry = errors.New("duplicate catalog entry")

	// ErrInvalidEntry is returned for entries missing a chapter, section or prefix.
	ErrInvalidEntry = errors.New("invalid catalog entry")
)

// Key identifies a catalog entry. Both parts are matched exactly.
type Key struct {
	Chapter string
	Section string
}

// Entry is the solution naming pattern for one chapter/section.
type Entry struct {
	Chapter string `json:"chapter" yaml:"chapter"`
	Section string `json:"section" yaml:"section"`
	Prefix  string `json:"prefix" yaml:"prefix"`
}

// Catalog is an immutable solution catalog.
type Catalog struct {
	baseURL   string
	extension string
	entries   map[Key]Entry
	order     []Key
}

// New builds a Catalog. A trailing "/" on baseURL and a leading "." on ext
// are dropped.
func New(baseURL, ext string, entries []Entry) (*Catalog, error) {
	c := &Catalog{
		baseURL:   strings.TrimRight(baseURL, "/"),
		extension: strings.TrimPrefix(ext, "."),
		entries:   make(map[Key]Entry, len(entries)),
		order:     make([]Key, 0, len(entries)),
	}
	if c.baseURL == "" {
		return nil, fmt.Errorf("%w: base url is empty", ErrInvalidEntry)
	}
	if c.extension == "" {
		return nil, fmt.Errorf("%w: file extension is empty", ErrInvalidEntry)
	}

	for _, e := range entries {
		if e.Chapter == "" || e.Section == "" || e.Prefix == "" {
			return nil, fmt.Errorf("%w: %+v", ErrInvalidEntry, e)
		}
		k := Key{Chapter: e.Chapter, Section: e.Section}
		if _, ok := c.entries[k]; ok {
			return nil, fmt.Errorf("%w for chapter %s section %s", ErrDuplicateEntry, k.Chapter, k.Section)
		}
		c.entries[k] = e
		c.order = append(c.order, k)
	}
	return c, nil
}

// BaseURL returns the URL all solution images live under.
func (c *Catalog) BaseURL() string {
	return c.baseURL
}

// Extension returns the solution image file extension, without a dot.
func (c *Catalog) Extension() string {
	return c.extension
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns all entries in load order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, c.entries[k])
	}
	return out
}

// Lookup returns the entry for chapter and section.
func (c *Catalog) Lookup(chapter, section string) (Entry, bool) {
	e, ok := c.entries[Key{Chapter: chapter, Section: section}]
	return e, ok
}

// DeriveURL returns the solution image URL for a resolved problem, or
// ErrCatalogMiss when its chapter/section is not in the catalog.
func (c *Catalog) DeriveURL(p types.ResolvedProblem) (string, error) {
	e, ok := c.Lookup(p.Chapter, p.Section)
	if !ok {
		return "", fmt.Errorf("%w for chapter %s section %s", ErrCatalogMiss, p.Chapter, p.Section)
	}
	return c.baseURL + "/" + e.Prefix + PadDigits(p.Label) + "." + c.extension, nil
}

// PadDigits keeps only the digits of label and left-pads them with zeros to
// PadWidth. Longer numbers are kept whole. A label without digits yields
// "000".
func PadDigits(label string) string {
	var b strings.Builder
	for _, r := range label {
		if r <= unicode.MaxASCII && unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if n := PadWidth - len(digits); n > 0 {
		digits = strings.Repeat("0", n) + digits
	}
	return digits
}
