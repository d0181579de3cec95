package reference

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ethansocal/math-answers/internal/toc"
	"github.com/ethansocal/math-answers/internal/types"
)

// Sentinel errors for failed resolutions.
var (
	// ErrUnparseablePage is returned when the page text is not a base 10 integer.
	ErrUnparseablePage = errors.New("page is not a number")

	// ErrPageNotFound is returned when the page precedes the table of contents.
	ErrPageNotFound = errors.New("page precedes table of contents")
)

// ResolutionError reports why a single problem could not be resolved.
type ResolutionError struct {
	Problem types.RawProblem
	Err     error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve %q/%q: %v", e.Problem.Page, e.Problem.Label, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// Resolve locates raw in idx. Failures are returned as *ResolutionError
// wrapping ErrUnparseablePage or ErrPageNotFound.
func Resolve(raw types.RawProblem, idx *toc.Index) (types.ResolvedProblem, error) {
	page, err := strconv.Atoi(raw.Page)
	if err != nil {
		return types.ResolvedProblem{}, &ResolutionError{
			Problem: raw,
			Err:     fmt.Errorf("%w: %v", ErrUnparseablePage, err),
		}
	}

	entry, ok := idx.Lookup(page)
	if !ok {
		return types.ResolvedProblem{}, &ResolutionError{
			Problem: raw,
			Err:     fmt.Errorf("%w: page %d", ErrPageNotFound, page),
		}
	}

	return types.ResolvedProblem{
		RawProblem: raw,
		PageNum:    page,
		Chapter:    entry.Chapter,
		Section:    entry.Section,
	}, nil
}
