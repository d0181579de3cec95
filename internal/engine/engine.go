// Package engine runs the full problem pipeline: parse the typed references,
// resolve each against the table of contents and derive its solution URL.
//
// A failure on one problem never stops the run. Malformed lines are dropped
// by the parser; every other failure is kept in the report with a status.
package engine

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ethansocal/math-answers/internal/catalog"
	"github.com/ethansocal/math-answers/internal/reference"
	"github.com/ethansocal/math-answers/internal/toc"
	"github.com/ethansocal/math-answers/internal/types"
)

// Status is the outcome of a single problem.
type Status string

const (
	// StatusResolved means the problem was located and has a solution URL.
	StatusResolved Status = "resolved"
	// StatusUnparseablePage means the page text is not a number.
	StatusUnparseablePage Status = "unparseable_page"
	// StatusPageNotFound means the page precedes the table of contents.
	StatusPageNotFound Status = "page_not_found"
	// StatusCatalogMiss means the problem was located but its section has
	// no solutions in the catalog.
	StatusCatalogMiss Status = "catalog_miss"
)

// Result is the outcome of one problem reference.
type Result struct {
	Raw     types.RawProblem       `json:"raw" yaml:"raw"`
	Problem *types.ResolvedProblem `json:"problem,omitempty" yaml:"problem,omitempty"`
	Title   string                 `json:"title,omitempty" yaml:"title,omitempty"`
	URL     string                 `json:"url,omitempty" yaml:"url,omitempty"`
	Status  Status                 `json:"status" yaml:"status"`
	Error   string                 `json:"error,omitempty" yaml:"error,omitempty"`

	err error
}

// Err returns the failure behind a non-resolved status.
func (r Result) Err() error {
	return r.err
}

// OK reports whether the problem has a solution URL.
func (r Result) OK() bool {
	return r.Status == StatusResolved
}

// Report is the outcome of one pipeline run.
type Report struct {
	RunID   string         `json:"run_id" yaml:"run_id"`
	Results []Result       `json:"results" yaml:"results"`
	Counts  map[Status]int `json:"counts" yaml:"counts"`
}

// Failed returns the results that did not produce a URL.
func (r *Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.OK() {
			out = append(out, res)
		}
	}
	return out
}

// URLs returns the solution URLs of resolved results in input order.
func (r *Report) URLs() []string {
	var out []string
	for _, res := range r.Results {
		if res.OK() {
			out = append(out, res.URL)
		}
	}
	return out
}

// Engine resolves problem references against fixed tables.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	index   *toc.Index
	catalog *catalog.Catalog
	logger  *slog.Logger
	newID   func() string
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithIDGenerator overrides run ID generation.
func WithIDGenerator(fn func() string) Option {
	return func(e *Engine) {
		if fn != nil {
			e.newID = fn
		}
	}
}

// New creates an Engine over idx and cat.
func New(idx *toc.Index, cat *catalog.Catalog, opts ...Option) (*Engine, error) {
	if idx == nil {
		return nil, errors.New("engine: toc index is required")
	}
	if cat == nil {
		return nil, errors.New("engine: solution catalog is required")
	}

	e := &Engine{
		index:   idx,
		catalog: cat,
		logger:  slog.Default(),
		newID:   func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Index returns the engine's table of contents.
func (e *Engine) Index() *toc.Index {
	return e.index
}

// Catalog returns the engine's solution catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Parse splits raw input into problem references.
func (e *Engine) Parse(text string) []types.RawProblem {
	return reference.Parse(text)
}

// Resolve locates a single problem in the table of contents.
func (e *Engine) Resolve(raw types.RawProblem) (types.ResolvedProblem, error) {
	return reference.Resolve(raw, e.index)
}

// DeriveURL returns the solution URL of a resolved problem.
func (e *Engine) DeriveURL(p types.ResolvedProblem) (string, error) {
	return e.catalog.DeriveURL(p)
}

// Run parses text and processes every problem in it.
func (e *Engine) Run(text string) *Report {
	raws := e.Parse(text)
	report := &Report{
		RunID:   e.newID(),
		Results: make([]Result, 0, len(raws)),
		Counts:  make(map[Status]int),
	}
	logger := e.logger.With("run_id", report.RunID)

	for _, raw := range raws {
		res := e.process(raw)
		report.Results = append(report.Results, res)
		report.Counts[res.Status]++

		if res.OK() {
			logger.Debug("problem resolved", "page", raw.Page, "label", raw.Label, "url", res.URL)
		} else {
			logger.Debug("problem unresolved", "page", raw.Page, "label", raw.Label, "status", res.Status, "error", res.err)
		}
	}

	logger.Info("resolved problems",
		"total", len(report.Results),
		"resolved", report.Counts[StatusResolved],
		"failed", len(report.Results)-report.Counts[StatusResolved],
	)
	return report
}

func (e *Engine) process(raw types.RawProblem) Result {
	p, err := e.Resolve(raw)
	if err != nil {
		status := StatusPageNotFound
		if errors.Is(err, reference.ErrUnparseablePage) {
			status = StatusUnparseablePage
		}
		return failed(Result{Raw: raw, Status: status}, err)
	}

	res := Result{Raw: raw, Problem: &p, Title: p.Title()}
	url, err := e.DeriveURL(p)
	if err != nil {
		res.Status = StatusCatalogMiss
		return failed(res, err)
	}

	res.URL = url
	res.Status = StatusResolved
	return res
}

func failed(res Result, err error) Result {
	res.err = err
	res.Error = err.Error()
	return res
}
