package engine

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/ethansocal/math-answers/internal/catalog"
	"github.com/ethansocal/math-answers/internal/reference"
	"github.com/ethansocal/math-answers/internal/testutil"
	"github.com/ethansocal/math-answers/internal/toc"
)

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()

	idx, err := toc.NewIndex([]toc.Entry{
		{Page: 750, Chapter: "11", Section: "1"},
		{Page: 755, Chapter: "11", Section: "2"},
	})
	if err != nil {
		t.Fatalf("NewIndex() error = %v", err)
	}
	cat, err := catalog.New("https://cdn.example.com", "png", []catalog.Entry{
		{Chapter: "11", Section: "2", Prefix: "se11c02_"},
	})
	if err != nil {
		t.Fatalf("catalog.New() error = %v", err)
	}

	opts = append([]Option{
		WithLogger(testutil.DiscardLogger()),
		WithIDGenerator(func() string { return "run-1" }),
	}, opts...)
	e, err := New(idx, cat, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return e
}

func TestNew_RequiresTables(t *testing.T) {
	idx, _ := toc.NewIndex(nil)
	cat, _ := catalog.New("https://x", "png", nil)

	if _, err := New(nil, cat); err == nil {
		t.Error("expected error without index")
	}
	if _, err := New(idx, nil); err == nil {
		t.Error("expected error without catalog")
	}
}

func TestEngine_Run_EndToEnd(t *testing.T) {
	e := newTestEngine(t)

	report := e.Run("755/5")
	if report.RunID != "run-1" {
		t.Errorf("RunID = %q, want run-1", report.RunID)
	}
	if len(report.Results) != 1 {
		t.Fatalf("got %d results, want 1", len(report.Results))
	}

	res := report.Results[0]
	if !res.OK() {
		t.Fatalf("result not resolved: %+v", res)
	}
	if res.Problem.Chapter != "11" || res.Problem.Section != "2" || res.Problem.Label != "5" {
		t.Errorf("Problem = %+v", res.Problem)
	}
	if !strings.HasSuffix(res.URL, "se11c02_005.png") {
		t.Errorf("URL = %q, want suffix se11c02_005.png", res.URL)
	}
	if res.Title != "Problem 5" {
		t.Errorf("Title = %q", res.Title)
	}
}

func TestEngine_Run_FlagsFailuresPerEntry(t *testing.T) {
	e := newTestEngine(t)

	input := strings.Join([]string{
		"755/1,45ab", // resolved
		"garbage",    // dropped by parser
		"abc/3",      // unparseable page
		"700/4",      // before first toc entry
		"751/9",      // section 11.1 has no catalog entry
		"760/12",     // resolved
	}, "\n")

	report := e.Run(input)

	wantStatus := []Status{
		StatusResolved,
		StatusResolved,
		StatusUnparseablePage,
		StatusPageNotFound,
		StatusCatalogMiss,
		StatusResolved,
	}
	if len(report.Results) != len(wantStatus) {
		t.Fatalf("got %d results, want %d", len(report.Results), len(wantStatus))
	}
	for i, want := range wantStatus {
		if got := report.Results[i].Status; got != want {
			t.Errorf("result %d status = %s, want %s", i, got, want)
		}
	}

	if report.Counts[StatusResolved] != 3 || report.Counts[StatusCatalogMiss] != 1 {
		t.Errorf("Counts = %v", report.Counts)
	}
	if len(report.Failed()) != 3 {
		t.Errorf("Failed() = %d results, want 3", len(report.Failed()))
	}

	wantURLs := []string{
		"https://cdn.example.com/se11c02_001.png",
		"https://cdn.example.com/se11c02_045.png",
		"https://cdn.example.com/se11c02_012.png",
	}
	if !reflect.DeepEqual(report.URLs(), wantURLs) {
		t.Errorf("URLs() = %v, want %v", report.URLs(), wantURLs)
	}

	unparseable := report.Results[2]
	if !errors.Is(unparseable.Err(), reference.ErrUnparseablePage) {
		t.Errorf("Err() = %v, want ErrUnparseablePage", unparseable.Err())
	}
	if unparseable.Problem != nil || unparseable.Error == "" {
		t.Errorf("unparseable result = %+v", unparseable)
	}

	miss := report.Results[4]
	if !errors.Is(miss.Err(), catalog.ErrCatalogMiss) {
		t.Errorf("Err() = %v, want ErrCatalogMiss", miss.Err())
	}
	if miss.Problem == nil || miss.Problem.Section != "1" || miss.URL != "" {
		t.Errorf("catalog miss result = %+v", miss)
	}
}

func TestEngine_Run_Idempotent(t *testing.T) {
	e := newTestEngine(t)
	input := "755/1,5,11\n763/45ab\nxyz/1"

	first := e.Run(input)
	second := e.Run(input)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("runs differ:\n%+v\n%+v", first, second)
	}
}

func TestEngine_Run_Empty(t *testing.T) {
	e := newTestEngine(t)

	report := e.Run("")
	if report.Results == nil || len(report.Results) != 0 {
		t.Errorf("Results = %#v, want empty slice", report.Results)
	}
	if report.URLs() != nil {
		t.Errorf("URLs() = %v, want nil", report.URLs())
	}
}

func TestEngine_DefaultRunID(t *testing.T) {
	idx, _ := toc.NewIndex(nil)
	cat, _ := catalog.New("https://x", "png", nil)
	e, err := New(idx, cat, WithLogger(testutil.DiscardLogger()))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	a, b := e.Run(""), e.Run("")
	if a.RunID == "" || a.RunID == b.RunID {
		t.Errorf("run IDs not unique: %q, %q", a.RunID, b.RunID)
	}
}

func TestEngine_Run_FromFiles(t *testing.T) {
	tocPath, catalogPath := testutil.WriteTables(t, t.TempDir())

	idx, err := toc.LoadFile(tocPath)
	if err != nil {
		t.Fatalf("toc.LoadFile() error = %v", err)
	}
	cat, err := catalog.LoadFile(catalogPath)
	if err != nil {
		t.Fatalf("catalog.LoadFile() error = %v", err)
	}
	e, err := New(idx, cat, WithLogger(testutil.DiscardLogger()))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	report := e.Run("755/1,5,11,17\n763/45ab\n813/3\n816/2")

	want := []struct {
		status Status
		url    string
		title  string
	}{
		{StatusResolved, "https://cdn.example.com/solutions/se11c02_001.png", "Problem 1"},
		{StatusResolved, "https://cdn.example.com/solutions/se11c02_005.png", "Problem 5"},
		{StatusResolved, "https://cdn.example.com/solutions/se11c02_011.png", "Problem 11"},
		{StatusResolved, "https://cdn.example.com/solutions/se11c02_017.png", "Problem 17"},
		{StatusCatalogMiss, "", "Problem 45ab"},
		{StatusResolved, "https://cdn.example.com/solutions/re11_003.png", "Review Exercise 3"},
		{StatusCatalogMiss, "", "Problem 2"},
	}
	if len(report.Results) != len(want) {
		t.Fatalf("got %d results, want %d", len(report.Results), len(want))
	}
	for i, w := range want {
		got := report.Results[i]
		if got.Status != w.status || got.URL != w.url || got.Title != w.title {
			t.Errorf("result %d = {%s %q %q}, want {%s %q %q}",
				i, got.Status, got.URL, got.Title, w.status, w.url, w.title)
		}
	}
}
