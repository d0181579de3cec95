package main

import (
	"log/slog"
	"testing"

	"github.com/ethansocal/math-answers/internal/config"
	"github.com/ethansocal/math-answers/internal/engine"
	"github.com/ethansocal/math-answers/internal/home"
	"github.com/ethansocal/math-answers/internal/testutil"
)

func TestBuildEngine(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteTables(t, dir)

	h, err := home.New(dir)
	if err != nil {
		t.Fatalf("home.New() error = %v", err)
	}

	t.Run("default relative paths resolve under home", func(t *testing.T) {
		eng, err := buildEngine(h, config.DefaultConfig(), testutil.DiscardLogger())
		if err != nil {
			t.Fatalf("buildEngine() error = %v", err)
		}
		report := eng.Run("813/3")
		if len(report.Results) != 1 || report.Results[0].Status != engine.StatusResolved {
			t.Fatalf("Run() = %+v", report.Results)
		}
		if got, want := report.Results[0].URL, "https://cdn.example.com/solutions/re11_003.png"; got != want {
			t.Errorf("URL = %q, want %q", got, want)
		}
	})

	t.Run("missing toc", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.TOCPath = "data/nope.json"
		if _, err := buildEngine(h, cfg, testutil.DiscardLogger()); err == nil {
			t.Error("buildEngine() expected error for missing toc")
		}
	})

	t.Run("missing catalog", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.CatalogPath = "data/nope.xml"
		if _, err := buildEngine(h, cfg, testutil.DiscardLogger()); err == nil {
			t.Error("buildEngine() expected error for missing catalog")
		}
	})
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := newLogger(tt.level)
			if !logger.Enabled(testutil.Context(t), tt.want) {
				t.Errorf("level %v not enabled", tt.want)
			}
			if tt.want > slog.LevelDebug && logger.Enabled(testutil.Context(t), tt.want-4) {
				t.Errorf("level below %v enabled", tt.want)
			}
		})
	}
}
