package svcctx

import (
	"context"
	"log/slog"
	"testing"

	"github.com/ethansocal/math-answers/internal/home"
)

func TestServicesFrom(t *testing.T) {
	t.Run("empty context", func(t *testing.T) {
		ctx := context.Background()
		if ServicesFrom(ctx) != nil {
			t.Error("expected nil services")
		}
		if EngineFrom(ctx) != nil || ConfigFrom(ctx) != nil || HomeFrom(ctx) != nil || CheckerFrom(ctx) != nil {
			t.Error("expected nil extractors on empty context")
		}
		if LoggerFrom(ctx) != slog.Default() {
			t.Error("expected default logger fallback")
		}
	})

	t.Run("attached services", func(t *testing.T) {
		h, _ := home.New("/tmp/test-answers")
		logger := slog.Default().With("test", true)
		ctx := WithServices(context.Background(), &Services{Home: h, Logger: logger})

		if HomeFrom(ctx) != h {
			t.Error("HomeFrom returned wrong dir")
		}
		if LoggerFrom(ctx) != logger {
			t.Error("LoggerFrom returned wrong logger")
		}
	})
}
