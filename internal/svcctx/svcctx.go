// Package svcctx provides service context for dependency injection via context.
// Commands build Services once and pull what they need from the context.
package svcctx

import (
	"context"
	"log/slog"

	"github.com/ethansocal/math-answers/internal/config"
	"github.com/ethansocal/math-answers/internal/engine"
	"github.com/ethansocal/math-answers/internal/home"
	"github.com/ethansocal/math-answers/internal/probe"
)

// Services holds all core services that flow through context.
// Components extract what they need via the individual extractors.
type Services struct {
	Config  *config.Manager
	Engine  *engine.Engine
	Checker *probe.Checker
	Logger  *slog.Logger
	Home    *home.Dir
}

type servicesKey struct{}

// WithServices returns a new context with services attached.
func WithServices(ctx context.Context, s *Services) context.Context {
	return context.WithValue(ctx, servicesKey{}, s)
}

// ServicesFrom extracts the full Services struct from context.
// Returns nil if not present.
func ServicesFrom(ctx context.Context) *Services {
	s, _ := ctx.Value(servicesKey{}).(*Services)
	return s
}

// ConfigFrom extracts the config manager from context.
func ConfigFrom(ctx context.Context) *config.Manager {
	if s := ServicesFrom(ctx); s != nil {
		return s.Config
	}
	return nil
}

// EngineFrom extracts the resolution engine from context.
func EngineFrom(ctx context.Context) *engine.Engine {
	if s := ServicesFrom(ctx); s != nil {
		return s.Engine
	}
	return nil
}

// CheckerFrom extracts the solution image checker from context.
func CheckerFrom(ctx context.Context) *probe.Checker {
	if s := ServicesFrom(ctx); s != nil {
		return s.Checker
	}
	return nil
}

// LoggerFrom extracts the logger from context.
// Falls back to slog.Default() so callers never need a nil check.
func LoggerFrom(ctx context.Context) *slog.Logger {
	if s := ServicesFrom(ctx); s != nil && s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// HomeFrom extracts the home directory from context.
func HomeFrom(ctx context.Context) *home.Dir {
	if s := ServicesFrom(ctx); s != nil {
		return s.Home
	}
	return nil
}
