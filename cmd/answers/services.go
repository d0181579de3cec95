package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ethansocal/math-answers/internal/catalog"
	"github.com/ethansocal/math-answers/internal/config"
	"github.com/ethansocal/math-answers/internal/engine"
	"github.com/ethansocal/math-answers/internal/home"
	"github.com/ethansocal/math-answers/internal/probe"
	"github.com/ethansocal/math-answers/internal/svcctx"
	"github.com/ethansocal/math-answers/internal/toc"
)

// attachServices loads the home directory, config and logger and stores
// them in the command context. The engine is built on demand by
// requireEngine because some commands run without the static tables.
func attachServices(cmd *cobra.Command) error {
	h, err := home.New(homeDir)
	if err != nil {
		return err
	}

	mgr, err := config.NewManager(cfgFile, h.Path())
	if err != nil {
		return err
	}

	logger := newLogger(mgr.Get().LogLevel)
	svc := &svcctx.Services{
		Config: mgr,
		Logger: logger,
		Home:   h,
	}
	cmd.SetContext(svcctx.WithServices(cmd.Context(), svc))
	return nil
}

// newLogger writes text logs to stderr so stdout stays machine readable.
func newLogger(level string) *slog.Logger {
	lvl := slog.LevelInfo
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	if verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: lvl,
	}))
}

// buildEngine loads the table of contents and catalog named by cfg.
func buildEngine(h *home.Dir, cfg *config.Config, logger *slog.Logger) (*engine.Engine, error) {
	idx, err := toc.LoadFile(h.Resolve(cfg.TOCPath))
	if err != nil {
		return nil, fmt.Errorf("failed to load table of contents: %w", err)
	}
	cat, err := catalog.LoadFile(h.Resolve(cfg.CatalogPath))
	if err != nil {
		return nil, fmt.Errorf("failed to load solution catalog: %w", err)
	}

	logger.Debug("loaded static tables",
		"toc_entries", idx.Len(),
		"catalog_entries", cat.Len(),
	)
	return engine.New(idx, cat, engine.WithLogger(logger))
}

// requireEngine returns the engine from the command context, building it
// on first use.
func requireEngine(cmd *cobra.Command) (*engine.Engine, error) {
	svc := svcctx.ServicesFrom(cmd.Context())
	if svc == nil {
		return nil, errors.New("services not initialized")
	}
	if svc.Engine != nil {
		return svc.Engine, nil
	}

	eng, err := buildEngine(svc.Home, svc.Config.Get(), svc.Logger)
	if err != nil {
		return nil, err
	}
	svc.Engine = eng
	return eng, nil
}

// requireChecker returns the solution image checker, building it on first use.
func requireChecker(cmd *cobra.Command) (*probe.Checker, error) {
	svc := svcctx.ServicesFrom(cmd.Context())
	if svc == nil {
		return nil, errors.New("services not initialized")
	}
	if svc.Checker != nil {
		return svc.Checker, nil
	}

	cfg := svc.Config.Get().Probe
	svc.Checker = probe.New(probe.Config{
		Timeout:  cfg.Timeout,
		Attempts: cfg.Attempts,
		Delay:    cfg.Delay,
		Logger:   svc.Logger,
	})
	return svc.Checker, nil
}
