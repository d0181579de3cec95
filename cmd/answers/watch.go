package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/spf13/cobra"

	"github.com/ethansocal/math-answers/internal/config"
	"github.com/ethansocal/math-answers/internal/engine"
	"github.com/ethansocal/math-answers/internal/output"
	"github.com/ethansocal/math-answers/internal/svcctx"
	"github.com/ethansocal/math-answers/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-resolve the problems file every time it changes",
	Long: `Watch the saved problems file and print a fresh report whenever it is
saved. Edits to the config file are picked up too: the table of contents
and catalog are reloaded and the problems re-resolved.

Stop with Ctrl+C.

Examples:
  answers watch
  answers watch -o json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svc := svcctx.ServicesFrom(ctx)
		logger := svc.Logger

		eng, err := requireEngine(cmd)
		if err != nil {
			return err
		}
		var current atomic.Pointer[engine.Engine]
		current.Store(eng)

		// Reports come from both the file watcher and config reloads.
		var (
			mu       sync.Mutex
			lastText string
		)
		render := func(text string) {
			mu.Lock()
			defer mu.Unlock()
			lastText = text
			if err := output.Output(current.Load().Run(text)); err != nil {
				logger.Error("failed to write report", "error", err)
			}
		}
		rerender := func() {
			mu.Lock()
			text := lastText
			mu.Unlock()
			render(text)
		}

		svc.Config.OnChange(func(cfg *config.Config) {
			next, err := buildEngine(svc.Home, cfg, logger)
			if err != nil {
				logger.Warn("keeping previous tables", "error", err)
				return
			}
			current.Store(next)
			rerender()
		})
		if svc.Config.ConfigFile() != "" {
			svc.Config.WatchConfig(logger)
		}

		path := problemsPath(cmd)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("failed to create problems directory: %w", err)
		}
		logger.Info("watching problems file", "path", path)
		w := watch.New(path, svc.Config.Get().Watch.Debounce, logger)
		return w.Run(ctx, render)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
