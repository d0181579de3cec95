package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ethansocal/math-answers/internal/svcctx"
	"github.com/ethansocal/math-answers/internal/watch"
)

// readInput returns problem text from, in order of preference: the
// arguments (one line each), --file ("-" for stdin), or the saved
// problems file.
func readInput(cmd *cobra.Command, args []string, file string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, "\n"), nil
	}

	switch file {
	case "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	case "":
		return watch.ReadText(problemsPath(cmd))
	default:
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", file, err)
		}
		return string(data), nil
	}
}

// saveInput writes text to the saved problems file.
func saveInput(cmd *cobra.Command, text string) error {
	h := svcctx.HomeFrom(cmd.Context())
	if err := h.EnsureExists(); err != nil {
		return err
	}
	path := problemsPath(cmd)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to save problems: %w", err)
	}
	svcctx.LoggerFrom(cmd.Context()).Debug("saved problems", "path", path)
	return nil
}

// problemsPath returns the saved problems file for the current config.
func problemsPath(cmd *cobra.Command) string {
	ctx := cmd.Context()
	return svcctx.HomeFrom(ctx).Resolve(svcctx.ConfigFrom(ctx).Get().ProblemsPath)
}
