package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ethansocal/math-answers/internal/output"
	"github.com/ethansocal/math-answers/internal/svcctx"
	"github.com/ethansocal/math-answers/internal/toc"
)

var tocOut string

var tocCmd = &cobra.Command{
	Use:   "toc",
	Short: "Table of contents commands",
}

var tocConvertCmd = &cobra.Command{
	Use:   "convert <contents.txt>",
	Short: "Convert a plain-text table of contents to JSON",
	Long: `Convert a plain-text table of contents into the JSON file used for lookups.

Recognized lines:
  11.2 Space Coordinates and Vectors in Space 755   section 2 of chapter 11
  Review Exercises 812                              section R of the current chapter
  P.S. Problem Solving 815                          section PS of the current chapter

The page is the last word on the line. Other lines are ignored.

Examples:
  answers toc convert contents.txt --out ~/.answers/data/table_of_contents.json
  answers toc convert - < contents.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := svcctx.LoggerFrom(cmd.Context())

		var in io.Reader = cmd.InOrStdin()
		if args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer f.Close()
			in = f
		}

		res, err := toc.Convert(in, logger)
		if err != nil {
			return err
		}
		if _, err := toc.NewIndex(res.Entries); err != nil {
			return fmt.Errorf("converted table of contents is not usable: %w", err)
		}

		if tocOut == "" {
			return toc.WriteJSON(cmd.OutOrStdout(), res.Entries)
		}
		f, err := os.Create(tocOut)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", tocOut, err)
		}
		if err := toc.WriteJSON(f, res.Entries); err != nil {
			f.Close()
			return err
		}
		logger.Info("wrote table of contents", "path", tocOut, "entries", len(res.Entries))
		return f.Close()
	},
}

// tocLookupResult is one row of toc lookup output.
type tocLookupResult struct {
	Page    string `json:"page" yaml:"page"`
	Found   bool   `json:"found" yaml:"found"`
	Chapter string `json:"chapter,omitempty" yaml:"chapter,omitempty"`
	Section string `json:"section,omitempty" yaml:"section,omitempty"`
	Starts  int    `json:"section_starts,omitempty" yaml:"section_starts,omitempty"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

var tocLookupCmd = &cobra.Command{
	Use:   "lookup <page>...",
	Short: "Show the chapter and section of pages",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := requireEngine(cmd)
		if err != nil {
			return err
		}

		results := make([]tocLookupResult, 0, len(args))
		for _, arg := range args {
			row := tocLookupResult{Page: arg}
			page, err := strconv.Atoi(arg)
			if err != nil {
				row.Error = "page is not a number"
				results = append(results, row)
				continue
			}
			if e, ok := eng.Index().Lookup(page); ok {
				row.Found = true
				row.Chapter = e.Chapter
				row.Section = e.Section
				row.Starts = e.Page
			}
			results = append(results, row)
		}
		return output.Output(results)
	},
}

var tocListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all table of contents entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := requireEngine(cmd)
		if err != nil {
			return err
		}
		return output.Output(eng.Index().Entries())
	},
}

func init() {
	tocConvertCmd.Flags().StringVar(&tocOut, "out", "", "write JSON to this file instead of stdout")

	tocCmd.AddCommand(tocConvertCmd)
	tocCmd.AddCommand(tocLookupCmd)
	tocCmd.AddCommand(tocListCmd)
	rootCmd.AddCommand(tocCmd)
}
