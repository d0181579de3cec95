package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ethansocal/math-answers/internal/engine"
	"github.com/ethansocal/math-answers/internal/output"
	"github.com/ethansocal/math-answers/internal/probe"
	"github.com/ethansocal/math-answers/internal/svcctx"
)

var checkFile string

// checkResult is one row of check output.
type checkResult struct {
	Page   string       `json:"page" yaml:"page"`
	Label  string       `json:"label" yaml:"label"`
	URL    string       `json:"url,omitempty" yaml:"url,omitempty"`
	Status string       `json:"status" yaml:"status"`
	Error  string       `json:"error,omitempty" yaml:"error,omitempty"`
	Asset  probe.Status `json:"asset,omitempty" yaml:"asset,omitempty"`
}

var checkCmd = &cobra.Command{
	Use:   "check [reference...]",
	Short: "Check that solution images exist",
	Long: `Resolve problem references and request each solution image URL.

Images the server reports as missing (404/410) are marked "missing" and
not requested again during the run. Other failures are retried.

Examples:
  answers check 755/1,5,11
  answers check -f homework.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		logger := svcctx.LoggerFrom(ctx)

		text, err := readInput(cmd, args, checkFile)
		if err != nil {
			return err
		}
		eng, err := requireEngine(cmd)
		if err != nil {
			return err
		}
		checker, err := requireChecker(cmd)
		if err != nil {
			return err
		}

		report := eng.Run(text)
		results := make([]checkResult, 0, len(report.Results))
		missing := 0
		for _, res := range report.Results {
			row := checkResult{
				Page:   res.Raw.Page,
				Label:  res.Raw.Label,
				URL:    res.URL,
				Status: string(res.Status),
				Error:  res.Error,
			}
			if res.Status == engine.StatusResolved {
				status, err := checker.Check(ctx, res.URL)
				row.Asset = status
				if err != nil {
					row.Error = err.Error()
					if status == probe.StatusMissing {
						missing++
					}
				}
			}
			results = append(results, row)
		}

		logger.Info("checked solution images", "run_id", report.RunID, "checked", report.Counts[engine.StatusResolved], "missing", missing)
		if err := output.Output(results); err != nil {
			return err
		}
		if missing > 0 {
			return fmt.Errorf("%d solution images missing", missing)
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVarP(&checkFile, "file", "f", "", `read references from file ("-" for stdin)`)

	rootCmd.AddCommand(checkCmd)
}
