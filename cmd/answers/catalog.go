package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ethansocal/math-answers/internal/catalog"
	"github.com/ethansocal/math-answers/internal/output"
	"github.com/ethansocal/math-answers/internal/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Solution catalog commands",
}

// catalogView is the output of catalog show.
type catalogView struct {
	BaseURL   string          `json:"base_url" yaml:"base_url"`
	Extension string          `json:"ext" yaml:"ext"`
	Entries   []catalog.Entry `json:"entries" yaml:"entries"`
}

var catalogShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the loaded solution catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := requireEngine(cmd)
		if err != nil {
			return err
		}
		cat := eng.Catalog()
		return output.Output(catalogView{
			BaseURL:   cat.BaseURL(),
			Extension: cat.Extension(),
			Entries:   cat.Entries(),
		})
	},
}

var catalogURLCmd = &cobra.Command{
	Use:   "url <chapter> <section> <problem>",
	Short: "Print the solution URL for a chapter, section and problem",
	Long: `Print the solution URL for a chapter, section and problem without
looking up a page.

Examples:
  answers catalog url 11 2 45ab
  answers catalog url 11 R 17`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := requireEngine(cmd)
		if err != nil {
			return err
		}
		url, err := eng.DeriveURL(types.ResolvedProblem{
			RawProblem: types.RawProblem{Label: args[2]},
			Chapter:    args[0],
			Section:    args[1],
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), url)
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogURLCmd)
	rootCmd.AddCommand(catalogCmd)
}
