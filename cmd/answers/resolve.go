package main

import (
	"github.com/spf13/cobra"

	"github.com/ethansocal/math-answers/internal/output"
)

var (
	resolveFile string
	resolveSave bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [reference...]",
	Short: "Resolve problem references to solution image URLs",
	Long: `Resolve problem references to their chapter, section and solution URL.

Each argument is one input line. Without arguments the input is read from
--file, or from the saved problems file.

Problems that cannot be resolved are reported with a status instead of
stopping the run:
  unparseable_page  the page is not a number
  page_not_found    the page comes before the first section
  catalog_miss      the section has no solutions in the catalog

Lines without exactly one "/" are ignored.

Examples:
  answers resolve 755/1,5,11,17 763/45ab,51bc
  answers resolve -f homework.txt --save
  pbpaste | answers resolve -f - -o json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd, args, resolveFile)
		if err != nil {
			return err
		}

		eng, err := requireEngine(cmd)
		if err != nil {
			return err
		}

		if resolveSave {
			if err := saveInput(cmd, text); err != nil {
				return err
			}
		}

		return output.Output(eng.Run(text))
	},
}

func init() {
	resolveCmd.Flags().StringVarP(&resolveFile, "file", "f", "", `read references from file ("-" for stdin)`)
	resolveCmd.Flags().BoolVar(&resolveSave, "save", false, "save the input as the problems file")

	rootCmd.AddCommand(resolveCmd)
}
