package main

import (
	"github.com/spf13/cobra"

	"github.com/ethansocal/math-answers/internal/output"
	"github.com/ethansocal/math-answers/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "answers",
	Short: "Look up worked solutions for textbook problems",
	Long: `Answers turns assignment references like "755/1,5,11,17" into
links to the worked solution image for each problem.

Each line of input is "<page>/<problem>,<problem>,...". The page is looked
up in the textbook's table of contents to find its chapter and section,
and the solution catalog supplies the image name for that section.

The table of contents and catalog are read from the home directory
(~/.answers/data by default) or the paths in the config file.`,
	Version:       version.GitRelease,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.answers/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "answers home directory (default: ~/.answers)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "enable debug logging",
	)

	// Set output format and attach services before any command runs
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		output.SetFormat(outputFormat)
		return attachServices(cmd)
	}

	rootCmd.AddCommand(versionCmd)
}
