package main

import (
	"os"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	"github.com/spf13/cobra"
)

func main() {
	var opts options
	var ignoreCase bool

	rootCmd := &cobra.Command{
		Use:           "rare <pattern>",
		Short:         "Filter stdin lines by a regular expression pattern",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if ignoreCase {
				gologger.Fatal().Msg("-i/--ignore-case is not supported: rare does not implement case folding")
			}
			if opts.verbose {
				gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
			}

			count, err := run(args[0], opts, os.Stdin, os.Stdout)
			if err != nil {
				gologger.Fatal().Msgf("%v", err)
			}
			if opts.verbose {
				gologger.Verbose().Msgf("%d matching line(s)", count)
			}
			return nil
		},
	}

	rootCmd.Flags().BoolVarP(&opts.lineNumber, "line-number", "n", false, "prefix each matching line with its 1-based line number")
	rootCmd.Flags().BoolVarP(&opts.onlyMatching, "only-matching", "o", false, "print only the matched text, not the whole line")
	rootCmd.Flags().BoolVarP(&opts.useColor, "color", "c", false, "highlight the matched span in the output")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "print diagnostics about the compiled pattern")
	rootCmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "unsupported: rejected with an error")

	if err := rootCmd.Execute(); err != nil {
		gologger.Fatal().Msgf("%v", err)
	}
}
