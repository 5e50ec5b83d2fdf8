package cli

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) {
	rootCmd := createRootCommand(ctx, &Input{}, version)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func createRootCommand(ctx context.Context, input *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "mincut",
		Short:        "Estimate the minimum cut of an undirected graph by randomized edge contraction.",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogging(cmd.ErrOrStderr(), input.verbose)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&input.configPath, "config", "c", "", "YAML file with defaults for run flags")

	rootCmd.AddCommand(createRunCommand(ctx, input))
	rootCmd.AddCommand(createGenerateCommand(input))

	return rootCmd
}

// setupLogging routes logrus to w, coloured only on a terminal.
func setupLogging(w io.Writer, verbose bool) {
	log.SetOutput(w)
	log.SetFormatter(&log.TextFormatter{
		DisableColors:    !isTerminal(w),
		DisableTimestamp: true,
		DisableQuote:     true,
		PadLevelText:     true,
	})
	log.SetLevel(log.InfoLevel)
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
