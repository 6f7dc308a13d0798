// Package cmd provides the CLI commands for bsearch.
package cmd

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// Version is set via ldflags at build time.
var Version = "dev"

// NewRootCmd creates the root command for the bsearch CLI.
func NewRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "bsearch",
		Short: "Locate values in sorted input",
		Long: `bsearch looks up a value in input that is already sorted ascending,
one element per line, using binary search.

Input order is the caller's responsibility. Run with --check to verify it.`,
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogging(cmd.ErrOrStderr(), debug)
		},
	}

	cmd.SetVersionTemplate("bsearch version {{.Version}}\n")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging to stderr")

	cmd.AddCommand(newLocateCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

func setupLogging(w io.Writer, debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	slog.Debug("Debug logging enabled", slog.String("version", Version))
}
