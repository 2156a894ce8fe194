// Package cmd provides the CLI commands for bisect.
package cmd

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// logger is replaced in PersistentPreRunE once flags are parsed.
var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// NewRootCmd creates the root command for the bisect CLI.
func NewRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "bisect",
		Short: "Binary search over sorted integer sequences",
		Long: `bisect locates a target value in a sequence sorted in
non-decreasing order and prints its index, or -1 when absent.

With duplicates, the index of any matching element may be printed.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging to stderr")
	cmd.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(c.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		return nil
	}

	cmd.AddCommand(newFindCmd())
	cmd.AddCommand(newRampCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
