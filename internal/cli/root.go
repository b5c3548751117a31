package cli

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	LogLevel string // debug|info|warn|error
}

// NewRootCommand creates the root command for the sumgrid CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "sumgrid",
		Short: "Sum-grid puzzle generator and web server",
		Long:  "Generates numeric grid puzzles with row/column sums and serves a browser UI for playing them.",
	}

	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "info", "debug|info|warn|error")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewGenCommand(opts))

	return cmd
}

// newLogger builds the process logger from the global log-level flag.
func newLogger(opts *RootOptions) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(opts.LogLevel) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
