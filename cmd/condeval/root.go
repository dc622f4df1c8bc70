package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags shared by all subcommands.
type rootOptions struct {
	configPath string
	dbPath     string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "condeval",
		Short:         "Evaluate boolean condition expressions",
		Long:          `condeval evaluates condition expressions built from equal(...) and defined(...) calls combined with !, && and ||.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (.yaml, .yml or .json)")
	cmd.PersistentFlags().StringVar(&opts.dbPath, "db", "", "SQLite symbol database")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log evaluation details to stderr")

	cmd.AddCommand(
		newEvalCmd(opts),
		newDefineCmd(opts),
		newUndefineCmd(opts),
		newSymbolsCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// newLogger returns a text logger on w, or nil when logging is off.
func newLogger(w io.Writer, level slog.Level, enabled bool) *slog.Logger {
	if !enabled {
		return nil
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
