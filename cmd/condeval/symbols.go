package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/condlang/pkg/condlang/symbols"
)

var errNoDB = errors.New("--db is required")

func openStore(opts *rootOptions) (*symbols.SQLiteStore, error) {
	if opts.dbPath == "" {
		return nil, errNoDB
	}
	return symbols.NewSQLiteStore(opts.dbPath)
}

func newDefineCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "define NAME [VALUE]",
		Short: "Define a symbol in the symbol database",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(opts)
			if err != nil {
				return err
			}
			defer store.Close()

			value := ""
			if len(args) == 2 {
				value = args[1]
			}
			return store.Define(args[0], value)
		},
	}
}

func newUndefineCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "undefine NAME",
		Short: "Remove a symbol from the symbol database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(opts)
			if err != nil {
				return err
			}
			defer store.Close()
			return store.Undefine(args[0])
		},
	}
}

func newSymbolsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "symbols",
		Short: "List the symbols in the symbol database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore(opts)
			if err != nil {
				return err
			}
			defer store.Close()

			syms, err := store.List()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, s := range syms {
				fmt.Fprintf(tw, "%s\t%s\n", s.Name, s.Value)
			}
			return tw.Flush()
		},
	}
}
