package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/condlang/pkg/condlang"
	"github.com/randalmurphal/condlang/pkg/condlang/builtin"
	"github.com/randalmurphal/condlang/pkg/condlang/config"
	"github.com/randalmurphal/condlang/pkg/condlang/engine"
	"github.com/randalmurphal/condlang/pkg/condlang/hash"
	"github.com/randalmurphal/condlang/pkg/condlang/symbols"
)

type evalOptions struct {
	defines   []string
	stackSize int
	maxDepth  int
	asJSON    bool
}

// evalOutput is one line of --json output.
type evalOutput struct {
	Expression string `json:"expression"`
	Value      bool   `json:"value"`
	Status     string `json:"status"`
	Error      string `json:"error,omitempty"`
	Offset     *int   `json:"offset,omitempty"`
}

func newEvalCmd(root *rootOptions) *cobra.Command {
	opts := &evalOptions{}

	cmd := &cobra.Command{
		Use:   "eval EXPR...",
		Short: "Evaluate one or more condition expressions",
		Long: `Evaluates each expression with two intrinsics registered:

  equal(A, B, ...)    true when all arguments are the same identifier
  defined(A, ...)     true when every argument is a defined symbol

Symbols come from the config file's "defines", the --db symbol database,
and -D flags.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), root, opts, args)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.defines, "define", "D", nil, "define a symbol (NAME or NAME=VALUE)")
	cmd.Flags().IntVar(&opts.stackSize, "stack-size", 0, "value-stack size in bytes (default from config, else 256)")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", 0, "grammar nesting limit (default from config, else 256)")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print one JSON object per expression")
	return cmd
}

func loadSettings(root *rootOptions, opts *evalOptions) (config.Settings, error) {
	defaults := config.Settings{
		StackSize: engine.DefaultStackSize,
		MaxDepth:  condlang.DefaultMaxDepth,
		SymbolsDB: root.dbPath,
		LogLevel:  slog.LevelDebug,
		Defines:   map[string]string{},
	}
	settings := defaults
	if root.configPath != "" {
		var err error
		if settings, err = config.LoadSettings(root.configPath, defaults); err != nil {
			return config.Settings{}, err
		}
	}
	if root.dbPath != "" {
		settings.SymbolsDB = root.dbPath
	}
	if opts.stackSize > 0 {
		settings.StackSize = opts.stackSize
	}
	if opts.maxDepth > 0 {
		settings.MaxDepth = opts.maxDepth
	}
	for _, d := range opts.defines {
		name, value, _ := strings.Cut(d, "=")
		if !symbols.ValidName(name) {
			return config.Settings{}, fmt.Errorf("%w: %q", symbols.ErrInvalidName, name)
		}
		settings.Defines[name] = value
	}
	return settings, nil
}

func definedNames(settings config.Settings) ([]string, error) {
	names := settings.DefineNames()
	if settings.SymbolsDB == "" {
		return names, nil
	}
	store, err := symbols.NewSQLiteStore(settings.SymbolsDB)
	if err != nil {
		return nil, err
	}
	defer store.Close()
	stored, err := symbols.Names(store)
	if err != nil {
		return nil, err
	}
	return append(names, stored...), nil
}

func runEval(ctx context.Context, out, errOut io.Writer, root *rootOptions, opts *evalOptions, exprs []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	settings, err := loadSettings(root, opts)
	if err != nil {
		return err
	}
	names, err := definedNames(settings)
	if err != nil {
		return err
	}

	h := hash.XXHash{}
	eng := engine.New(
		engine.WithHasher(h),
		engine.WithPredicate("equal", builtin.Equal),
		engine.WithPredicate("defined", builtin.Defined(builtin.NewHashSet(h, names...))),
		engine.WithStackSize(settings.StackSize),
		engine.WithMaxDepth(settings.MaxDepth),
		engine.WithLogger(newLogger(errOut, settings.LogLevel, root.verbose)),
	)

	allTrue, failed := true, false
	enc := json.NewEncoder(out)
	for _, expr := range exprs {
		value, evalErr := eng.Evaluate(ctx, expr, nil)
		if evalErr != nil {
			failed = true
		} else if !value {
			allTrue = false
		}

		if opts.asJSON {
			if err := enc.Encode(toOutput(expr, value, evalErr)); err != nil {
				return err
			}
			continue
		}
		if evalErr != nil {
			printDiagnostic(errOut, expr, evalErr)
			continue
		}
		fmt.Fprintln(out, value)
	}

	switch {
	case failed:
		return &exitError{code: 2}
	case !allTrue:
		return &exitError{code: 1}
	}
	return nil
}

func toOutput(expr string, value bool, err error) evalOutput {
	o := evalOutput{Expression: expr, Value: value, Status: condlang.StatusSuccess.String()}
	if err == nil {
		return o
	}
	o.Error = err.Error()
	if r, ok := err.(condlang.Result); ok {
		o.Status = r.Status().String()
	}
	if offset, ok := errorOffset(err); ok {
		o.Offset = &offset
	}
	return o
}

func errorOffset(err error) (int, bool) {
	var undef condlang.UndefinedIntrinsic
	if errors.As(err, &undef) {
		return undef.Offset, true
	}
	var pf condlang.ParseFailure
	if errors.As(err, &pf) {
		return pf.Offset, true
	}
	return 0, false
}

// printDiagnostic writes err followed by the expression with a caret line
// marking the failing span.
func printDiagnostic(w io.Writer, expr string, err error) {
	fmt.Fprintf(w, "error: %v\n", err)
	offset, ok := errorOffset(err)
	if !ok {
		return
	}
	width := 1
	var undef condlang.UndefinedIntrinsic
	if errors.As(err, &undef) && len(undef.Name) > 0 {
		width = len(undef.Name)
	}
	fmt.Fprintf(w, "  %s\n  %s%s\n", expr, strings.Repeat(" ", offset), strings.Repeat("^", width))
}
