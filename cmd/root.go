package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/ohodson/tiny-lisp/lisp"
	"github.com/ohodson/tiny-lisp/parser"
	"github.com/ohodson/tiny-lisp/repl"
	"github.com/spf13/cobra"
)

// rootOptions holds the values of persistent flags shared by all commands.
type rootOptions struct {
	maxStackHeight int
	trace          bool
	historyFile    string
}

// NewRootCommand returns the tiny-lisp command tree.  Without arguments the
// root command starts a repl.  Given a file it evaluates every expression in
// the file and prints the value of the last one.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:   "tiny-lisp [file]",
		Short: "A tiny lisp interpreter",
		Long: `Tiny-lisp evaluates lisp expressions.

With no arguments an interactive repl is started.  When a file is given every
expression in it is evaluated and the value of the last one is printed.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return opts.runRepl(cmd)
			}
			return opts.runFile(cmd, args[0])
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.IntVar(&opts.maxStackHeight, "max-stack-height", lisp.DefaultMaxHeight,
		"Maximum number of nested function calls")
	flags.BoolVar(&opts.trace, "trace", false,
		"Print the call stack of failed expressions")
	flags.StringVar(&opts.historyFile, "history-file", "",
		"File used to persist repl history")

	rootCmd.AddCommand(newRunCommand(opts))
	rootCmd.AddCommand(newReplCommand(opts))
	return rootCmd
}

// Execute runs the command tree with the process arguments.  Errors not
// already reported by a command are printed to stderr.
func Execute() error {
	rootCmd := NewRootCommand()
	err := rootCmd.Execute()
	if err != nil && !errors.As(err, new(*reportedError)) {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	}
	return err
}

func (opts *rootOptions) newRuntime(cmd *cobra.Command) (*lisp.Runtime, error) {
	return lisp.NewRuntime(
		lisp.WithReader(parser.NewReader()),
		lisp.WithStderr(cmd.ErrOrStderr()),
		lisp.WithMaximumStackHeight(opts.maxStackHeight),
	)
}

func (opts *rootOptions) runFile(cmd *cobra.Command, path string) error {
	rt, err := opts.newRuntime(cmd)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	exprs, err := rt.Read(path, f)
	if err != nil {
		return opts.report(cmd, err)
	}
	var last *lisp.LVal
	err = opts.evalAll(cmd, rt, exprs, func(v *lisp.LVal) { last = v })
	if err != nil {
		return err
	}
	if last != nil {
		fmt.Fprintln(cmd.OutOrStdout(), last)
	}
	return nil
}

// evalAll evaluates exprs in order, passing each value to fn.  Evaluation
// stops at the first error, which is reported.
func (opts *rootOptions) evalAll(cmd *cobra.Command, rt *lisp.Runtime, exprs []*lisp.LVal, fn func(*lisp.LVal)) error {
	for _, expr := range exprs {
		v := rt.Eval(expr)
		if v.IsError() {
			return opts.report(cmd, lisp.GoError(v))
		}
		fn(v)
	}
	return nil
}

func (opts *rootOptions) runRepl(cmd *cobra.Command) error {
	rt, err := opts.newRuntime(cmd)
	if err != nil {
		return err
	}
	return repl.RunRepl(rt,
		repl.WithStdin(cmd.InOrStdin()),
		repl.WithStdout(cmd.OutOrStdout()),
		repl.WithStderr(cmd.ErrOrStderr()),
		repl.WithTrace(opts.trace),
		repl.WithHistoryFile(opts.historyFile),
	)
}

// reportedError wraps a lisp error that has already been written to stderr.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// report writes err to stderr, followed by its call stack when tracing is
// enabled.
func (opts *rootOptions) report(cmd *cobra.Command, err error) error {
	w := cmd.ErrOrStderr()
	fmt.Fprintln(w, "Error:", err)
	var lerr *lisp.ErrorVal
	if opts.trace && errors.As(err, &lerr) && lerr.Stack().Height() > 0 {
		lerr.Stack().DebugPrint(w)
	}
	return &reportedError{err}
}
