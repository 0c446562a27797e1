package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/ohodson/tiny-lisp/lisp"
	"github.com/spf13/cobra"
)

type runOptions struct {
	*rootOptions
	expression bool
	print      bool
}

type runSource struct {
	name string
	text []byte
}

func newRunCommand(root *rootOptions) *cobra.Command {
	opts := &runOptions{rootOptions: root}
	runCmd := &cobra.Command{
		Use:   "run [file ...]",
		Short: "Run lisp code",
		Long: `Run lisp code supplied via the command line or files.

All sources are evaluated in order in a single global environment.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args)
		},
	}

	runCmd.Flags().BoolVarP(&opts.expression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	runCmd.Flags().BoolVarP(&opts.print, "print", "p", false,
		"Print expression values to stdout")
	return runCmd
}

func (opts *runOptions) run(cmd *cobra.Command, args []string) error {
	sources, err := opts.readSources(args)
	if err != nil {
		return err
	}
	rt, err := opts.newRuntime(cmd)
	if err != nil {
		return err
	}
	for _, src := range sources {
		exprs, err := rt.Read(src.name, bytes.NewReader(src.text))
		if err != nil {
			return opts.report(cmd, err)
		}
		err = opts.evalAll(cmd, rt, exprs, func(v *lisp.LVal) {
			if opts.print {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (opts *runOptions) readSources(args []string) ([]runSource, error) {
	sources := make([]runSource, len(args))
	if opts.expression {
		for i := range args {
			sources[i] = runSource{name: fmt.Sprintf("expression%d", i+1), text: []byte(args[i])}
		}
		return sources, nil
	}
	for i, path := range args {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		sources[i] = runSource{name: path, text: b}
	}
	return sources, nil
}
