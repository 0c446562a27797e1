package repl

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/ohodson/tiny-lisp/lisp"
	"github.com/ohodson/tiny-lisp/parser"
	"github.com/ohodson/tiny-lisp/parser/lexer"
)

// DefaultPrompt is the prompt displayed while waiting for a new expression.
const DefaultPrompt = "lisp> "

// Banner is printed when the repl starts.
const Banner = `Tiny Lisp Interpreter v1.0
Type 'quit', 'exit' or ':q' to leave.
`

// LineReader reads lines of user input.  A *readline.Instance is a
// LineReader.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	Close() error
}

// Option configures a repl.
type Option func(r *repl)

// WithPrompt sets the prompt displayed while waiting for a new expression.
func WithPrompt(prompt string) Option {
	return func(r *repl) { r.prompt = prompt }
}

// WithStdin sets the input stream read when no LineReader is given.
func WithStdin(rd io.Reader) Option {
	return func(r *repl) { r.stdin = rd }
}

// WithStdout sets the writer that receives banners and evaluated values.
func WithStdout(w io.Writer) Option {
	return func(r *repl) { r.stdout = w }
}

// WithStderr sets the writer that receives error messages.
func WithStderr(w io.Writer) Option {
	return func(r *repl) { r.stderr = w }
}

// WithTrace causes the call stack of failed expressions to be printed along
// with the error.
func WithTrace(trace bool) Option {
	return func(r *repl) { r.trace = trace }
}

// WithHistoryFile persists line history in the named file.
func WithHistoryFile(path string) Option {
	return func(r *repl) { r.historyFile = path }
}

// WithLineReader makes the repl read input from lr instead of a terminal.
func WithLineReader(lr LineReader) Option {
	return func(r *repl) { r.lr = lr }
}

type repl struct {
	rt          *lisp.Runtime
	lr          LineReader
	prompt      string
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	trace       bool
	historyFile string
}

// RunRepl runs a simple repl evaluating expressions in rt.  RunRepl returns
// when the user quits or input is exhausted.
func RunRepl(rt *lisp.Runtime, opts ...Option) error {
	r := &repl{
		rt:     rt,
		prompt: DefaultPrompt,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.lr == nil {
		config := &readline.Config{
			Prompt:       r.prompt,
			HistoryFile:  r.historyFile,
			AutoComplete: &completer{env: rt.Root},
			Stdout:       r.stdout,
			Stderr:       r.stderr,
		}
		if r.stdin != os.Stdin {
			config.Stdin = io.NopCloser(r.stdin)
		}
		rl, err := readline.NewEx(config)
		if err != nil {
			return err
		}
		r.lr = rl
	}
	defer r.lr.Close()
	return r.run()
}

func (r *repl) run() error {
	contPrompt := strings.Repeat(" ", len(r.prompt)) // prompt had better be ascii...

	fmt.Fprint(r.stdout, Banner)
	r.lr.SetPrompt(r.prompt)
	var buf []string
	for {
		line, err := r.lr.Readline()
		if err == readline.ErrInterrupt {
			buf = nil
			r.lr.SetPrompt(r.prompt)
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if len(buf) == 0 && isQuit(line) {
			return nil
		}
		buf = append(buf, line)
		exprs, err := r.rt.Read("repl", strings.NewReader(strings.Join(buf, "\n")))
		if parser.IsIncomplete(err) {
			r.lr.SetPrompt(contPrompt)
			continue
		}
		buf = nil
		r.lr.SetPrompt(r.prompt)
		if err != nil {
			r.errln(err)
			continue
		}
		r.eval(exprs)
	}
}

// eval evaluates exprs in order and prints their values.  Expressions
// following an error are not evaluated.
func (r *repl) eval(exprs []*lisp.LVal) {
	for _, expr := range exprs {
		v := r.rt.Eval(expr)
		if v.IsError() {
			r.errln(lisp.GoError(v))
			return
		}
		fmt.Fprintln(r.stdout, v)
	}
}

func (r *repl) errln(err error) {
	fmt.Fprintln(r.stderr, "Error:", err)
	if !r.trace {
		return
	}
	lerr, ok := err.(*lisp.ErrorVal)
	if ok && lerr.Stack().Height() > 0 {
		lerr.Stack().DebugPrint(r.stderr)
	}
}

func isQuit(line string) bool {
	switch strings.TrimSpace(line) {
	case "quit", "exit", ":q":
		return true
	}
	return false
}

// completer completes the symbol before the cursor with the names of special
// forms and global bindings.
type completer struct {
	env *lisp.LEnv
}

var _ readline.AutoCompleter = (*completer)(nil)

// Do implements readline.AutoCompleter.
func (c *completer) Do(line []rune, pos int) ([][]rune, int) {
	start := pos
	for start > 0 && lexer.IsSymbolRune(line[start-1]) && line[start-1] != '\'' {
		start--
	}
	prefix := string(line[start:pos])
	var suffixes [][]rune
	for _, name := range c.names() {
		if len(name) > len(prefix) && strings.HasPrefix(name, prefix) {
			suffixes = append(suffixes, []rune(name[len(prefix):]))
		}
	}
	return suffixes, len([]rune(prefix))
}

func (c *completer) names() []string {
	names := c.env.Symbols()
	for _, op := range lisp.DefaultSpecialOps() {
		names = append(names, op.Name())
	}
	sort.Strings(names)
	uniq := names[:0]
	for i, name := range names {
		if i == 0 || name != names[i-1] {
			uniq = append(uniq, name)
		}
	}
	return uniq
}
