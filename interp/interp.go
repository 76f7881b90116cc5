// Package interp exposes the three entry points the rest of the system
// (CLI, REPL, and anything else external to the core) uses to run Mew
// source: evaluating a one-shot string, evaluating a file, and
// evaluating successive fragments against one persistent session.
package interp

import (
	"fmt"
	"io"
	"os"

	"github.com/mewisme/mew/errs"
	"github.com/mewisme/mew/eval"
	"github.com/mewisme/mew/lexer"
	"github.com/mewisme/mew/objects"
	"github.com/mewisme/mew/parser"
	"github.com/mewisme/mew/scope"
)

// Session wraps one evaluator and its global environment, kept alive
// across calls to EvalFragment so declarations and side effects persist
// the way a REPL or a long-lived script host expects.
type Session struct {
	it  *eval.Interp
	env *scope.Scope
}

// NewSession creates a session that writes purr output to out.
func NewSession(out io.Writer) *Session {
	it := eval.New()
	it.Out = out
	return &Session{it: it, env: it.NewGlobalScope()}
}

// parse runs the lexer and parser over source, returning the first
// lexical or syntax error encountered.
func parse(source string) (*parser.Program, error) {
	l := lexer.New(source)
	p := parser.New(l)
	prog := p.ParseProgram()
	if perr := p.Err(); perr != nil {
		return nil, perr
	}
	return prog, nil
}

// EvalFragment parses and evaluates source against the session's
// persistent global environment, returning the value of its last
// expression statement (or Undefined) for a REPL to echo.
func (s *Session) EvalFragment(source string) (objects.Value, error) {
	prog, err := parse(source)
	if err != nil {
		return nil, err
	}
	return s.it.EvalProgram(prog, s.env)
}

// EvalString evaluates source in a fresh, disposable session.
func EvalString(source string, out io.Writer) (objects.Value, error) {
	return NewSession(out).EvalFragment(source)
}

// EvalFile reads path, evaluates it as a complete program with a fresh
// global environment, and writes a formatted diagnostic to stderr on
// failure. It returns a non-nil error whenever execution did not
// complete successfully, so callers (the run subcommand) can map it to
// a process exit code.
func EvalFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("reading %s: %w", path, err)
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	source := string(data)

	session := NewSession(os.Stdout)
	_, err = session.EvalFragment(source)
	if err != nil {
		if e, ok := err.(*errs.Error); ok {
			fmt.Fprintln(os.Stderr, e.Format(source))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		return err
	}
	return nil
}
