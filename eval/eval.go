// Package eval is the tree-walking interpreter: it evaluates an AST
// produced by the parser against an environment from the scope package,
// producing values from the objects package and side effects on stdout.
// Expressions evaluate to a Value; statements evaluate to a completion
// (Normal, Break, Continue, or Return) per the specification's
// completion-record model.
package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/mewisme/mew/errs"
	"github.com/mewisme/mew/objects"
	"github.com/mewisme/mew/parser"
	"github.com/mewisme/mew/scope"
)

// signal tags how a statement's execution terminated.
type signal int

const (
	sigNormal signal = iota
	sigBreak
	sigContinue
	sigReturn
)

// completion is the result of executing one statement: a signal plus,
// for sigReturn, the returned value.
type completion struct {
	sig   signal
	value objects.Value
}

var normalCompletion = completion{sig: sigNormal}

// maxCallDepth bounds recursion so a runaway program fails with a clean
// RangeError instead of overflowing the host stack (specification §5).
const maxCallDepth = 2000

// Interp holds the mutable state of one evaluation session: the output
// sink (stdout, or a buffer in tests) and the current call depth. A
// fresh Interp is cheap; a REPL keeps one alive across fragments so that
// global bindings persist.
type Interp struct {
	Out      io.Writer
	callDepth int
}

// New creates an Interp that writes purr output to stdout.
func New() *Interp {
	return &Interp{Out: os.Stdout}
}

// NewGlobalScope creates the root frame pre-populated with the built-in
// bindings (purr, Mewth, MewJ, CatTime).
func (it *Interp) NewGlobalScope() *scope.Scope {
	g := scope.New(nil)
	g.IsFunctionScope = true
	it.RegisterGlobals(g)
	return g
}

// EvalProgram runs a program's statements in order against env. It
// returns the value of the last expression statement (useful for a REPL
// echoing fragment results) and any error that aborted execution. A
// Return reaching the top level is reported as a runtime InternalError,
// per the specification.
func (it *Interp) EvalProgram(prog *parser.Program, env *scope.Scope) (objects.Value, error) {
	var last objects.Value = &objects.Undefined{}
	for _, stmt := range prog.Statements {
		if es, ok := stmt.(*parser.ExpressionStatement); ok {
			v, err := it.evalExpression(es.Expression, env)
			if err != nil {
				return nil, err
			}
			last = v
			continue
		}
		c, err := it.execStatement(stmt, env)
		if err != nil {
			return nil, err
		}
		switch c.sig {
		case sigReturn:
			return nil, errs.New(errs.InternalError, posOf(stmt), "return outside of a function")
		case sigBreak:
			return nil, errs.New(errs.InternalError, posOf(stmt), "break outside of a loop or switch")
		case sigContinue:
			return nil, errs.New(errs.InternalError, posOf(stmt), "continue outside of a loop or switch")
		}
	}
	return last, nil
}

func posOf(n parser.Node) errs.Position {
	t := n.Pos()
	return errs.Position{Line: t.Line, Column: t.Column}
}

func typeErr(n parser.Node, format string, args ...any) error {
	return errs.New(errs.TypeError, posOf(n), format, args...)
}

func nameErr(n parser.Node, format string, args ...any) error {
	return errs.New(errs.NameError, posOf(n), format, args...)
}

func rangeErr(n parser.Node, format string, args ...any) error {
	return errs.New(errs.RangeError, posOf(n), format, args...)
}

func valueErr(n parser.Node, format string, args ...any) error {
	return errs.New(errs.ValueError, posOf(n), format, args...)
}

func (it *Interp) print(args []objects.Value) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.Display()
	}
	for _, p := range parts {
		fmt.Fprint(it.Out, p)
	}
	fmt.Fprintln(it.Out)
}
