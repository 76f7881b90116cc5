// Package std implements the built-in namespaces the specification
// pre-populates the global frame with: Mewth (math), MewJ (JSON), and
// CatTime (date/time). purr itself lives in the eval package, since it
// needs to write to the interpreter's configured output sink.
package std

import (
	"github.com/mewisme/mew/errs"
	"github.com/mewisme/mew/objects"
)

// builtin-raised errors have no source position: the call site's
// position is attached by the evaluator's own error wrapping where
// useful, but the operation itself (e.g. "not valid JSON") has nothing
// more specific to point at than the builtin's name.
func typeErr(format string, args ...any) error {
	return errs.New(errs.TypeError, errs.Position{}, format, args...)
}

func valueErr(format string, args ...any) error {
	return errs.New(errs.ValueError, errs.Position{}, format, args...)
}

func arg(args []objects.Value, i int) objects.Value {
	if i < len(args) {
		return args[i]
	}
	return &objects.Undefined{}
}

func argNumber(args []objects.Value, i int) float64 {
	return objects.ToNumber(arg(args, i))
}

func fn(name string, f func(args []objects.Value) (objects.Value, error)) objects.Value {
	return &objects.BuiltinFunction{Name: name, Fn: f}
}

func num(v float64) *objects.Number { return &objects.Number{Value: v} }
