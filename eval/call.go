package eval

import (
	"github.com/mewisme/mew/errs"
	"github.com/mewisme/mew/objects"
	"github.com/mewisme/mew/parser"
	"github.com/mewisme/mew/scope"
)

// evalCall evaluates the callee and arguments left-to-right, then
// dispatches to a user function or a builtin. Extra arguments are
// ignored; missing ones bind to Undefined.
func (it *Interp) evalCall(e *parser.CallExpression, env *scope.Scope) (objects.Value, error) {
	callee, err := it.evalExpression(e.Callee, env)
	if err != nil {
		return nil, err
	}

	args := make([]objects.Value, len(e.Arguments))
	for i, argExpr := range e.Arguments {
		v, err := it.evalExpression(argExpr, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	switch fn := callee.(type) {
	case *objects.Function:
		return it.callFunction(e, fn, args)
	case *objects.BuiltinFunction:
		v, err := fn.Fn(args)
		if err != nil {
			// Builtins raise errors without a position; attach the call site.
			if be, ok := err.(*errs.Error); ok && be.Pos == (errs.Position{}) {
				be.Pos = posOf(e)
			}
			return nil, err
		}
		return v, nil
	default:
		return nil, typeErr(e, "cannot call a %s, not a function", callee.Type())
	}
}

func (it *Interp) callFunction(pos parser.Node, fn *objects.Function, args []objects.Value) (objects.Value, error) {
	if it.callDepth >= maxCallDepth {
		return nil, rangeErr(pos, "maximum call stack size exceeded")
	}
	it.callDepth++
	defer func() { it.callDepth-- }()

	parent, _ := fn.Env.(*scope.Scope)
	callEnv := scope.NewFunctionScope(parent)
	for i, param := range fn.Parameters {
		v := argOrUndefined(args, i)
		callEnv.DeclareHere(param.Name, v, false)
	}

	c, err := it.execBlock(fn.Body, callEnv)
	if err != nil {
		return nil, err
	}
	if c.sig == sigReturn {
		return c.value, nil
	}
	return &objects.Undefined{}, nil
}
