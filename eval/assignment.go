package eval

import (
	"github.com/mewisme/mew/objects"
	"github.com/mewisme/mew/parser"
	"github.com/mewisme/mew/scope"
)

// getLValue reads the current value of an lvalue expression: an
// identifier, a member access, or an index access. It is used both to
// read the left side of a compound assignment and to read the operand
// of prefix/postfix ++/--.
func (it *Interp) getLValue(e parser.Expression, env *scope.Scope) (objects.Value, error) {
	switch e.(type) {
	case *parser.Identifier, *parser.MemberExpression, *parser.IndexExpression:
		return it.evalExpression(e, env)
	default:
		return nil, typeErr(e, "invalid assignment target")
	}
}

// setLValue writes v into an lvalue expression, rejecting anything that
// isn't an identifier, member access, or index access (specification
// §4.2's "assignment lvalues" rule, enforced here rather than by the
// parser).
func (it *Interp) setLValue(e parser.Expression, env *scope.Scope, v objects.Value) error {
	switch target := e.(type) {
	case *parser.Identifier:
		ok, wasConst := env.Assign(target.Name, v)
		if ok {
			return nil
		}
		if wasConst {
			return valueErr(e, "cannot assign to constant %q", target.Name)
		}
		return nameErr(e, "%q is not declared", target.Name)

	case *parser.MemberExpression:
		obj, err := it.evalExpression(target.Object, env)
		if err != nil {
			return err
		}
		o, ok := obj.(*objects.Object)
		if !ok {
			return typeErr(e, "cannot set property %q on a %s", target.Property, obj.Type())
		}
		o.Set(target.Property, v)
		return nil

	case *parser.IndexExpression:
		left, err := it.evalExpression(target.Left, env)
		if err != nil {
			return err
		}
		idx, err := it.evalExpression(target.Index, env)
		if err != nil {
			return err
		}
		return it.setIndex(e, left, idx, v)

	default:
		return typeErr(e, "invalid assignment target")
	}
}

func (it *Interp) setIndex(e parser.Expression, left objects.Value, idx objects.Value, v objects.Value) error {
	switch container := left.(type) {
	case *objects.Array:
		n := objects.ToNumber(idx)
		if n != float64(int(n)) || n < 0 {
			return rangeErr(e, "array index must be a non-negative integer")
		}
		i := int(n)
		switch {
		case i < len(container.Elements):
			container.Elements[i] = v
		case i == len(container.Elements):
			container.Elements = append(container.Elements, v)
		default:
			return rangeErr(e, "array index %d out of range", i)
		}
		return nil
	case *objects.Object:
		container.Set(idx.Display(), v)
		return nil
	default:
		return typeErr(e, "cannot index-assign into a %s", left.Type())
	}
}

// evalAssignment evaluates = and the five compound-assignment operators.
// The result of the assignment expression is the assigned value.
func (it *Interp) evalAssignment(e *parser.AssignmentExpression, env *scope.Scope) (objects.Value, error) {
	if e.Operator == "=" {
		v, err := it.evalExpression(e.Value, env)
		if err != nil {
			return nil, err
		}
		if err := it.setLValue(e.Target, env, v); err != nil {
			return nil, err
		}
		return v, nil
	}

	cur, err := it.getLValue(e.Target, env)
	if err != nil {
		return nil, err
	}
	rhs, err := it.evalExpression(e.Value, env)
	if err != nil {
		return nil, err
	}

	var result objects.Value
	switch e.Operator {
	case "+=":
		_, curStr := cur.(*objects.String)
		_, rhsStr := rhs.(*objects.String)
		if curStr || rhsStr {
			result = &objects.String{Value: cur.Display() + rhs.Display()}
		} else {
			result = &objects.Number{Value: objects.ToNumber(cur) + objects.ToNumber(rhs)}
		}
	case "-=":
		result, err = numericBinary("-", cur, rhs)
	case "*=":
		result, err = numericBinary("*", cur, rhs)
	case "/=":
		result, err = numericBinary("/", cur, rhs)
	case "%=":
		result, err = numericBinary("%", cur, rhs)
	default:
		return nil, typeErr(e, "unknown compound assignment operator %q", e.Operator)
	}
	if err != nil {
		return nil, err
	}

	if err := it.setLValue(e.Target, env, result); err != nil {
		return nil, err
	}
	return result, nil
}
