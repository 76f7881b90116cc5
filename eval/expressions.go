package eval

import (
	"github.com/mewisme/mew/objects"
	"github.com/mewisme/mew/parser"
	"github.com/mewisme/mew/scope"
)

// evalExpression dispatches on the concrete expression type.
func (it *Interp) evalExpression(expr parser.Expression, env *scope.Scope) (objects.Value, error) {
	switch e := expr.(type) {
	case *parser.NumberLiteral:
		return &objects.Number{Value: e.Value}, nil
	case *parser.StringLiteral:
		return &objects.String{Value: e.Value}, nil
	case *parser.BoolLiteral:
		return &objects.Bool{Value: e.Value}, nil
	case *parser.NullLiteral:
		return &objects.Null{}, nil
	case *parser.UndefinedLiteral:
		return &objects.Undefined{}, nil
	case *parser.Identifier:
		v, ok := env.Lookup(e.Name)
		if !ok {
			return nil, nameErr(e, "%q is not declared", e.Name)
		}
		return v, nil
	case *parser.ArrayLiteral:
		return it.evalArrayLiteral(e, env)
	case *parser.ObjectLiteral:
		return it.evalObjectLiteral(e, env)
	case *parser.FunctionLiteral:
		return &objects.Function{Name: e.Name, Parameters: e.Parameters, Body: e.Body, Env: env}, nil
	case *parser.UnaryExpression:
		return it.evalUnary(e, env)
	case *parser.PostfixExpression:
		return it.evalPostfix(e, env)
	case *parser.BinaryExpression:
		return it.evalBinary(e, env)
	case *parser.TernaryExpression:
		return it.evalTernary(e, env)
	case *parser.AssignmentExpression:
		return it.evalAssignment(e, env)
	case *parser.CallExpression:
		return it.evalCall(e, env)
	case *parser.MemberExpression:
		return it.evalMember(e, env)
	case *parser.IndexExpression:
		return it.evalIndex(e, env)
	default:
		return nil, typeErr(expr, "cannot evaluate unknown expression type")
	}
}

func (it *Interp) evalArrayLiteral(e *parser.ArrayLiteral, env *scope.Scope) (objects.Value, error) {
	arr := &objects.Array{Elements: make([]objects.Value, 0, len(e.Elements))}
	for _, elemExpr := range e.Elements {
		v, err := it.evalExpression(elemExpr, env)
		if err != nil {
			return nil, err
		}
		arr.Elements = append(arr.Elements, v)
	}
	return arr, nil
}

func (it *Interp) evalObjectLiteral(e *parser.ObjectLiteral, env *scope.Scope) (objects.Value, error) {
	obj := objects.NewObject()
	for _, prop := range e.Properties {
		v, err := it.evalExpression(prop.Value, env)
		if err != nil {
			return nil, err
		}
		obj.Set(prop.Key, v)
	}
	return obj, nil
}

func (it *Interp) evalUnary(e *parser.UnaryExpression, env *scope.Scope) (objects.Value, error) {
	switch e.Operator {
	case "!":
		v, err := it.evalExpression(e.Operand, env)
		if err != nil {
			return nil, err
		}
		return &objects.Bool{Value: !objects.Truthy(v)}, nil
	case "-":
		v, err := it.evalExpression(e.Operand, env)
		if err != nil {
			return nil, err
		}
		return &objects.Number{Value: -objects.ToNumber(v)}, nil
	case "++", "--":
		cur, err := it.getLValue(e.Operand, env)
		if err != nil {
			return nil, err
		}
		next := objects.ToNumber(cur)
		if e.Operator == "++" {
			next++
		} else {
			next--
		}
		nv := &objects.Number{Value: next}
		if err := it.setLValue(e.Operand, env, nv); err != nil {
			return nil, err
		}
		return nv, nil
	default:
		return nil, typeErr(e, "unknown unary operator %q", e.Operator)
	}
}

func (it *Interp) evalPostfix(e *parser.PostfixExpression, env *scope.Scope) (objects.Value, error) {
	cur, err := it.getLValue(e.Operand, env)
	if err != nil {
		return nil, err
	}
	old := objects.ToNumber(cur)
	next := old
	if e.Operator == "++" {
		next++
	} else {
		next--
	}
	if err := it.setLValue(e.Operand, env, &objects.Number{Value: next}); err != nil {
		return nil, err
	}
	return &objects.Number{Value: old}, nil
}

func (it *Interp) evalTernary(e *parser.TernaryExpression, env *scope.Scope) (objects.Value, error) {
	cond, err := it.evalExpression(e.Condition, env)
	if err != nil {
		return nil, err
	}
	if objects.Truthy(cond) {
		return it.evalExpression(e.Consequence, env)
	}
	return it.evalExpression(e.Alternative, env)
}

// evalBinary handles logical short-circuit first (returning the actual
// operand value, not a coerced boolean), then arithmetic/comparison.
func (it *Interp) evalBinary(e *parser.BinaryExpression, env *scope.Scope) (objects.Value, error) {
	if e.Operator == "&&" || e.Operator == "||" {
		left, err := it.evalExpression(e.Left, env)
		if err != nil {
			return nil, err
		}
		leftTruthy := objects.Truthy(left)
		if e.Operator == "&&" && !leftTruthy {
			return left, nil
		}
		if e.Operator == "||" && leftTruthy {
			return left, nil
		}
		return it.evalExpression(e.Right, env)
	}

	left, err := it.evalExpression(e.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := it.evalExpression(e.Right, env)
	if err != nil {
		return nil, err
	}

	switch e.Operator {
	case "+":
		_, leftStr := left.(*objects.String)
		_, rightStr := right.(*objects.String)
		if leftStr || rightStr {
			return &objects.String{Value: left.Display() + right.Display()}, nil
		}
		return &objects.Number{Value: objects.ToNumber(left) + objects.ToNumber(right)}, nil
	case "-", "*", "/", "%":
		return numericBinary(e.Operator, left, right)
	case "==":
		return &objects.Bool{Value: valuesEqual(left, right)}, nil
	case "!=":
		return &objects.Bool{Value: !valuesEqual(left, right)}, nil
	case "<", "<=", ">", ">=":
		return &objects.Bool{Value: compare(e.Operator, left, right)}, nil
	default:
		return nil, typeErr(e, "unknown binary operator %q", e.Operator)
	}
}
