package eval

import (
	"math"

	"github.com/mewisme/mew/objects"
)

// valuesEqual implements ==: value equality for primitives (matched by
// concrete type, so a number is never equal to a string), reference
// identity for arrays/objects/functions/builtins. NaN is never equal to
// anything, including itself.
func valuesEqual(a, b objects.Value) bool {
	switch av := a.(type) {
	case *objects.Number:
		bv, ok := b.(*objects.Number)
		if !ok || math.IsNaN(av.Value) || math.IsNaN(bv.Value) {
			return false
		}
		return av.Value == bv.Value
	case *objects.String:
		bv, ok := b.(*objects.String)
		return ok && av.Value == bv.Value
	case *objects.Bool:
		bv, ok := b.(*objects.Bool)
		return ok && av.Value == bv.Value
	case *objects.Null:
		_, ok := b.(*objects.Null)
		return ok
	case *objects.Undefined:
		_, ok := b.(*objects.Undefined)
		return ok
	case *objects.Array:
		bv, ok := b.(*objects.Array)
		return ok && av == bv
	case *objects.Object:
		bv, ok := b.(*objects.Object)
		return ok && av == bv
	case *objects.Function:
		bv, ok := b.(*objects.Function)
		return ok && av == bv
	case *objects.BuiltinFunction:
		bv, ok := b.(*objects.BuiltinFunction)
		return ok && av == bv
	case *objects.BuiltinNamespace:
		bv, ok := b.(*objects.BuiltinNamespace)
		return ok && av == bv
	case *objects.Date:
		bv, ok := b.(*objects.Date)
		return ok && av == bv
	default:
		return false
	}
}

// compare implements the four relational operators: numeric if both
// operands are numbers, lexicographic if both are strings, otherwise
// both sides coerce to number. Any NaN operand makes every relational
// comparison false.
func compare(op string, a, b objects.Value) bool {
	as, aIsStr := a.(*objects.String)
	bs, bIsStr := b.(*objects.String)
	if aIsStr && bIsStr {
		switch op {
		case "<":
			return as.Value < bs.Value
		case "<=":
			return as.Value <= bs.Value
		case ">":
			return as.Value > bs.Value
		case ">=":
			return as.Value >= bs.Value
		}
	}

	an, bn := objects.ToNumber(a), objects.ToNumber(b)
	if math.IsNaN(an) || math.IsNaN(bn) {
		return false
	}
	switch op {
	case "<":
		return an < bn
	case "<=":
		return an <= bn
	case ">":
		return an > bn
	case ">=":
		return an >= bn
	}
	return false
}

// numericBinary applies a numeric operator, coercing both operands.
// Division and modulo follow IEEE 754 float semantics: division by zero
// yields ±Infinity, and 0/0 yields NaN.
func numericBinary(op string, a, b objects.Value) (objects.Value, error) {
	x, y := objects.ToNumber(a), objects.ToNumber(b)
	switch op {
	case "-":
		return &objects.Number{Value: x - y}, nil
	case "*":
		return &objects.Number{Value: x * y}, nil
	case "/":
		return &objects.Number{Value: x / y}, nil
	case "%":
		return &objects.Number{Value: math.Mod(x, y)}, nil
	}
	return nil, nil
}
