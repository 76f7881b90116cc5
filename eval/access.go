package eval

import (
	"github.com/mewisme/mew/objects"
	"github.com/mewisme/mew/parser"
	"github.com/mewisme/mew/scope"
)

func (it *Interp) evalMember(e *parser.MemberExpression, env *scope.Scope) (objects.Value, error) {
	obj, err := it.evalExpression(e.Object, env)
	if err != nil {
		return nil, err
	}
	return it.getMember(e, obj, e.Property)
}

func (it *Interp) getMember(pos parser.Node, obj objects.Value, name string) (objects.Value, error) {
	switch v := obj.(type) {
	case *objects.Object:
		return v.Get(name), nil
	case *objects.BuiltinNamespace:
		return v.Get(name), nil
	case *objects.Array:
		if name == "length" {
			return &objects.Number{Value: float64(len(v.Elements))}, nil
		}
		return &objects.Undefined{}, nil
	case *objects.String:
		if name == "length" {
			return &objects.Number{Value: float64(len([]rune(v.Value)))}, nil
		}
		if fn, ok := stringMethod(v, name); ok {
			return fn, nil
		}
		return &objects.Undefined{}, nil
	case *objects.Null, *objects.Undefined:
		return nil, typeErr(pos, "cannot read property %q of %s", name, v.Type())
	default:
		return &objects.Undefined{}, nil
	}
}

// stringMethod returns the bound builtin for the string methods the
// specification names: charAt, substring, and toString. charAt and
// substring are rune-indexed, since length is specified as a code-point
// count.
func stringMethod(s *objects.String, name string) (objects.Value, bool) {
	runes := []rune(s.Value)
	switch name {
	case "charAt":
		return &objects.BuiltinFunction{Name: "charAt", Fn: func(args []objects.Value) (objects.Value, error) {
			i := int(objects.ToNumber(argOrUndefined(args, 0)))
			if i < 0 || i >= len(runes) {
				return &objects.String{Value: ""}, nil
			}
			return &objects.String{Value: string(runes[i])}, nil
		}}, true
	case "substring":
		return &objects.BuiltinFunction{Name: "substring", Fn: func(args []objects.Value) (objects.Value, error) {
			start := clampIndex(objects.ToNumber(argOrUndefined(args, 0)), len(runes))
			end := len(runes)
			if len(args) > 1 {
				end = clampIndex(objects.ToNumber(args[1]), len(runes))
			}
			if start > end {
				start, end = end, start
			}
			return &objects.String{Value: string(runes[start:end])}, nil
		}}, true
	case "toString":
		return &objects.BuiltinFunction{Name: "toString", Fn: func(args []objects.Value) (objects.Value, error) {
			return &objects.String{Value: s.Value}, nil
		}}, true
	}
	return nil, false
}

func argOrUndefined(args []objects.Value, i int) objects.Value {
	if i < len(args) {
		return args[i]
	}
	return &objects.Undefined{}
}

func clampIndex(n float64, length int) int {
	i := int(n)
	if i < 0 {
		i = 0
	}
	if i > length {
		i = length
	}
	return i
}

func (it *Interp) evalIndex(e *parser.IndexExpression, env *scope.Scope) (objects.Value, error) {
	left, err := it.evalExpression(e.Left, env)
	if err != nil {
		return nil, err
	}
	idx, err := it.evalExpression(e.Index, env)
	if err != nil {
		return nil, err
	}

	switch v := left.(type) {
	case *objects.Array:
		n := objects.ToNumber(idx)
		if n != float64(int(n)) || n < 0 {
			return nil, rangeErr(e, "array index must be a non-negative integer")
		}
		i := int(n)
		if i >= len(v.Elements) {
			return &objects.Undefined{}, nil
		}
		return v.Elements[i], nil
	case *objects.Object:
		return v.Get(idx.Display()), nil
	case *objects.String:
		runes := []rune(v.Value)
		n := objects.ToNumber(idx)
		if n != float64(int(n)) || n < 0 {
			return nil, rangeErr(e, "string index must be a non-negative integer")
		}
		i := int(n)
		if i >= len(runes) {
			return &objects.Undefined{}, nil
		}
		return &objects.String{Value: string(runes[i])}, nil
	default:
		return nil, typeErr(e, "cannot index a %s", left.Type())
	}
}
