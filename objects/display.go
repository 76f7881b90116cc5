package objects

import (
	"math"
	"strconv"
	"strings"
)

// Display renders a number per specification §4.4: integer-valued finite
// numbers print with no fractional part, NaN and the infinities print
// their names, and everything else uses the shortest round-tripping
// decimal.
func (n *Number) Display() string {
	switch {
	case math.IsNaN(n.Value):
		return "NaN"
	case math.IsInf(n.Value, 1):
		return "Infinity"
	case math.IsInf(n.Value, -1):
		return "-Infinity"
	case n.Value == math.Trunc(n.Value) && math.Abs(n.Value) < 1e15:
		return strconv.FormatFloat(n.Value, 'f', -1, 64)
	default:
		return strconv.FormatFloat(n.Value, 'g', -1, 64)
	}
}

func (a *Array) Display() string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		parts[i] = e.Display()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (o *Object) Display() string {
	parts := make([]string, 0, len(o.Keys))
	for _, k := range o.Keys {
		parts = append(parts, k+": "+o.Values[k].Display())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// ToNumber is the to-number coercion of specification §4.4.
func ToNumber(v Value) float64 {
	switch v := v.(type) {
	case *Number:
		return v.Value
	case *Bool:
		if v.Value {
			return 1
		}
		return 0
	case *Null:
		return 0
	case *Undefined:
		return math.NaN()
	case *String:
		if v.Value == "" {
			return 0
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Value), 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

// Truthy implements the six falsy values of specification §4.3: false,
// null, undefined, NaN, the number 0, and the empty string. Everything
// else is truthy.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case *Bool:
		return v.Value
	case *Null:
		return false
	case *Undefined:
		return false
	case *Number:
		return !math.IsNaN(v.Value) && v.Value != 0
	case *String:
		return v.Value != ""
	default:
		return true
	}
}
