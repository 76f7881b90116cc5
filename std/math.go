package std

import (
	"math"
	"math/rand"

	"github.com/mewisme/mew/objects"
)

// Math builds the Mewth namespace: a constant and a handful of
// single/variadic-argument numeric functions, all operating on numbers
// coerced per the to-number rules.
func Math() *objects.BuiltinNamespace {
	return &objects.BuiltinNamespace{
		Name: "Mewth",
		Members: map[string]objects.Value{
			"PI": num(math.Pi),

			// pounce floors to the nearest integer below or equal to x.
			"pounce": fn("pounce", func(args []objects.Value) (objects.Value, error) {
				return num(math.Floor(argNumber(args, 0))), nil
			}),
			// leap rounds up to the nearest integer above or equal to x.
			"leap": fn("leap", func(args []objects.Value) (objects.Value, error) {
				return num(math.Ceil(argNumber(args, 0))), nil
			}),
			// curl rounds half-away-from-zero to the nearest integer.
			"curl": fn("curl", func(args []objects.Value) (objects.Value, error) {
				return num(math.Round(argNumber(args, 0))), nil
			}),
			"lick": fn("lick", func(args []objects.Value) (objects.Value, error) {
				return num(math.Abs(argNumber(args, 0))), nil
			}),
			"alpha": fn("alpha", func(args []objects.Value) (objects.Value, error) {
				return num(reduceNumbers(args, math.Inf(-1), math.Max)), nil
			}),
			"kitten": fn("kitten", func(args []objects.Value) (objects.Value, error) {
				return num(reduceNumbers(args, math.Inf(1), math.Min)), nil
			}),
			"chase": fn("chase", func(args []objects.Value) (objects.Value, error) {
				return num(rand.Float64()), nil
			}),
			"dig": fn("dig", func(args []objects.Value) (objects.Value, error) {
				return num(math.Sqrt(argNumber(args, 0))), nil
			}),
			"scratch": fn("scratch", func(args []objects.Value) (objects.Value, error) {
				return num(math.Pow(argNumber(args, 0), argNumber(args, 1))), nil
			}),
			// tailDirection is the sign of x: -1, 0, or +1; NaN propagates.
			"tailDirection": fn("tailDirection", func(args []objects.Value) (objects.Value, error) {
				x := argNumber(args, 0)
				switch {
				case math.IsNaN(x):
					return num(math.NaN()), nil
				case x > 0:
					return num(1), nil
				case x < 0:
					return num(-1), nil
				default:
					return num(0), nil
				}
			}),
		},
	}
}

func reduceNumbers(args []objects.Value, seed float64, op func(a, b float64) float64) float64 {
	acc := seed
	for i := range args {
		acc = op(acc, argNumber(args, i))
	}
	return acc
}
