package eval

import (
	"github.com/mewisme/mew/objects"
	"github.com/mewisme/mew/scope"
	"github.com/mewisme/mew/std"
)

// RegisterGlobals seeds env with the built-in names the specification
// requires on the global frame: purr and the three built-in namespaces.
// purr is declared here, rather than in std, because it must write to
// this Interp's configured output sink.
func (it *Interp) RegisterGlobals(env *scope.Scope) {
	env.DeclareHere("purr", &objects.BuiltinFunction{Name: "purr", Fn: func(args []objects.Value) (objects.Value, error) {
		it.print(args)
		return &objects.Undefined{}, nil
	}}, false)
	env.DeclareHere("Mewth", std.Math(), false)
	env.DeclareHere("MewJ", std.JSON(), false)
	env.DeclareHere("CatTime", std.Time(), false)
}
