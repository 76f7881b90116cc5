// Package scope implements the environment chain the evaluator walks to
// resolve and bind identifiers: a tree of frames, each owning a group of
// bindings introduced at the same lexical scope, linked to its parent.
package scope

import "github.com/mewisme/mew/objects"

type binding struct {
	value objects.Value
	const_ bool
}

// Scope is one frame in the environment chain. IsFunctionScope marks a
// frame as a function (or global) boundary: catv declarations walk up
// to the nearest such frame instead of binding in the current block,
// per the specification's var-is-function-scoped rule.
type Scope struct {
	bindings        map[string]*binding
	Parent          *Scope
	IsFunctionScope bool
}

// New creates a scope with the given parent. A nil parent marks the
// global frame.
func New(parent *Scope) *Scope {
	return &Scope{bindings: make(map[string]*binding), Parent: parent}
}

// NewFunctionScope creates a function-boundary scope with the given
// parent (the closure's captured environment).
func NewFunctionScope(parent *Scope) *Scope {
	s := New(parent)
	s.IsFunctionScope = true
	return s
}

// Lookup walks outward from s and returns the nearest binding for name.
func (s *Scope) Lookup(name string) (objects.Value, bool) {
	for f := s; f != nil; f = f.Parent {
		if b, ok := f.bindings[name]; ok {
			return b.value, true
		}
	}
	return nil, false
}

// IsConst reports whether name resolves to a constant binding anywhere
// in the chain.
func (s *Scope) IsConst(name string) bool {
	for f := s; f != nil; f = f.Parent {
		if b, ok := f.bindings[name]; ok {
			return b.const_
		}
	}
	return false
}

// DeclareHere declares name in this exact frame. It reports false if
// name is already bound in this frame (redeclaration), matching the
// specification's "declared exactly once per frame" invariant.
func (s *Scope) DeclareHere(name string, v objects.Value, isConst bool) bool {
	if _, exists := s.bindings[name]; exists {
		return false
	}
	s.bindings[name] = &binding{value: v, const_: isConst}
	return true
}

// nearestFunctionScope returns the nearest enclosing frame with
// IsFunctionScope set, or the outermost (global) frame if none is
// marked — the global frame is itself a function-scope boundary.
func (s *Scope) nearestFunctionScope() *Scope {
	f := s
	for f.Parent != nil && !f.IsFunctionScope {
		f = f.Parent
	}
	return f
}

// DeclareVar implements catv: the binding is installed in the nearest
// enclosing function (or global) frame, not necessarily s itself. It
// reports false if that frame already declares name.
func (s *Scope) DeclareVar(name string, v objects.Value) bool {
	return s.nearestFunctionScope().DeclareHere(name, v, false)
}

// Assign updates the nearest existing binding for name in place. It
// reports false if name is not declared anywhere in the chain, or if
// wasConst is true (the caller is expected to turn that into a
// ValueError, since constant reassignment has dedicated diagnostics).
func (s *Scope) Assign(name string, v objects.Value) (ok bool, wasConst bool) {
	for f := s; f != nil; f = f.Parent {
		if b, exists := f.bindings[name]; exists {
			if b.const_ {
				return false, true
			}
			b.value = v
			return true, false
		}
	}
	return false, false
}
