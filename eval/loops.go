package eval

import (
	"github.com/mewisme/mew/objects"
	"github.com/mewisme/mew/parser"
	"github.com/mewisme/mew/scope"
)

func (it *Interp) execWhile(s *parser.WhileStatement, env *scope.Scope) (completion, error) {
	for {
		cond, err := it.evalExpression(s.Condition, env)
		if err != nil {
			return completion{}, err
		}
		if !objects.Truthy(cond) {
			return normalCompletion, nil
		}
		c, err := it.execBlock(s.Body, scope.New(env))
		if err != nil {
			return completion{}, err
		}
		switch c.sig {
		case sigBreak:
			return normalCompletion, nil
		case sigReturn:
			return c, nil
		}
	}
}

func (it *Interp) execDoWhile(s *parser.DoWhileStatement, env *scope.Scope) (completion, error) {
	for {
		c, err := it.execBlock(s.Body, scope.New(env))
		if err != nil {
			return completion{}, err
		}
		switch c.sig {
		case sigBreak:
			return normalCompletion, nil
		case sigReturn:
			return c, nil
		}
		cond, err := it.evalExpression(s.Condition, env)
		if err != nil {
			return completion{}, err
		}
		if !objects.Truthy(cond) {
			return normalCompletion, nil
		}
	}
}

// execFor runs a C-style loop: a single block scope covers the init
// clause, the condition, the step, and the body, per the specification.
func (it *Interp) execFor(s *parser.ForStatement, env *scope.Scope) (completion, error) {
	loopEnv := scope.New(env)

	if s.Init != nil {
		if _, err := it.execStatement(s.Init, loopEnv); err != nil {
			return completion{}, err
		}
	}

	for {
		if s.Condition != nil {
			cond, err := it.evalExpression(s.Condition, loopEnv)
			if err != nil {
				return completion{}, err
			}
			if !objects.Truthy(cond) {
				return normalCompletion, nil
			}
		}

		c, err := it.execBlock(s.Body, scope.New(loopEnv))
		if err != nil {
			return completion{}, err
		}
		switch c.sig {
		case sigBreak:
			return normalCompletion, nil
		case sigReturn:
			return c, nil
		}

		if s.Step != nil {
			if _, err := it.evalExpression(s.Step, loopEnv); err != nil {
				return completion{}, err
			}
		}
	}
}

// execForIn iterates the loop variable over object keys (insertion
// order), array indices (as numbers), or string character indices.
func (it *Interp) execForIn(s *parser.ForInStatement, env *scope.Scope) (completion, error) {
	subject, err := it.evalExpression(s.Iterable, env)
	if err != nil {
		return completion{}, err
	}

	var items []objects.Value
	switch v := subject.(type) {
	case *objects.Object:
		for _, k := range v.Keys {
			items = append(items, &objects.String{Value: k})
		}
	case *objects.Array:
		for i := range v.Elements {
			items = append(items, &objects.Number{Value: float64(i)})
		}
	case *objects.String:
		n := len([]rune(v.Value))
		for i := 0; i < n; i++ {
			items = append(items, &objects.Number{Value: float64(i)})
		}
	default:
		return completion{}, typeErr(s, "for-in requires an object, array, or string")
	}

	return it.runForEach(s.Iterable, s.VarName, items, s.Body, env)
}

// execForOf iterates the loop variable over array elements or string
// characters; iterating an object is a TypeError.
func (it *Interp) execForOf(s *parser.ForOfStatement, env *scope.Scope) (completion, error) {
	subject, err := it.evalExpression(s.Iterable, env)
	if err != nil {
		return completion{}, err
	}

	var items []objects.Value
	switch v := subject.(type) {
	case *objects.Array:
		items = append(items, v.Elements...)
	case *objects.String:
		for _, r := range v.Value {
			items = append(items, &objects.String{Value: string(r)})
		}
	default:
		return completion{}, typeErr(s, "for-of requires an array or string, not %s", subject.Type())
	}

	return it.runForEach(s.Iterable, s.VarName, items, s.Body, env)
}

// runForEach drives both for-in and for-of: each iteration gets its own
// block scope with the loop variable freshly bound, so a closure created
// inside the body captures that iteration's value.
func (it *Interp) runForEach(posNode parser.Node, varName string, items []objects.Value, body *parser.BlockStatement, env *scope.Scope) (completion, error) {
	for _, item := range items {
		iterEnv := scope.New(env)
		iterEnv.DeclareHere(varName, item, false)
		c, err := it.execBlock(body, iterEnv)
		if err != nil {
			return completion{}, err
		}
		switch c.sig {
		case sigBreak:
			return normalCompletion, nil
		case sigReturn:
			return c, nil
		}
	}
	return normalCompletion, nil
}
