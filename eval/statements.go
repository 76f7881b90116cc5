package eval

import (
	"github.com/mewisme/mew/objects"
	"github.com/mewisme/mew/parser"
	"github.com/mewisme/mew/scope"
)

// execStatement dispatches on the concrete statement type and returns
// its completion.
func (it *Interp) execStatement(stmt parser.Statement, env *scope.Scope) (completion, error) {
	switch s := stmt.(type) {
	case *parser.ExpressionStatement:
		if _, err := it.evalExpression(s.Expression, env); err != nil {
			return completion{}, err
		}
		return normalCompletion, nil
	case *parser.VarDeclaration:
		return it.execVarDeclaration(s, env)
	case *parser.BlockStatement:
		return it.execBlock(s, scope.New(env))
	case *parser.IfStatement:
		return it.execIf(s, env)
	case *parser.WhileStatement:
		return it.execWhile(s, env)
	case *parser.DoWhileStatement:
		return it.execDoWhile(s, env)
	case *parser.ForStatement:
		return it.execFor(s, env)
	case *parser.ForInStatement:
		return it.execForIn(s, env)
	case *parser.ForOfStatement:
		return it.execForOf(s, env)
	case *parser.SwitchStatement:
		return it.execSwitch(s, env)
	case *parser.BreakStatement:
		return completion{sig: sigBreak}, nil
	case *parser.ContinueStatement:
		return completion{sig: sigContinue}, nil
	case *parser.ReturnStatement:
		if s.Value == nil {
			return completion{sig: sigReturn, value: &objects.Undefined{}}, nil
		}
		v, err := it.evalExpression(s.Value, env)
		if err != nil {
			return completion{}, err
		}
		return completion{sig: sigReturn, value: v}, nil
	case *parser.FunctionDeclaration:
		fn := &objects.Function{Name: s.Name, Parameters: s.Parameters, Body: s.Body, Env: env}
		if !env.DeclareHere(s.Name, fn, false) {
			return completion{}, nameErr(s, "%q is already declared in this scope", s.Name)
		}
		return normalCompletion, nil
	default:
		return completion{}, typeErr(stmt, "cannot execute unknown statement type")
	}
}

func (it *Interp) execVarDeclaration(s *parser.VarDeclaration, env *scope.Scope) (completion, error) {
	var value objects.Value = &objects.Undefined{}
	if s.Value != nil {
		v, err := it.evalExpression(s.Value, env)
		if err != nil {
			return completion{}, err
		}
		value = v
	}

	switch s.Kind {
	case parser.DeclVar:
		if !env.DeclareVar(s.Name, value) {
			return completion{}, nameErr(s, "%q is already declared in this scope", s.Name)
		}
	default: // DeclConst, DeclLet are both block-scoped
		if !env.DeclareHere(s.Name, value, s.Kind == parser.DeclConst) {
			return completion{}, nameErr(s, "%q is already declared in this scope", s.Name)
		}
	}
	return normalCompletion, nil
}

// execBlock runs a block's statements in blockEnv, stopping at the first
// non-normal completion or error.
func (it *Interp) execBlock(b *parser.BlockStatement, blockEnv *scope.Scope) (completion, error) {
	for _, stmt := range b.Statements {
		c, err := it.execStatement(stmt, blockEnv)
		if err != nil {
			return completion{}, err
		}
		if c.sig != sigNormal {
			return c, nil
		}
	}
	return normalCompletion, nil
}

func (it *Interp) execIf(s *parser.IfStatement, env *scope.Scope) (completion, error) {
	cond, err := it.evalExpression(s.Condition, env)
	if err != nil {
		return completion{}, err
	}
	if objects.Truthy(cond) {
		return it.execBlock(s.Consequence, scope.New(env))
	}
	for _, branch := range s.ElseBranches {
		bc, err := it.evalExpression(branch.Condition, env)
		if err != nil {
			return completion{}, err
		}
		if objects.Truthy(bc) {
			return it.execBlock(branch.Body, scope.New(env))
		}
	}
	if s.Alternative != nil {
		return it.execBlock(s.Alternative, scope.New(env))
	}
	return normalCompletion, nil
}
