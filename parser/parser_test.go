package parser

import (
	"testing"

	"github.com/mewisme/mew/lexer"
	"github.com/stretchr/testify/assert"
)

func parseSource(t *testing.T, src string) *Program {
	t.Helper()
	p := New(lexer.New(src))
	prog := p.ParseProgram()
	assert.Nil(t, p.Err(), "unexpected parse error: %v", p.Err())
	return prog
}

func TestParsePrecedence(t *testing.T) {
	prog := parseSource(t, "1 + 2 * 3;")
	assert.Len(t, prog.Statements, 1)
	es := prog.Statements[0].(*ExpressionStatement)
	bin := es.Expression.(*BinaryExpression)
	assert.Equal(t, "+", bin.Operator)
	right := bin.Right.(*BinaryExpression)
	assert.Equal(t, "*", right.Operator)
}

func TestParseVarDeclarationKinds(t *testing.T) {
	prog := parseSource(t, "catst a = 1; catlt b = 2; catv c;")
	assert.Len(t, prog.Statements, 3)

	a := prog.Statements[0].(*VarDeclaration)
	assert.Equal(t, DeclConst, a.Kind)
	assert.Equal(t, "a", a.Name)

	b := prog.Statements[1].(*VarDeclaration)
	assert.Equal(t, DeclLet, b.Kind)

	c := prog.Statements[2].(*VarDeclaration)
	assert.Equal(t, DeclVar, c.Kind)
	assert.Nil(t, c.Value)
}

func TestParseIfElseChain(t *testing.T) {
	prog := parseSource(t, `meow? (a) { purr(1); } meowse? (b) { purr(2); } hiss { purr(3); }`)
	stmt := prog.Statements[0].(*IfStatement)
	assert.Len(t, stmt.ElseBranches, 1)
	assert.NotNil(t, stmt.Alternative)
}

func TestParseCStyleFor(t *testing.T) {
	prog := parseSource(t, `fur (catlt i = 0; i < 5; i++) { purr(i); }`)
	stmt := prog.Statements[0].(*ForStatement)
	assert.NotNil(t, stmt.Init)
	assert.NotNil(t, stmt.Condition)
	assert.NotNil(t, stmt.Step)
}

func TestParseForIn(t *testing.T) {
	prog := parseSource(t, `fur (catlt k in obj) { purr(k); }`)
	stmt := prog.Statements[0].(*ForInStatement)
	assert.Equal(t, "k", stmt.VarName)
	assert.Equal(t, DeclLet, stmt.Kind)
}

func TestParseForOf(t *testing.T) {
	prog := parseSource(t, `fur (catv v of arr) { purr(v); }`)
	stmt := prog.Statements[0].(*ForOfStatement)
	assert.Equal(t, "v", stmt.VarName)
	assert.Equal(t, DeclVar, stmt.Kind)
}

// Distinguishing fur-in/of from a C-style fur sharing the same opening
// tokens is the one spot the parser needs lookahead beyond one token; this
// guards against regressing to the broken-rewind approach.
func TestParseForDisambiguatesFromCStyle(t *testing.T) {
	prog := parseSource(t, `fur (catlt i = 0; i < arr.length; i = i + 1) { purr(i); }`)
	_, isForStmt := prog.Statements[0].(*ForStatement)
	assert.True(t, isForStmt, "expected a C-style for, not a for-in/for-of")
}

func TestParseSwitchFallthroughAndDefault(t *testing.T) {
	prog := parseSource(t, `catwalk (x) {
		claw 1:
			purr("one");
			clawt;
		claw 2:
		claw 3:
			purr("two or three");
			clawt;
		default:
			purr("other");
	}`)
	stmt := prog.Statements[0].(*SwitchStatement)
	assert.Len(t, stmt.Cases, 4)
	assert.True(t, stmt.Cases[0].Terminated)
	assert.False(t, stmt.Cases[1].Terminated, "case with no statements falls through")
	assert.True(t, stmt.Cases[2].Terminated)
	assert.Equal(t, 3, stmt.DefaultIdx)
}

func TestParseFunctionDeclarationAndCall(t *testing.T) {
	prog := parseSource(t, `cat add(x, y) { return x + y; } add(1, 2);`)
	assert.Len(t, prog.Statements, 2)
	decl := prog.Statements[0].(*FunctionDeclaration)
	assert.Equal(t, "add", decl.Name)
	assert.Len(t, decl.Parameters, 2)

	call := prog.Statements[1].(*ExpressionStatement).Expression.(*CallExpression)
	callee := call.Callee.(*Identifier)
	assert.Equal(t, "add", callee.Name)
	assert.Len(t, call.Arguments, 2)
}

func TestParseTernaryAndAssignmentOperators(t *testing.T) {
	prog := parseSource(t, `catlt a = b ? 1 : 2; a += 1; a.x = 3; arr[0] = 4;`)
	decl := prog.Statements[0].(*VarDeclaration)
	_, isTernary := decl.Value.(*TernaryExpression)
	assert.True(t, isTernary)

	compound := prog.Statements[1].(*ExpressionStatement).Expression.(*AssignmentExpression)
	assert.Equal(t, "+=", compound.Operator)

	memberAssign := prog.Statements[2].(*ExpressionStatement).Expression.(*AssignmentExpression)
	_, isMember := memberAssign.Target.(*MemberExpression)
	assert.True(t, isMember)

	indexAssign := prog.Statements[3].(*ExpressionStatement).Expression.(*AssignmentExpression)
	_, isIndex := indexAssign.Target.(*IndexExpression)
	assert.True(t, isIndex)
}

func TestParseArrayAndObjectLiterals(t *testing.T) {
	prog := parseSource(t, `[1, 2, 3]; {a: 1, b: 2};`)
	arr := prog.Statements[0].(*ExpressionStatement).Expression.(*ArrayLiteral)
	assert.Len(t, arr.Elements, 3)

	obj := prog.Statements[1].(*ExpressionStatement).Expression.(*ObjectLiteral)
	assert.Len(t, obj.Properties, 2)
	assert.Equal(t, "a", obj.Properties[0].Key)
}

func TestParseErrorOnUnterminatedBlock(t *testing.T) {
	p := New(lexer.New(`meow? (x) { purr(1);`))
	p.ParseProgram()
	assert.NotNil(t, p.Err())
}
