package parser

import (
	"math"
	"strconv"

	"github.com/mewisme/mew/lexer"
)

// parseExpression is the Pratt-parsing core: parse one prefix expression,
// then keep folding in infix/postfix operators whose precedence exceeds
// the caller's floor, climbing the precedence table as it goes.
func (p *Parser) parseExpression(precedence int) Expression {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.errorf(p.curToken, "no prefix parse function for %s found", p.curToken.Type)
		return nil
	}
	left := prefix()

	for !p.peekIs(lexer.SEMICOLON) && precedence < p.peekPrecedence() && !p.failing() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
	}
	return left
}

func (p *Parser) parseNumberLiteral() Expression {
	tok := p.curToken
	v, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		p.errorf(tok, "could not parse %q as a number", tok.Literal)
		return nil
	}
	return &NumberLiteral{Token: tok, Value: v}
}

func (p *Parser) parseNanLiteral() Expression {
	return &NumberLiteral{Token: p.curToken, Value: math.NaN()}
}

func (p *Parser) parseInfinityLiteral() Expression {
	return &NumberLiteral{Token: p.curToken, Value: math.Inf(1)}
}

func (p *Parser) parseStringLiteral() Expression {
	return &StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseBoolLiteral() Expression {
	return &BoolLiteral{Token: p.curToken, Value: p.curToken.Type == lexer.TRUE}
}

func (p *Parser) parseNullLiteral() Expression { return &NullLiteral{Token: p.curToken} }

func (p *Parser) parseUndefinedLiteral() Expression { return &UndefinedLiteral{Token: p.curToken} }

func (p *Parser) parseIdentifier() Expression {
	return &Identifier{Token: p.curToken, Name: p.curToken.Literal}
}

func (p *Parser) parseGroupedExpression() Expression {
	p.nextToken()
	exp := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	return exp
}

func (p *Parser) parsePrefixExpression() Expression {
	tok := p.curToken
	op := tok.Literal
	p.nextToken()
	operand := p.parseExpression(PREFIX)
	return &UnaryExpression{Token: tok, Operator: op, Operand: operand}
}

func (p *Parser) parsePostfixExpression(left Expression) Expression {
	return &PostfixExpression{Token: p.curToken, Operator: p.curToken.Literal, Operand: left}
}

func (p *Parser) parseBinaryExpression(left Expression) Expression {
	tok := p.curToken
	op := tok.Literal
	precedence := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(precedence)
	return &BinaryExpression{Token: tok, Operator: op, Left: left, Right: right}
}

// parseTernaryExpression is right-associative: cond ? a : (b ? c : d).
func (p *Parser) parseTernaryExpression(cond Expression) Expression {
	tok := p.curToken
	p.nextToken()
	consequence := p.parseExpression(ASSIGNMENT)
	if !p.expectPeek(lexer.COLON) {
		return nil
	}
	p.nextToken()
	alternative := p.parseExpression(TERNARY - 1)
	return &TernaryExpression{Token: tok, Condition: cond, Consequence: consequence, Alternative: alternative}
}

// parseAssignmentExpression is right-associative: legal lvalue checking
// is deferred to evaluation time, per the specification.
func (p *Parser) parseAssignmentExpression(target Expression) Expression {
	tok := p.curToken
	op := assignmentOps[tok.Type]
	p.nextToken()
	value := p.parseExpression(ASSIGNMENT - 1)
	return &AssignmentExpression{Token: tok, Operator: op, Target: target, Value: value}
}

func (p *Parser) parseCallExpression(callee Expression) Expression {
	tok := p.curToken
	args := p.parseExpressionList(lexer.RPAREN)
	return &CallExpression{Token: tok, Callee: callee, Arguments: args}
}

func (p *Parser) parseExpressionList(end lexer.TokenType) []Expression {
	var list []Expression
	if p.peekIs(end) {
		p.nextToken()
		return list
	}
	p.nextToken()
	list = append(list, p.parseExpression(LOWEST))
	for p.peekIs(lexer.COMMA) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(LOWEST))
	}
	if !p.expectPeek(end) {
		return nil
	}
	return list
}

func (p *Parser) parseIndexExpression(left Expression) Expression {
	tok := p.curToken
	p.nextToken()
	idx := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RBRACKET) {
		return nil
	}
	return &IndexExpression{Token: tok, Left: left, Index: idx}
}

func (p *Parser) parseMemberExpression(left Expression) Expression {
	tok := p.curToken
	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	return &MemberExpression{Token: tok, Object: left, Property: p.curToken.Literal}
}

func (p *Parser) parseArrayLiteral() Expression {
	tok := p.curToken
	elements := p.parseExpressionList(lexer.RBRACKET)
	return &ArrayLiteral{Token: tok, Elements: elements}
}

// parseObjectLiteral parses { key: value, ... } where a key is either a
// bare identifier or a string literal.
func (p *Parser) parseObjectLiteral() Expression {
	tok := p.curToken
	lit := &ObjectLiteral{Token: tok}

	for !p.peekIs(lexer.RBRACE) {
		p.nextToken()

		var key string
		switch p.curToken.Type {
		case lexer.IDENT:
			key = p.curToken.Literal
		case lexer.STRING:
			key = p.curToken.Literal
		default:
			p.errorf(p.curToken, "expected object key (identifier or string), got %s", p.curToken.Type)
			return nil
		}

		if !p.expectPeek(lexer.COLON) {
			return nil
		}
		p.nextToken()
		value := p.parseExpression(LOWEST)
		lit.Properties = append(lit.Properties, ObjectProperty{Key: key, Value: value})

		if p.peekIs(lexer.COMMA) {
			p.nextToken()
		} else {
			break
		}
	}

	if !p.expectPeek(lexer.RBRACE) {
		return nil
	}
	return lit
}

// parseFunctionExpression handles the 'cat' keyword in expression
// position. Per the specification, a function expression never carries a
// name: if an identifier follows 'cat' this is a declaration, which the
// statement-level dispatcher (parseStatement) routes to
// parseFunctionDeclaration instead of ever reaching here.
func (p *Parser) parseFunctionExpression() Expression {
	tok := p.curToken
	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	params := p.parseFunctionParameters()
	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	body := p.parseBlockStatement()
	return &FunctionLiteral{Token: tok, Parameters: params, Body: body}
}

func (p *Parser) parseFunctionParameters() []*Identifier {
	var params []*Identifier
	if p.peekIs(lexer.RPAREN) {
		p.nextToken()
		return params
	}
	p.nextToken()
	params = append(params, &Identifier{Token: p.curToken, Name: p.curToken.Literal})
	for p.peekIs(lexer.COMMA) {
		p.nextToken()
		p.nextToken()
		params = append(params, &Identifier{Token: p.curToken, Name: p.curToken.Literal})
	}
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	return params
}
