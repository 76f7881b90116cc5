package parser

import "github.com/mewisme/mew/lexer"

// parseStatement dispatches on the current token to the right statement
// parser. The function keyword is the one ambiguous case: "cat name(...)"
// is a declaration, but "cat(...)" in statement position is an expression
// statement (a function literal, immediately called or otherwise used),
// so it falls through to parseExpressionStatement where the cat prefix
// parselet picks it up as a FunctionLiteral.
func (p *Parser) parseStatement() Statement {
	switch p.curToken.Type {
	case lexer.CATST, lexer.CATLT, lexer.CATV:
		return p.parseVarDeclaration()
	case lexer.LBRACE:
		// "{ key: ..." can only be an object literal: no statement starts
		// with an identifier or string followed by a colon.
		if (p.peekIs(lexer.IDENT) || p.peekIs(lexer.STRING)) && p.peekAt(2).Type == lexer.COLON {
			return p.parseExpressionStatement()
		}
		return p.parseBlockStatement()
	case lexer.MEOWQ:
		return p.parseIfStatement()
	case lexer.MEWHILE:
		return p.parseWhileStatement()
	case lexer.DOMEOW:
		return p.parseDoWhileStatement()
	case lexer.FUR:
		return p.parseForStatement()
	case lexer.CATWALK:
		return p.parseSwitchStatement()
	case lexer.BREAK:
		return p.parseBreakStatement()
	case lexer.CONTINUE:
		return p.parseContinueStatement()
	case lexer.RETURN:
		return p.parseReturnStatement()
	case lexer.CAT:
		if p.peekIs(lexer.IDENT) {
			return p.parseFunctionDeclaration()
		}
		return p.parseExpressionStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseExpressionStatement() Statement {
	tok := p.curToken
	expr := p.parseExpression(LOWEST)
	if p.failing() {
		return nil
	}
	if !p.expectPeek(lexer.SEMICOLON) {
		return nil
	}
	return &ExpressionStatement{Token: tok, Expression: expr}
}

func declKindOf(t lexer.TokenType) DeclKind {
	switch t {
	case lexer.CATST:
		return DeclConst
	case lexer.CATLT:
		return DeclLet
	default:
		return DeclVar
	}
}

// parseVarDeclaration parses catst/catlt/catv name [= expr];. A constant
// without an initializer is a parse error: its initializer is mandatory.
func (p *Parser) parseVarDeclaration() Statement {
	tok := p.curToken
	kind := declKindOf(tok.Type)

	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	name := p.curToken.Literal

	decl := &VarDeclaration{Token: tok, Kind: kind, Name: name}

	if p.peekIs(lexer.ASSIGN) {
		p.nextToken()
		p.nextToken()
		decl.Value = p.parseExpression(LOWEST)
	} else if kind == DeclConst {
		p.errorf(p.peekToken, "constant %q requires an initializer", name)
		return nil
	}

	if !p.expectPeek(lexer.SEMICOLON) {
		return nil
	}
	return decl
}

func (p *Parser) parseBlockStatement() *BlockStatement {
	block := &BlockStatement{Token: p.curToken}
	p.nextToken()
	for !p.curIs(lexer.RBRACE) && !p.curIs(lexer.EOF) && !p.failing() {
		stmt := p.parseStatement()
		if p.failing() {
			return block
		}
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}
	if !p.curIs(lexer.RBRACE) {
		p.errorf(p.curToken, "expected } to close block, got %s instead", p.curToken.Type)
	}
	return block
}

func (p *Parser) parseBreakStatement() Statement {
	tok := p.curToken
	if !p.expectPeek(lexer.SEMICOLON) {
		return nil
	}
	return &BreakStatement{Token: tok}
}

func (p *Parser) parseContinueStatement() Statement {
	tok := p.curToken
	if !p.expectPeek(lexer.SEMICOLON) {
		return nil
	}
	return &ContinueStatement{Token: tok}
}

func (p *Parser) parseReturnStatement() Statement {
	tok := p.curToken
	stmt := &ReturnStatement{Token: tok}
	if p.peekIs(lexer.SEMICOLON) {
		p.nextToken()
		return stmt
	}
	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.SEMICOLON) {
		return nil
	}
	return stmt
}

// parseFunctionDeclaration handles "cat name(params) { body }" — no
// trailing semicolon, unlike a function expression assigned to a
// variable.
func (p *Parser) parseFunctionDeclaration() Statement {
	tok := p.curToken
	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	name := p.curToken.Literal
	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	params := p.parseFunctionParameters()
	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	body := p.parseBlockStatement()
	return &FunctionDeclaration{Token: tok, Name: name, Parameters: params, Body: body}
}
