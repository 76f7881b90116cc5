package parser

import "github.com/mewisme/mew/lexer"

func (p *Parser) parseWhileStatement() Statement {
	tok := p.curToken
	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	body := p.parseBlockStatement()
	return &WhileStatement{Token: tok, Condition: cond, Body: body}
}

// parseDoWhileStatement parses domeow { body } mewhile (cond);
func (p *Parser) parseDoWhileStatement() Statement {
	tok := p.curToken
	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	body := p.parseBlockStatement()
	if !p.expectPeek(lexer.MEWHILE) {
		return nil
	}
	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	if !p.expectPeek(lexer.SEMICOLON) {
		return nil
	}
	return &DoWhileStatement{Token: tok, Body: body, Condition: cond}
}

// parseForStatement parses all three fur forms: the C-style
// fur (init; cond; step), and fur (decl in expr) / fur (decl of expr).
// The declaration keyword is mandatory for the in/of forms, so the
// decision point is whichever token follows the declared name. The lexer
// has no rewind, so the lookahead here is pure (peekAt never consumes) —
// nothing commits until the form is known.
func (p *Parser) parseForStatement() Statement {
	tok := p.curToken
	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}

	// curToken == LPAREN here. peekAt(1) is the token right after it.
	if isDeclToken(p.peekAt(1).Type) && p.peekAt(2).Type == lexer.IDENT {
		connector := p.peekAt(3).Type
		if connector == lexer.IN || connector == lexer.OF {
			kind := declKindOf(p.peekAt(1).Type)
			p.nextToken() // cur = decl keyword
			p.nextToken() // cur = name
			name := p.curToken.Literal
			isOf := connector == lexer.OF
			p.nextToken() // cur = in/of
			p.nextToken() // cur = first token of iterable
			iterable := p.parseExpression(LOWEST)
			if !p.expectPeek(lexer.RPAREN) {
				return nil
			}
			if !p.expectPeek(lexer.LBRACE) {
				return nil
			}
			body := p.parseBlockStatement()
			if isOf {
				return &ForOfStatement{Token: tok, Kind: kind, VarName: name, Iterable: iterable, Body: body}
			}
			return &ForInStatement{Token: tok, Kind: kind, VarName: name, Iterable: iterable, Body: body}
		}
	}

	return p.parseCStyleFor(tok)
}

func isDeclToken(t lexer.TokenType) bool {
	return t == lexer.CATST || t == lexer.CATLT || t == lexer.CATV
}

func (p *Parser) parseCStyleFor(tok lexer.Token) Statement {
	stmt := &ForStatement{Token: tok}

	p.nextToken() // move onto whatever starts the init clause (or ';')
	if p.curIs(lexer.SEMICOLON) {
		stmt.Init = nil
	} else if isDeclToken(p.curToken.Type) {
		stmt.Init = p.parseVarDeclaration() // consumes trailing ';'
	} else {
		exprTok := p.curToken
		expr := p.parseExpression(LOWEST)
		if !p.expectPeek(lexer.SEMICOLON) {
			return nil
		}
		stmt.Init = &ExpressionStatement{Token: exprTok, Expression: expr}
	}

	if p.peekIs(lexer.SEMICOLON) {
		p.nextToken()
	} else {
		p.nextToken()
		stmt.Condition = p.parseExpression(LOWEST)
		if !p.expectPeek(lexer.SEMICOLON) {
			return nil
		}
	}

	if p.peekIs(lexer.RPAREN) {
		p.nextToken()
	} else {
		p.nextToken()
		stmt.Step = p.parseExpression(LOWEST)
		if !p.expectPeek(lexer.RPAREN) {
			return nil
		}
	}

	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	stmt.Body = p.parseBlockStatement()
	return stmt
}
