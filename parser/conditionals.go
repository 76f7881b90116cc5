package parser

import "github.com/mewisme/mew/lexer"

// parseIfStatement parses meow? (cond) {...} followed by zero or more
// meowse? (cond) {...} branches and an optional trailing hiss {...}.
func (p *Parser) parseIfStatement() Statement {
	tok := p.curToken
	stmt := &IfStatement{Token: tok}

	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	stmt.Consequence = p.parseBlockStatement()

	for p.peekIs(lexer.MEOWSEQ) {
		p.nextToken()
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
		stmt.ElseBranches = append(stmt.ElseBranches, ConditionalBranch{Condition: cond, Body: body})
	}

	if p.peekIs(lexer.HISS) {
		p.nextToken()
		if !p.expectPeek(lexer.LBRACE) {
			return nil
		}
		stmt.Alternative = p.parseBlockStatement()
	}

	return stmt
}
