package parser

import "github.com/mewisme/mew/lexer"

// parseSwitchStatement parses catwalk(expr) { (claw v: stmts... clawt;)*
// (default: stmts...)? }. clawt terminates a case explicitly; a case
// without clawt falls through into the next one, so Terminated is
// recorded per case rather than assumed.
func (p *Parser) parseSwitchStatement() Statement {
	tok := p.curToken
	stmt := &SwitchStatement{Token: tok, DefaultIdx: -1}

	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Discriminant = p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}

	for p.peekIs(lexer.CLAW) || p.peekIs(lexer.DEFAULT) {
		p.nextToken()
		isDefault := p.curIs(lexer.DEFAULT)

		var value Expression
		if isDefault {
			if !p.expectPeek(lexer.COLON) {
				return nil
			}
		} else {
			p.nextToken()
			value = p.parseExpression(LOWEST)
			if !p.expectPeek(lexer.COLON) {
				return nil
			}
		}

		c := SwitchCase{Value: value}
		for !p.peekIs(lexer.CLAW) && !p.peekIs(lexer.CLAWT) && !p.peekIs(lexer.DEFAULT) &&
			!p.peekIs(lexer.RBRACE) && !p.peekIs(lexer.EOF) && !p.failing() {
			p.nextToken()
			if s := p.parseStatement(); s != nil {
				c.Statements = append(c.Statements, s)
			}
			if p.failing() {
				return nil
			}
		}
		if p.peekIs(lexer.CLAWT) {
			p.nextToken()
			if !p.expectPeek(lexer.SEMICOLON) {
				return nil
			}
			c.Terminated = true
		}

		if isDefault {
			stmt.DefaultIdx = len(stmt.Cases)
		}
		stmt.Cases = append(stmt.Cases, c)
	}

	if !p.expectPeek(lexer.RBRACE) {
		return nil
	}
	return stmt
}
