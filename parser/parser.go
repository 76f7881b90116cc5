package parser

import (
	"github.com/mewisme/mew/errs"
	"github.com/mewisme/mew/lexer"
)

// Parser is a recursive-descent, Pratt-precedence parser. It holds a
// two-token lookahead window (curToken, peekToken) over the lexer's token
// stream and halts at the first syntax error: there is no error recovery,
// matching the specification's halt-on-first-error contract.
type Parser struct {
	l *lexer.Lexer

	curToken  lexer.Token
	peekToken lexer.Token

	// buffered holds tokens fetched from the lexer beyond peekToken, for
	// the rare constructs (the fur-loop decl-vs-in/of disambiguation)
	// that need to look further ahead without committing to a parse path.
	// The lexer itself cannot rewind, so lookahead beyond peekToken must
	// be queued here rather than "peeked and restored".
	buffered []lexer.Token

	err *errs.Error

	prefixParseFns map[lexer.TokenType]prefixParseFn
	infixParseFns  map[lexer.TokenType]infixParseFn
}

type (
	prefixParseFn func() Expression
	infixParseFn  func(left Expression) Expression
)

// New creates a Parser over l and primes the two-token lookahead window.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = map[lexer.TokenType]prefixParseFn{
		lexer.NUMBER:    p.parseNumberLiteral,
		lexer.STRING:    p.parseStringLiteral,
		lexer.TRUE:      p.parseBoolLiteral,
		lexer.FALSE:     p.parseBoolLiteral,
		lexer.NULL:      p.parseNullLiteral,
		lexer.UNDEFINED: p.parseUndefinedLiteral,
		lexer.NAN:       p.parseNanLiteral,
		lexer.INFINITY:  p.parseInfinityLiteral,
		lexer.IDENT:     p.parseIdentifier,
		lexer.LPAREN:    p.parseGroupedExpression,
		lexer.LBRACKET:  p.parseArrayLiteral,
		lexer.LBRACE:    p.parseObjectLiteral,
		lexer.NOT:       p.parsePrefixExpression,
		lexer.MINUS:     p.parsePrefixExpression,
		lexer.INC:       p.parsePrefixExpression,
		lexer.DEC:       p.parsePrefixExpression,
		lexer.CAT:       p.parseFunctionExpression,
	}

	p.infixParseFns = map[lexer.TokenType]infixParseFn{
		lexer.PLUS:      p.parseBinaryExpression,
		lexer.MINUS:     p.parseBinaryExpression,
		lexer.STAR:      p.parseBinaryExpression,
		lexer.SLASH:     p.parseBinaryExpression,
		lexer.PERCENT:   p.parseBinaryExpression,
		lexer.EQ:        p.parseBinaryExpression,
		lexer.NEQ:       p.parseBinaryExpression,
		lexer.LT:        p.parseBinaryExpression,
		lexer.LTE:       p.parseBinaryExpression,
		lexer.GT:        p.parseBinaryExpression,
		lexer.GTE:       p.parseBinaryExpression,
		lexer.AND:       p.parseBinaryExpression,
		lexer.OR:        p.parseBinaryExpression,
		lexer.LPAREN:    p.parseCallExpression,
		lexer.LBRACKET:  p.parseIndexExpression,
		lexer.DOT:       p.parseMemberExpression,
		lexer.INC:       p.parsePostfixExpression,
		lexer.DEC:       p.parsePostfixExpression,
		lexer.QUESTION:  p.parseTernaryExpression,
		lexer.ASSIGN:    p.parseAssignmentExpression,
		lexer.PLUSEQ:    p.parseAssignmentExpression,
		lexer.MINUSEQ:   p.parseAssignmentExpression,
		lexer.STAREQ:    p.parseAssignmentExpression,
		lexer.SLASHEQ:   p.parseAssignmentExpression,
		lexer.PERCENTEQ: p.parseAssignmentExpression,
	}

	p.nextToken()
	p.nextToken()
	return p
}

// Err returns the first parse (or lexical) error encountered, or nil.
func (p *Parser) Err() *errs.Error {
	if p.err != nil {
		return p.err
	}
	return p.l.Err()
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	if len(p.buffered) > 0 {
		p.peekToken = p.buffered[0]
		p.buffered = p.buffered[1:]
	} else {
		p.peekToken = p.l.NextToken()
	}
}

// peekAt returns the token n positions ahead of curToken without consuming
// anything: peekAt(0) is curToken, peekAt(1) is peekToken, and peekAt(n)
// for n>=2 pulls and queues additional tokens from the lexer as needed.
// Used by constructs that must look further than one token ahead to
// decide which grammar production applies.
func (p *Parser) peekAt(n int) lexer.Token {
	if n == 0 {
		return p.curToken
	}
	if n == 1 {
		return p.peekToken
	}
	need := n - 1
	for len(p.buffered) < need {
		p.buffered = append(p.buffered, p.l.NextToken())
	}
	return p.buffered[need-1]
}

func (p *Parser) curIs(t lexer.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekIs(t lexer.TokenType) bool { return p.peekToken.Type == t }

// expectPeek advances past peekToken if it has type t, recording a parse
// error otherwise. This is the single chokepoint for "expected X" errors.
func (p *Parser) expectPeek(t lexer.TokenType) bool {
	if p.peekIs(t) {
		p.nextToken()
		return true
	}
	p.errorf(p.peekToken, "expected next token to be %s, got %s instead", t, p.peekToken.Type)
	return false
}

func (p *Parser) errorf(tok lexer.Token, format string, args ...any) {
	if p.err != nil {
		return
	}
	p.err = errs.New(errs.ParseError, errs.Position{Line: tok.Line, Column: tok.Column}, format, args...)
}

func (p *Parser) failing() bool {
	return p.err != nil || p.l.Err() != nil
}

// ParseProgram parses the full token stream into an ordered list of
// top-level statements, stopping at the first error.
func (p *Parser) ParseProgram() *Program {
	program := &Program{}
	for !p.curIs(lexer.EOF) && !p.failing() {
		stmt := p.parseStatement()
		if p.failing() {
			break
		}
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}
	return program
}
