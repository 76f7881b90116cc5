package parser

import "github.com/mewisme/mew/lexer"

// Precedence levels from lowest to highest binding power, matching the
// table in the language specification. Assignment and the ternary are
// parsed right-associatively; everything else below postfix/call/member
// is left-associative.
const (
	LOWEST = iota
	ASSIGNMENT
	TERNARY
	LOGICAL_OR
	LOGICAL_AND
	EQUALITY
	RELATIONAL
	ADDITIVE
	MULTIPLICATIVE
	PREFIX
	POSTFIX // postfix ++/--, call (), member ., index []
)

var precedences = map[lexer.TokenType]int{
	lexer.ASSIGN:    ASSIGNMENT,
	lexer.PLUSEQ:    ASSIGNMENT,
	lexer.MINUSEQ:   ASSIGNMENT,
	lexer.STAREQ:    ASSIGNMENT,
	lexer.SLASHEQ:   ASSIGNMENT,
	lexer.PERCENTEQ: ASSIGNMENT,
	lexer.QUESTION:  TERNARY,
	lexer.OR:        LOGICAL_OR,
	lexer.AND:       LOGICAL_AND,
	lexer.EQ:        EQUALITY,
	lexer.NEQ:       EQUALITY,
	lexer.LT:        RELATIONAL,
	lexer.LTE:       RELATIONAL,
	lexer.GT:        RELATIONAL,
	lexer.GTE:       RELATIONAL,
	lexer.PLUS:      ADDITIVE,
	lexer.MINUS:     ADDITIVE,
	lexer.STAR:      MULTIPLICATIVE,
	lexer.SLASH:     MULTIPLICATIVE,
	lexer.PERCENT:   MULTIPLICATIVE,
	lexer.LPAREN:    POSTFIX,
	lexer.LBRACKET:  POSTFIX,
	lexer.DOT:       POSTFIX,
	lexer.INC:       POSTFIX,
	lexer.DEC:       POSTFIX,
}

// assignmentOps is the set of tokens that introduce an assignment
// expression, mapped to the AST's textual operator form.
var assignmentOps = map[lexer.TokenType]string{
	lexer.ASSIGN:    "=",
	lexer.PLUSEQ:    "+=",
	lexer.MINUSEQ:   "-=",
	lexer.STAREQ:    "*=",
	lexer.SLASHEQ:   "/=",
	lexer.PERCENTEQ: "%=",
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.curToken.Type]; ok {
		return pr
	}
	return LOWEST
}
