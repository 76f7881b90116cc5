package lexer

import "testing"

func TestNextTokenBasics(t *testing.T) {
	input := `catlt five = 5;
catst PI = 3.14;
cat add(x, y) { return x + y; }
purr("hi", five != 10);
fur (catlt i = 0; i <= 5; i++) {}
[1, 2] {a: 1}`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{CATLT, "catlt"},
		{IDENT, "five"},
		{ASSIGN, "="},
		{NUMBER, "5"},
		{SEMICOLON, ";"},
		{CATST, "catst"},
		{IDENT, "PI"},
		{ASSIGN, "="},
		{NUMBER, "3.14"},
		{SEMICOLON, ";"},
		{CAT, "cat"},
		{IDENT, "add"},
		{LPAREN, "("},
		{IDENT, "x"},
		{COMMA, ","},
		{IDENT, "y"},
		{RPAREN, ")"},
		{LBRACE, "{"},
		{RETURN, "return"},
		{IDENT, "x"},
		{PLUS, "+"},
		{IDENT, "y"},
		{SEMICOLON, ";"},
		{RBRACE, "}"},
		{IDENT, "purr"},
		{LPAREN, "("},
		{STRING, "hi"},
		{COMMA, ","},
		{IDENT, "five"},
		{NEQ, "!="},
		{NUMBER, "10"},
		{RPAREN, ")"},
		{SEMICOLON, ";"},
		{FUR, "fur"},
		{LPAREN, "("},
		{CATLT, "catlt"},
		{IDENT, "i"},
		{ASSIGN, "="},
		{NUMBER, "0"},
		{SEMICOLON, ";"},
		{IDENT, "i"},
		{LTE, "<="},
		{NUMBER, "5"},
		{SEMICOLON, ";"},
		{IDENT, "i"},
		{INC, "++"},
		{RPAREN, ")"},
		{LBRACE, "{"},
		{RBRACE, "}"},
		{LBRACKET, "["},
		{NUMBER, "1"},
		{COMMA, ","},
		{NUMBER, "2"},
		{RBRACKET, "]"},
		{LBRACE, "{"},
		{IDENT, "a"},
		{COLON, ":"},
		{NUMBER, "1"},
		{RBRACE, "}"},
		{EOF, ""},
	}

	l := New(input)
	for i, want := range tests {
		got := l.NextToken()
		if got.Type != want.expectedType {
			t.Fatalf("tests[%d] - wrong type. want=%q got=%q (literal %q)", i, want.expectedType, got.Type, got.Literal)
		}
		if got.Literal != want.expectedLiteral {
			t.Fatalf("tests[%d] - wrong literal. want=%q got=%q", i, want.expectedLiteral, got.Literal)
		}
	}
}

func TestMeowKeywordsAndCompoundAssign(t *testing.T) {
	input := `meow? (x) { } meowse? (y) { } hiss { } x += 1; x -= 1; x *= 2; x /= 2; x %= 2;`
	l := New(input)
	want := []TokenType{
		MEOWQ, LPAREN, IDENT, RPAREN, LBRACE, RBRACE,
		MEOWSEQ, LPAREN, IDENT, RPAREN, LBRACE, RBRACE,
		HISS, LBRACE, RBRACE,
		IDENT, PLUSEQ, NUMBER, SEMICOLON,
		IDENT, MINUSEQ, NUMBER, SEMICOLON,
		IDENT, STAREQ, NUMBER, SEMICOLON,
		IDENT, SLASHEQ, NUMBER, SEMICOLON,
		IDENT, PERCENTEQ, NUMBER, SEMICOLON,
		EOF,
	}
	for i, tt := range want {
		tok := l.NextToken()
		if tok.Type != tt {
			t.Fatalf("token %d: want %q got %q (%q)", i, tt, tok.Type, tok.Literal)
		}
	}
}

func TestStringEscapes(t *testing.T) {
	l := New(`"line1\nline2\tend\"quote\""`)
	tok := l.NextToken()
	if tok.Type != STRING {
		t.Fatalf("want STRING got %q", tok.Type)
	}
	want := "line1\nline2\tend\"quote\""
	if tok.Literal != want {
		t.Fatalf("want %q got %q", want, tok.Literal)
	}
}

func TestUnterminatedStringIsLexError(t *testing.T) {
	l := New(`"unterminated`)
	l.NextToken()
	if l.Err() == nil {
		t.Fatal("expected a lex error for an unterminated string")
	}
}

func TestIllegalCharacter(t *testing.T) {
	l := New(`@`)
	tok := l.NextToken()
	if tok.Type != ILLEGAL {
		t.Fatalf("want ILLEGAL got %q", tok.Type)
	}
	if l.Err() == nil {
		t.Fatal("expected a lex error for an illegal character")
	}
}

func TestCommentsAreSkipped(t *testing.T) {
	l := New("catv x = 1; // trailing comment\ncatv y = 2;")
	var types []TokenType
	for {
		tok := l.NextToken()
		types = append(types, tok.Type)
		if tok.Type == EOF {
			break
		}
	}
	want := []TokenType{CATV, IDENT, ASSIGN, NUMBER, SEMICOLON, CATV, IDENT, ASSIGN, NUMBER, SEMICOLON, EOF}
	if len(types) != len(want) {
		t.Fatalf("want %d tokens got %d: %v", len(want), len(types), types)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("token %d: want %q got %q", i, want[i], types[i])
		}
	}
}
