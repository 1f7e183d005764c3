package compiler

import (
	"strings"
	"testing"
)

// assertContains checks if the generated code contains the expected substring.
func assertContains(t *testing.T, code, expected string) {
	t.Helper()
	if !strings.Contains(code, expected) {
		t.Errorf("Expected code to contain %q, but it didn't.\nCode:\n%s", expected, code)
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name   string
		tokens []Token
		want   string
	}{
		{
			name:   "Empty",
			tokens: nil,
			want:   "main()",
		},
		{
			name:   "fn keyword",
			tokens: []Token{KeywordToken("fn")},
			want:   "function main()",
		},
		{
			name: "Other keywords are dropped",
			tokens: []Token{
				KeywordToken("let"),
				KeywordToken("if"),
				KeywordToken("else"),
			},
			want: "main()",
		},
		{
			name:   "Identifier",
			tokens: []Token{IdentifierToken("x")},
			want:   "x main()",
		},
		{
			name:   "String",
			tokens: []Token{StringToken("abc")},
			want:   `"abc"main()`,
		},
		{
			name:   "Braces",
			tokens: []Token{Structural(LBRACE), Structural(RBRACE)},
			want:   "{\n\n}\nmain()",
		},
		{
			name:   "Plain parens",
			tokens: []Token{Structural(LPAREN), Structural(RPAREN)},
			want:   "() main()",
		},
		{
			name: "println call",
			tokens: []Token{
				FunctionToken("println!"),
				Structural(LPAREN),
				StringToken("hi"),
				Structural(RPAREN),
				Structural(SEMICOLON),
			},
			want: "print(\"hi\");\nmain()",
		},
		{
			name: "Unknown call keeps only its arguments",
			tokens: []Token{
				FunctionToken("dbg!"),
				Structural(LPAREN),
				IdentifierToken("x"),
				Structural(RPAREN),
			},
			want: "(x )main()",
		},
		{
			name: "Semicolon before closing brace",
			tokens: []Token{
				Structural(LBRACE),
				IdentifierToken("x"),
				Structural(SEMICOLON),
				Structural(RBRACE),
			},
			want: "{\nx ;\n}\nmain()",
		},
		{
			name:   "Trailing semicolon",
			tokens: []Token{IdentifierToken("x"), Structural(SEMICOLON)},
			want:   "x ;\nmain()",
		},
		{
			name: "Literals without a rendering",
			tokens: []Token{
				IntegerToken(1),
				FloatToken(2.5),
				BooleanToken(true),
				Structural(UNKNOWN),
				Structural(LCURLY),
				Structural(RCURLY),
			},
			want: "main()",
		},
		{
			name: "Nested call closes on first paren",
			tokens: []Token{
				FunctionToken("println!"),
				Structural(LPAREN),
				FunctionToken("f!"),
				Structural(LPAREN),
				Structural(RPAREN),
				Structural(RPAREN),
			},
			want: "print(()) main()",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Translate(tt.tokens); got != tt.want {
				t.Errorf("Translate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTranslateEndsWithEntryCall(t *testing.T) {
	code := Translate(Tokenize(sampleSource))
	if !strings.HasSuffix(code, "main()") {
		t.Errorf("expected output to end with main(), got:\n%s", code)
	}
	assertContains(t, code, `print("x is greater than 5");`)
	assertContains(t, code, `print("x is less than or equal to 5");`)
}

func TestTranslateDoesNotMutateInput(t *testing.T) {
	tokens := []Token{FunctionToken("println!"), Structural(LPAREN), StringToken("a"), Structural(RPAREN)}
	before := append([]Token(nil), tokens...)
	Translate(tokens)
	for i := range tokens {
		if tokens[i] != before[i] {
			t.Fatalf("token %d changed from %v to %v", i, before[i], tokens[i])
		}
	}
}
