package compiler

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	// Literals
	STRING  TokenType = iota // "..." or '...'
	INTEGER                  // 32-bit signed decimal
	FLOAT                    // 32-bit float
	BOOLEAN                  // true / false

	// Structural
	SEMICOLON // ;
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	LCURLY    // reserved, never produced by the lexer
	RCURLY    // reserved, never produced by the lexer

	// Names
	IDENTIFIER
	KEYWORD
	FUNCTION // call-like name containing '!', e.g. println!

	UNKNOWN
)

var tokenNames = [...]string{
	STRING:     "STRING",
	INTEGER:    "INTEGER",
	FLOAT:      "FLOAT",
	BOOLEAN:    "BOOLEAN",
	SEMICOLON:  "SEMICOLON",
	LPAREN:     "LPAREN",
	RPAREN:     "RPAREN",
	LBRACE:     "LBRACE",
	RBRACE:     "RBRACE",
	LCURLY:     "LCURLY",
	RCURLY:     "RCURLY",
	IDENTIFIER: "IDENTIFIER",
	KEYWORD:    "KEYWORD",
	FUNCTION:   "FUNCTION",
	UNKNOWN:    "UNKNOWN",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// structural reports whether tokens of this type carry no payload.
func (tt TokenType) structural() bool {
	switch tt {
	case SEMICOLON, LPAREN, RPAREN, LBRACE, RBRACE, LCURLY, RCURLY, UNKNOWN:
		return true
	}
	return false
}

// Value is the payload of a Token. The concrete type is fixed by the token's
// TokenType; see Token.Valid.
type Value interface {
	isValue()
}

type (
	StrValue     string
	IntValue     int32
	FloatValue   float32
	BoolValue    bool
	IdentValue   string
	KeywordValue string
	NoValue      struct{}
)

func (StrValue) isValue()     {}
func (IntValue) isValue()     {}
func (FloatValue) isValue()   {}
func (BoolValue) isValue()    {}
func (IdentValue) isValue()   {}
func (KeywordValue) isValue() {}
func (NoValue) isValue()      {}

// Token is a single lexical unit produced by Tokenize. Tokens are immutable;
// build them with the constructors below so the payload always matches the type.
type Token struct {
	typ TokenType
	val Value
}

func StringToken(s string) Token        { return Token{STRING, StrValue(s)} }
func IntegerToken(n int32) Token        { return Token{INTEGER, IntValue(n)} }
func FloatToken(f float32) Token        { return Token{FLOAT, FloatValue(f)} }
func BooleanToken(b bool) Token         { return Token{BOOLEAN, BoolValue(b)} }
func IdentifierToken(name string) Token { return Token{IDENTIFIER, IdentValue(name)} }
func KeywordToken(kw string) Token      { return Token{KEYWORD, KeywordValue(kw)} }
func FunctionToken(name string) Token   { return Token{FUNCTION, IdentValue(name)} }

// Structural returns a payload-free token of type tt. It panics if tt is a
// type that requires a payload.
func Structural(tt TokenType) Token {
	if !tt.structural() {
		panic(fmt.Sprintf("compiler: %v tokens carry a payload", tt))
	}
	return Token{tt, NoValue{}}
}

func (t Token) Type() TokenType { return t.typ }
func (t Token) Value() Value     { return t.val }

// Text returns the textual payload of STRING, IDENTIFIER, FUNCTION and KEYWORD
// tokens. ok is false for every other payload.
func (t Token) Text() (text string, ok bool) {
	switch v := t.val.(type) {
	case StrValue:
		return string(v), true
	case IdentValue:
		return string(v), true
	case KeywordValue:
		return string(v), true
	}
	return "", false
}

// Valid reports whether the payload type is the one required by the token type.
func (t Token) Valid() bool {
	switch t.val.(type) {
	case StrValue:
		return t.typ == STRING
	case IntValue:
		return t.typ == INTEGER
	case FloatValue:
		return t.typ == FLOAT
	case BoolValue:
		return t.typ == BOOLEAN
	case IdentValue:
		return t.typ == IDENTIFIER || t.typ == FUNCTION
	case KeywordValue:
		return t.typ == KEYWORD
	case NoValue:
		return t.typ.structural()
	}
	return false
}

func (t Token) String() string {
	switch v := t.val.(type) {
	case StrValue:
		return fmt.Sprintf("%-10s %q", t.typ, string(v))
	case IntValue:
		return fmt.Sprintf("%-10s %d", t.typ, int32(v))
	case FloatValue:
		return fmt.Sprintf("%-10s %g", t.typ, float32(v))
	case BoolValue:
		return fmt.Sprintf("%-10s %t", t.typ, bool(v))
	case IdentValue:
		return fmt.Sprintf("%-10s %s", t.typ, string(v))
	case KeywordValue:
		return fmt.Sprintf("%-10s %s", t.typ, string(v))
	}
	return t.typ.String()
}
