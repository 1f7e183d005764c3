package compiler

import (
	"errors"
	"strconv"
	"strings"
)

// keywords is the fixed keyword set. true and false are intercepted as
// BOOLEAN before this lookup.
var keywords = map[string]bool{
	"if":    true,
	"fn":    true,
	"let":   true,
	"else":  true,
	"true":  true,
	"false": true,
}

// scanState is the lexer's position relative to string literals.
type scanState int

const (
	stateNormal scanState = iota
	stateInString
)

func (s scanState) String() string {
	if s == stateInString {
		return "InString"
	}
	return "Normal"
}

// Lexer holds all mutable state for a single scanning pass over src.
type Lexer struct {
	src    []rune
	pos    int // index of the next rune to consume
	state  scanState
	buf    strings.Builder // pending, not yet classified text
	tokens []Token
}

func newLexer(src string) *Lexer {
	return &Lexer{src: []rune(src)}
}

// advance consumes one rune and returns it.
func (l *Lexer) advance() rune {
	r := l.src[l.pos]
	l.pos++
	return r
}

func (l *Lexer) emit(tok Token) {
	l.tokens = append(l.tokens, tok)
}

// flush classifies the pending buffer into a token and resets it.
// An empty buffer produces nothing.
func (l *Lexer) flush() {
	if l.buf.Len() == 0 {
		return
	}
	l.emit(classify(l.buf.String()))
	l.buf.Reset()
}

// toggleString handles a quote character. Leaving a string emits the buffered
// text as a STRING token; entering one keeps whatever is already buffered.
func (l *Lexer) toggleString() {
	if l.state == stateInString {
		if l.buf.Len() > 0 {
			l.emit(StringToken(l.buf.String()))
			l.buf.Reset()
		}
		l.state = stateNormal
		return
	}
	l.state = stateInString
}

// delimiter maps the single-rune delimiters to their token type.
func delimiter(r rune) (TokenType, bool) {
	switch r {
	case '(':
		return LPAREN, true
	case ')':
		return RPAREN, true
	case '{':
		return LBRACE, true
	case '}':
		return RBRACE, true
	}
	return UNKNOWN, false
}

func (l *Lexer) step(r rune) {
	inString := l.state == stateInString

	switch {
	case r == '\n':
		// ignored in every state
	case r == ';':
		// terminates the buffer even inside a string
		l.flush()
		l.emit(Structural(SEMICOLON))
	case r == '"' || r == '\'':
		l.toggleString()
	case r == ' ' && !inString:
		l.flush()
	default:
		if tt, ok := delimiter(r); ok && !inString {
			l.flush()
			l.emit(Structural(tt))
			return
		}
		l.buf.WriteRune(r)
	}
}

func (l *Lexer) run() []Token {
	for l.pos < len(l.src) {
		l.step(l.advance())
	}
	l.flush()
	return l.tokens
}

// classify turns a non-empty run of text into a token, trying boolean,
// keyword, integer, float and call name in that order before falling back
// to IDENTIFIER.
func classify(text string) Token {
	switch text {
	case "true":
		return BooleanToken(true)
	case "false":
		return BooleanToken(false)
	}
	if keywords[text] {
		return KeywordToken(text)
	}
	if n, err := strconv.ParseInt(text, 10, 32); err == nil {
		return IntegerToken(int32(n))
	}
	if f, ok := parseFloat32(text); ok {
		return FloatToken(f)
	}
	if strings.Contains(text, "!") {
		return FunctionToken(text)
	}
	return IdentifierToken(text)
}

// parseFloat32 accepts decimal float notation, including inf and nan
// spellings. Out-of-range magnitudes saturate to ±Inf instead of failing.
// Hex floats and underscore separators are not part of the source language.
func parseFloat32(text string) (float32, bool) {
	if strings.ContainsAny(text, "xX_") {
		return 0, false
	}
	f, err := strconv.ParseFloat(text, 32)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return float32(f), true
}

// Tokenize splits source into tokens. It never fails: text that is not a
// literal, keyword or delimiter becomes an IDENTIFIER (or FUNCTION when it
// contains '!'). The result is nil for input without tokens.
func Tokenize(source string) []Token {
	return newLexer(source).run()
}
