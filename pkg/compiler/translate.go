package compiler

import "strings"

// entryCall is appended to every translation; the target dialect runs
// top-level code at load time, so main has to be invoked explicitly.
const entryCall = "main()"

// callNames maps source call names to their target-dialect spelling.
// Calls not listed here emit only their argument list.
var callNames = map[string]string{
	"println!": "print",
}

// callState is the translator's accumulator. inCall is set by a FUNCTION
// token and cleared by the next RPAREN; nesting is not tracked.
type callState struct {
	inCall bool
}

// Translator renders a token sequence as target-dialect text.
type Translator struct {
	out strings.Builder
}

func newTranslator() *Translator {
	return &Translator{}
}

// peek returns the token after position i, if any.
func peek(tokens []Token, i int) (Token, bool) {
	if i+1 >= len(tokens) {
		return Token{}, false
	}
	return tokens[i+1], true
}

// step emits the text for tok and returns the updated state.
func (tr *Translator) step(st callState, tok Token, next Token, hasNext bool) callState {
	switch tok.Type() {
	case KEYWORD:
		if kw, _ := tok.Text(); kw == "fn" {
			tr.out.WriteString("function ")
		}

	case IDENTIFIER:
		name, _ := tok.Text()
		tr.out.WriteString(name)
		tr.out.WriteByte(' ')

	case LPAREN:
		tr.out.WriteByte('(')

	case RPAREN:
		if st.inCall {
			tr.out.WriteByte(')')
			st.inCall = false
			break
		}
		tr.out.WriteString(") ")

	case LBRACE:
		tr.out.WriteString("{\n")

	case RBRACE:
		tr.out.WriteString("\n}\n")

	case FUNCTION:
		st.inCall = true
		name, _ := tok.Text()
		if target, ok := callNames[name]; ok {
			tr.out.WriteString(target)
		}

	case STRING:
		s, _ := tok.Text()
		tr.out.WriteByte('"')
		tr.out.WriteString(s)
		tr.out.WriteByte('"')

	case SEMICOLON:
		// no newline before a closing brace, it brings its own
		if hasNext && next.Type() == RBRACE {
			tr.out.WriteByte(';')
			break
		}
		tr.out.WriteString(";\n")
	}
	// INTEGER, FLOAT, BOOLEAN, UNKNOWN and the reserved LCURLY/RCURLY emit nothing.
	return st
}

func (tr *Translator) run(tokens []Token) string {
	var st callState
	for i, tok := range tokens {
		next, ok := peek(tokens, i)
		st = tr.step(st, tok, next, ok)
	}
	tr.out.WriteString(entryCall)
	return tr.out.String()
}

// Translate renders tokens as target-dialect source and appends the implicit
// main() call. It accepts any sequence, including one that ends in a SEMICOLON.
func Translate(tokens []Token) string {
	return newTranslator().run(tokens)
}
