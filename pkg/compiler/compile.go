package compiler

// Transpile runs the full pipeline over src and returns the translated text
// together with the tokens it was built from.
func Transpile(src string) (string, []Token) {
	tokens := Tokenize(src)
	return Translate(tokens), tokens
}
