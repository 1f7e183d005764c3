// Package compiler provides the lexer and translator that turn the C-like
// ruau surface syntax into print-oriented Lua-style script text.
//
// Pipeline: source → Tokenize → Translate → script text
package compiler
