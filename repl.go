//go:build !js

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"ruau/pkg/compiler"
)

const (
	promptMain = "ruau> "
	promptCont = "....> "
)

// session holds REPL settings that survive between entries.
type session struct {
	showTokens bool
}

// incomplete reports whether src opens more braces than it closes, so the
// REPL keeps reading continuation lines.
func incomplete(src string) bool {
	depth := 0
	for _, tok := range compiler.Tokenize(src) {
		switch tok.Type() {
		case compiler.LBRACE:
			depth++
		case compiler.RBRACE:
			depth--
		}
	}
	return depth > 0
}

// handle evaluates one complete entry and writes the result to w.
// It returns false when the session should end.
func (s *session) handle(w io.Writer, entry string) bool {
	trimmed := strings.TrimSpace(entry)
	if strings.HasPrefix(trimmed, ":") {
		switch strings.ToLower(trimmed) {
		case ":quit", ":q":
			return false
		case ":tokens":
			s.showTokens = !s.showTokens
			fmt.Fprintf(w, "token listing %s\n", onOff(s.showTokens))
		default:
			fmt.Fprintln(w, "unknown command. Commands: :tokens, :quit")
		}
		return true
	}
	if trimmed == "" {
		return true
	}

	output, tokens := compiler.Transpile(entry)
	if s.showTokens {
		for _, tok := range tokens {
			fmt.Fprintln(w, " ", tok)
		}
	}
	fmt.Fprintln(w, output)
	return true
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// readEntry prompts until the collected lines form a complete entry.
func readEntry(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return "", false
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "read error:", err)
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		if src := b.String(); !incomplete(src) {
			return src, true
		}
	}
}

func runRepl(w io.Writer) int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	fmt.Fprintln(w, "ruau interactive transpiler. Type :tokens to toggle token listing, :quit to exit.")

	s := &session{}
	for {
		entry, ok := readEntry(ln)
		if !ok {
			fmt.Fprintln(w)
			return 0
		}
		if strings.TrimSpace(entry) != "" {
			ln.AppendHistory(strings.ReplaceAll(entry, "\n", " "))
		}
		if !s.handle(w, entry) {
			return 0
		}
	}
}
