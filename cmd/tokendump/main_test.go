package main

import (
	"strings"
	"testing"

	"ruau/pkg/compiler"
)

func TestSampleSourceTranslates(t *testing.T) {
	output, tokens := compiler.Transpile(testSource)

	if len(tokens) != 24 {
		t.Errorf("Expected 24 tokens, got %d", len(tokens))
	}
	for _, want := range []string{
		"x = ;\n",
		"print(\"x is greater than 5\");",
		"print(\"x is less than or equal to 5\");",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, output)
		}
	}
	if !strings.HasSuffix(output, "main()") {
		t.Errorf("Expected output to end with main(), got:\n%s", output)
	}
}
