//go:build !js

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"

	"ruau/pkg/batch"
	"ruau/pkg/compiler"
)

// inputList collects repeated -in flags.
type inputList []string

func (l *inputList) String() string { return strings.Join(*l, ",") }

func (l *inputList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

func main() {
	var inputs inputList
	flag.Var(&inputs, "in", "input source file path (repeatable; trailing arguments are inputs too)")
	outPath := flag.String("out", "", "output file path (single input only; default: input with .lua extension)")
	toStdout := flag.Bool("stdout", false, "print translations to stdout instead of writing files")
	showTokens := flag.Bool("tokens", false, "print the token list of each input")
	jobs := flag.Int("j", runtime.NumCPU(), "maximum number of files transpiled at once")
	repl := flag.Bool("repl", false, "start an interactive session")
	flag.Parse()

	inputs = append(inputs, flag.Args()...)

	if *repl {
		if len(inputs) > 0 {
			fmt.Fprintln(os.Stderr, "-repl does not take input files")
			os.Exit(2)
		}
		os.Exit(runRepl(os.Stdout))
	}

	if len(inputs) == 0 {
		fmt.Fprintln(os.Stderr, "nothing to do: provide -in <file> (or file arguments), or -repl")
		flag.Usage()
		os.Exit(2)
	}
	if *outPath != "" && len(inputs) > 1 {
		fmt.Fprintln(os.Stderr, "-out can only be used with a single input")
		os.Exit(2)
	}

	batchJobs := make([]batch.Job, len(inputs))
	for i, in := range inputs {
		batchJobs[i] = batch.Job{In: in, Out: *outPath}
	}

	results, err := batch.Run(context.Background(), batchJobs, batch.Options{Limit: *jobs, DryRun: *toStdout})
	if err != nil {
		fmt.Fprintf(os.Stderr, "transpile failed: %v\n", err)
		os.Exit(1)
	}

	for _, res := range results {
		if *showTokens {
			fmt.Printf("Tokens %s (%d)\n", res.In, len(res.Tokens))
			printTokens(res.Tokens)
			fmt.Println()
		}
		if *toStdout {
			fmt.Println(res.Output)
			continue
		}
		fmt.Printf("transpiled %s -> %s\n", res.In, res.Out)
	}
}

func printTokens(tokens []compiler.Token) {
	for _, tok := range tokens {
		fmt.Println(" ", tok)
	}
}
