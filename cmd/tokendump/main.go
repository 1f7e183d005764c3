package main

import (
	"fmt"
	"os"

	"ruau/pkg/compiler"
	"ruau/pkg/utils"
)

const testSource = `
let x = 10;
if x > 5 {
    println!("x is greater than 5");
} else {
    println!("x is less than or equal to 5");
}`

func main() {
	src := testSource
	if len(os.Args) > 1 {
		fullPath, _, err := utils.GetPathInfo(os.Args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, "path error:", err)
			os.Exit(1)
		}
		data, err := os.ReadFile(fullPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "read error:", err)
			os.Exit(1)
		}
		src = string(data)
	}

	fmt.Printf("Source:\n%s\n\n", src)

	output, tokens := compiler.Transpile(src)

	fmt.Printf("Tokens (%d)\n", len(tokens))
	for _, tok := range tokens {
		fmt.Println(" ", tok)
	}
	fmt.Println()

	fmt.Println("Generated Script")
	fmt.Println(output)
}
