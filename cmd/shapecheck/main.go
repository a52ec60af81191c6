// Package main provides the CLI entrypoint for shapecheck.
//
// shapecheck is a static classification tool that:
//   - Parses Go packages (AST + go/types) to extract record shapes
//   - Classifies members as readonly/writable, optional/required, func-valued
//   - Classifies numeric literal spellings lexically
//   - Validates YAML shape manifests
package main

import (
	"fmt"
	"os"

	"shapecheck/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
