// forcegraph lays out graphs with a force simulation: interactively in the
// terminal, or headless to SVG and PNG.
//
// Run: go run ./cmd/forcegraph view examples/graph.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "forcegraph: %v\n", err)
		os.Exit(1)
	}
}
