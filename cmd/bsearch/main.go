// Package main provides the entry point for the bsearch CLI.
package main

import (
	"os"

	"github.com/Johniel/locate/cmd/bsearch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
