// Package main provides the entry point for the bisect CLI.
package main

import (
	"os"

	"github.com/katalvlaran/bisect/cmd/bisect/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
