// Package main is the entry point for the gramps2gource CLI tool.
package main

import (
	"os"

	"github.com/claws/gramps2gource/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
