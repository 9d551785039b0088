// Package main provides the sitelint command-line entry point.
package main

import (
	"os"

	"github.com/leapstack-labs/sitelint/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
