// Package main provides the i18nlint CLI entry point.
package main

import (
	"os"

	"github.com/leapstack-labs/i18nlint/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
