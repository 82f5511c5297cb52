// Package main provides the linksight command-line tool.
package main

import (
	"os"

	"linksight/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
