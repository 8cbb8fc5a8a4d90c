// Package main provides the skillkit CLI.
package main

import (
	"os"

	"github.com/oil-oil/agent-skills/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
