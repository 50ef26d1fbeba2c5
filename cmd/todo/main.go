// Package main provides the entry point for the todo TUI.
//
// Usage:
//
//	todo [--config file] [--append] [--positional] [--log-file path] [--min-width n]
//	todo config
//	todo version
package main

import (
	"fmt"
	"os"

	"github.com/riordanpawley/todo/internal/cli"
)

// Set by ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersionInfo(version, commit, date)

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
