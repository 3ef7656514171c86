// Package main provides the entry point for the codexcli CLI.
package main

import (
	"fmt"
	"os"

	"github.com/opencode-ai/codexcli/cmd/codexcli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
