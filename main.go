package main

import (
	"github.com/browseragentprotocol/bap-go/cmd"
)

// main is the entry point for the bap CLI.
func main() {
	// Execute the root command defined in the cmd package.
	// This handles all command-line parsing, configuration, and execution.
	cmd.Execute()
}
