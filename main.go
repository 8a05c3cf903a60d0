// Package main is the entry point for the ptladmin CLI application.
// It provides session management and administration tooling for the PTL
// admin backend.
package main

import (
	"ptladmin/cli/cmd"
)

// main initializes and executes the command-line interface.
func main() {
	cmd.Execute()
}
