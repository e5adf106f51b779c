// Package main is the entry point for the Userdeck CLI application.
// It provides user and session management against a Userdeck service instance.
package main

import (
	"userdeck/cli/cmd"
)

func main() {
	cmd.Execute()
}
