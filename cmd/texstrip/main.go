// Package main is the entry point for the texstrip CLI.
package main

import (
	"os"

	"github.com/jmylchreest/texstrip/cmd/texstrip/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
