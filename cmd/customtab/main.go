// Package main provides the entry point for the customtab CLI.
package main

import (
	"errors"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		// check reports its verdict itself; the error only sets the exit code.
		if !errors.Is(err, errNotCustomTab) {
			printError(err)
		}
		os.Exit(1)
	}
}
