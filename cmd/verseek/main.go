// Package main is the entry point for the verseek CLI.
package main

import (
	"fmt"
	"os"

	"github.com/turnkeylinux/verseek/cmd/verseek/commands"
	"github.com/turnkeylinux/verseek/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)

		code := errors.ExitUser
		var exitErr *errors.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.Code
			if exitErr.Suggestion != "" {
				fmt.Fprintln(os.Stderr, exitErr.Suggestion)
			}
		}
		os.Exit(code)
	}
}
