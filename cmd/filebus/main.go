package main

import (
	"fmt"
	"os"

	"github.com/roach88/filebus/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		code := cli.GetExitCode(err)
		// A deduplicated publish already reported itself; it is a
		// suppressed outcome, not an error.
		if code != cli.ExitDeduplicated {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(code)
	}
}
