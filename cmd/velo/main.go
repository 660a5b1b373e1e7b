package main

import (
	"errors"
	"fmt"
	"os"

	"velo/internal/cli"
)

// runMain executes the main application logic and returns the exit code
// This function is extracted for testing purposes
func runMain() int {
	if err := cli.Execute(); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", exitErr.Err)
			}
			return exitErr.Code
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return cli.EXIT_OK
}

func main() {
	exitCode := runMain()
	if exitCode != cli.EXIT_OK {
		os.Exit(exitCode)
	}
}
