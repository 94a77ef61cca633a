// Command tada is a to-do list for the current terminal session.
// It is the same program as cmd/tada, so `go run .` works from the repository root.
package main

import (
	"fmt"
	"os"

	"tada/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
