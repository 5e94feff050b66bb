// Command crucible reads a digit cost grid and prints the cheapest
// run-length constrained crossing for every configured part.
//
// Usage:
//
//	crucible [input] [--config crucible.yaml] [--heading down] [--log-level info] [--log-format text] [--ragged]
//
// The input defaults to ./inputs/day17.txt. Results go to stdout as
// "Part 1: <cost>" lines; logs go to stderr.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(runMain(os.Args[1:], os.Stdout, os.Stderr))
}

// runMain executes the root command with args and returns the process exit
// code. Every error, including argument validation done by cobra, is
// reported on stderr.
func runMain(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, "crucible:", err)
		return 1
	}

	return 0
}
