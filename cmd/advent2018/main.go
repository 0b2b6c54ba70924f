// advent2018 solves Advent of Code 2018 puzzles from the command line.
//
// Usage:
//
//	advent2018 solve [file|-]          Print the day 8 checksum and root value
//	advent2018 decode [file|-]         Print the decoded license tree
//	advent2018 test <suite.yaml>...    Run puzzle-case suites
//
// If no file is given, reads from stdin.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/James-Coleman/Advent2018/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err != nil {
		// Commands report their own ExitErrors; anything else came from cobra.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "advent2018: %v\n", err)
		}
	}
	os.Exit(cli.GetExitCode(err))
}
