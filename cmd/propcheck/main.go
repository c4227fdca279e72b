package main

import (
	"fmt"
	"os"
)

const usage = `propcheck - property-based checking demo runner

Usage:
  propcheck <command> [arguments]

Commands:
  check         Run the example suite once (default when no command given)
  watch         Re-run the example suite whenever watched paths change
  history       Show recent journaled runs

Options:
  -h, --help    Show this help message

Configuration is read from propcheck.ini in the working directory.
PROPCHECK_SEED and PROPCHECK_RUNS override the file.
`

func main() {
	cmd := "check"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "-h", "--help", "help":
		fmt.Print(usage)
		os.Exit(0)

	case "check":
		checkCmd(false)

	case "watch":
		checkCmd(true)

	case "history":
		historyCmd()

	default:
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n\n", cmd)
		fmt.Print(usage)
		os.Exit(1)
	}
}
