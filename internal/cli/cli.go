// Package cli implements the pwgen command line: flag parsing, help output
// and the mapping from failures to exit codes.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/vaultpass/pwgen-go/internal/crypto"
)

const (
	ExitOK    = 0
	ExitError = 1
)

const usageTemplate = `
Usage: %[1]s [options]

Options:
  --help            Show help message
  --length <num>    Specify the length of the password (default is 8)
  --uppercase       Include uppercase letters
  --numbers         Include digits
  --symbols         Include special characters

Examples:
  %[1]s --length 12
  %[1]s --length 10 --uppercase
  %[1]s --numbers --symbols
`

// PrintUsage writes the help block for the program named prog.
func PrintUsage(w io.Writer, prog string) {
	fmt.Fprintf(w, usageTemplate, prog)
}

// Run executes one invocation and returns the process exit code. Nothing is
// written to stdout unless the invocation succeeds.
func Run(prog string, args []string, stdout, stderr io.Writer, src crypto.RandomSource) int {
	opts, err := Parse(args)
	if err != nil {
		var unrecognized *UnrecognizedArgumentError
		switch {
		case errors.As(err, &unrecognized):
			fmt.Fprintf(stderr, "Unrecognized argument: %s\n", unrecognized.Arg)
			fmt.Fprintln(stderr, "Use --help for usage information.")
		case errors.Is(err, ErrInvalidLength):
			fmt.Fprintln(stderr, "Error: Invalid value for --length. It must be a positive integer.")
		default:
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		slog.Debug("argument parsing failed", "error", err)
		return ExitError
	}

	if opts.Help {
		PrintUsage(stdout, prog)
		return ExitOK
	}

	slog.Debug("generating password",
		"length", opts.Length,
		"uppercase", opts.Uppercase,
		"digits", opts.Digits,
		"symbols", opts.Symbols,
	)

	password, err := crypto.Generate(opts.Length, opts.Uppercase, opts.Digits, opts.Symbols, src)
	if err != nil {
		fmt.Fprintf(stderr, "An error occurred while generating the password: %v\n", err)
		return ExitError
	}

	fmt.Fprintf(stdout, "Your generated password is: %s\n", password)
	return ExitOK
}
