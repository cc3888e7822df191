package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/egandro/dereplicator-adapter/pkg/adapter"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

// flagError marks command line parsing problems so they map to ILLEGAL_PARAMETERS.
type flagError struct{ err error }

func (e *flagError) Error() string { return e.err.Error() }
func (e *flagError) Unwrap() error { return e.err }

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(stdout, stderr)
	rootCmd.AddCommand(newCheckCmd(stdout))
	rootCmd.AddCommand(newVersionCmd(stdout))
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return int(adapter.ExecutionOK)
	}

	var fe *flagError
	if errors.As(err, &fe) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return int(adapter.IllegalParameters)
	}

	status := adapter.StatusOf(err)
	if errors.Is(err, adapter.ErrExternalProcessFailed) {
		// The status is the tool's own exit code, not one of ours.
		fmt.Fprintf(stderr, "Error: %v\n", err)
	} else {
		fmt.Fprintf(stderr, "Error: %v (%s)\n", err, status)
	}
	return int(status)
}
