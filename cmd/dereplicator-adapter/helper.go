package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/briandowns/spinner"

	"github.com/egandro/dereplicator-adapter/pkg/logger"
)

// setupLogger returns a logger writing to logFile, or to stderr when logFile
// is empty. debug forces the debug level. The returned func closes the file.
func setupLogger(level, logFile string, debug bool, stderr io.Writer) (*slog.Logger, func(), error) {
	lvl, err := logger.ParseLevel(level)
	if err != nil {
		fmt.Fprintf(stderr, "%v, defaulting to INFO\n", err)
	}
	if debug {
		lvl = slog.LevelDebug
	}

	output := stderr
	closeFn := func() {}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600) // #nosec G304 -- path comes from the operator
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", logFile, err)
		}
		output = f
		closeFn = func() {
			_ = f.Close()
		}
	}

	return slog.New(&logger.SimpleHandler{Output: output, Level: lvl}), closeFn, nil
}

func newProgress(w io.Writer, suffix string) *spinner.Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = suffix
	return s
}
