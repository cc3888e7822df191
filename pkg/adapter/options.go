package adapter

import (
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// InputFormats are the spectra formats Dereplicator reads.
	InputFormats = []string{"mzXML", "MGF", "mzML", "mzdata"}
	// OutputFormats are the accepted extensions of the result file.
	OutputFormats = []string{"csv", "tsv", "txt"}
)

// Options are the user supplied settings of one run.
type Options struct {
	// In is the spectra file passed to Dereplicator.
	In string
	// Database is the directory holding MOL structures and library.info.
	// It is handed to the tool as is and never inspected.
	Database string
	// Out receives a copy of significant_matches.tsv. An existing file is replaced.
	Out string
	// Executable is a path or a bare command name looked up on PATH.
	// Empty means config.DefaultExecutable.
	Executable string
	// Debug streams the tool's output to the terminal instead of capturing it.
	Debug bool
}

// Validate checks the required options in order and returns the first
// problem found. Files are not opened; only their extensions are checked.
func (o Options) Validate() error {
	if o.In == "" {
		return newError(ErrMissingInput, IllegalParameters, nil)
	}
	if o.Database == "" {
		return newError(ErrMissingDatabase, IllegalParameters, nil)
	}
	if o.Out == "" {
		return newError(ErrMissingOutput, IllegalParameters, nil)
	}
	if err := checkFormat("in", o.In, InputFormats); err != nil {
		return err
	}
	return checkFormat("out", o.Out, OutputFormats)
}

func checkFormat(option, path string, allowed []string) error {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	for _, a := range allowed {
		if strings.EqualFold(ext, a) {
			return nil
		}
	}
	return newError(ErrInvalidFormat, IllegalParameters,
		fmt.Errorf("--%s %q: extension must be one of %s", option, path, strings.Join(allowed, ", ")))
}

// BuildArgs returns the Dereplicator command line for one run.
func BuildArgs(in, workDir, database string) []string {
	return []string{in, "-o", workDir, "--db-path", database}
}
