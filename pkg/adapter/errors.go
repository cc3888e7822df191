package adapter

import (
	"errors"
	"fmt"
)

// ExitStatus is the process exit code reported by the adapter. The values
// match the exit codes of the OpenMS TOPP tools so wrappers can treat the
// adapter like any other tool in a pipeline.
type ExitStatus int

const (
	ExecutionOK ExitStatus = iota
	InputFileNotFound
	InputFileNotReadable
	InputFileCorrupt
	InputFileEmpty
	CannotWriteOutputFile
	IllegalParameters
	MissingParameters
	UnknownError
	ExternalProgramError
	ParseError
	IncompatibleInputData
	InternalError
	UnexpectedResult
)

var statusNames = [...]string{
	"EXECUTION_OK",
	"INPUT_FILE_NOT_FOUND",
	"INPUT_FILE_NOT_READABLE",
	"INPUT_FILE_CORRUPT",
	"INPUT_FILE_EMPTY",
	"CANNOT_WRITE_OUTPUT_FILE",
	"ILLEGAL_PARAMETERS",
	"MISSING_PARAMETERS",
	"UNKNOWN_ERROR",
	"EXTERNAL_PROGRAM_ERROR",
	"PARSE_ERROR",
	"INCOMPATIBLE_INPUT_DATA",
	"INTERNAL_ERROR",
	"UNEXPECTED_RESULT",
}

func (s ExitStatus) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("EXIT_%d", int(s))
}

// Error kinds. Match them with errors.Is.
var (
	ErrMissingInput          = errors.New("no input file (spectra) given")
	ErrMissingDatabase       = errors.New("no database given")
	ErrMissingOutput         = errors.New("no output file (results) given")
	ErrInvalidFormat         = errors.New("invalid file format")
	ErrExecutableNotFound    = errors.New("executable of Dereplicator could not be found")
	ErrExternalProcessFailed = errors.New("dereplicator failed")
	ErrResultFileMissing     = errors.New("dereplicator did not produce a result file")
	ErrCopyIO                = errors.New("failed to write output file")
)

// Error is returned by Run. Kind is one of the Err* values above and Status
// is the exit code a command line front end should use.
type Error struct {
	Kind   error
	Status ExitStatus
	// Code is the exit code of the external process, set for ErrExternalProcessFailed.
	Code int
	Err  error
}

func newError(kind error, status ExitStatus, err error) *Error {
	return &Error{Kind: kind, Status: status, Err: err}
}

func (e *Error) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	case errors.Is(e.Kind, ErrExternalProcessFailed):
		return fmt.Sprintf("%v with exit code %d", e.Kind, e.Code)
	default:
		return e.Kind.Error()
	}
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// StatusOf maps err to the exit status of the process. A failed external
// process passes its own exit code through unchanged.
func StatusOf(err error) ExitStatus {
	if err == nil {
		return ExecutionOK
	}
	var e *Error
	if !errors.As(err, &e) {
		return UnknownError
	}
	if errors.Is(e.Kind, ErrExternalProcessFailed) && e.Code > 0 {
		return ExitStatus(e.Code)
	}
	return e.Status
}
