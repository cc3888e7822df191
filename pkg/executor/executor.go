package executor

import (
	"context"

	execute "github.com/alexellis/go-execute/v2"
)

// Command describes a single external process invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory; empty means the current one.
	Dir string
	// Stream copies the child's stdout/stderr to ours while it runs.
	// The output is still captured in Result.
	Stream bool
}

// Result is what a finished process left behind.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Executor defines the interface for running system commands.
type Executor interface {
	// Run blocks until the process exits. A process that ran but exited
	// non-zero is reported through Result.ExitCode with a nil error; the
	// error is reserved for processes that could not be run at all.
	Run(ctx context.Context, cmd Command) (Result, error)
	// LookPath resolves name to a canonical absolute path of an executable file.
	LookPath(name string) (string, error)
}

// DefaultExecutor is the standard implementation using go-execute.
type DefaultExecutor struct{}

func (e *DefaultExecutor) Run(ctx context.Context, cmd Command) (Result, error) {
	task := execute.ExecTask{
		Command:     cmd.Name,
		Args:        cmd.Args,
		Cwd:         cmd.Dir,
		StreamStdio: cmd.Stream,
	}

	res, err := task.Execute(ctx)
	out := Result{
		Stdout:   res.Stdout,
		Stderr:   res.Stderr,
		ExitCode: res.ExitCode,
	}
	if err != nil && res.ExitCode > 0 {
		// The process ran; its status is the answer.
		return out, nil
	}
	return out, err
}

func (e *DefaultExecutor) LookPath(name string) (string, error) {
	return LookPath(name)
}
