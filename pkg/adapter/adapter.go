package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/egandro/dereplicator-adapter/pkg/config"
	"github.com/egandro/dereplicator-adapter/pkg/executor"
	"github.com/spf13/afero"
)

// Progress is shown while the external tool runs. *spinner.Spinner satisfies it.
type Progress interface {
	Start()
	Stop()
}

// Result describes a run. It is returned alongside errors once the
// executable has been resolved, so callers can see how far the run got.
type Result struct {
	Executable  string
	WorkDir     string
	Args        []string
	Output      string
	BytesCopied int64
}

// Adapter runs Dereplicator for one set of Options at a time.
type Adapter struct {
	exec   executor.Executor
	fs     afero.Fs
	logger *slog.Logger

	// TempDir is the parent directory of the working directory; empty
	// means the system default.
	TempDir string
	// Progress is optional. It is not used in debug mode, where the
	// tool's own output goes to the terminal.
	Progress Progress
}

// New creates an adapter. A nil logger means slog.Default().
func New(exec executor.Executor, fs afero.Fs, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{
		exec:   exec,
		fs:     fs,
		logger: logger,
	}
}

// ResolveExecutable returns the canonical path of the Dereplicator wrapper.
func (a *Adapter) ResolveExecutable(name string) (string, error) {
	if name == "" {
		name = config.DefaultExecutable
	}
	path, err := a.exec.LookPath(name)
	if err != nil {
		return "", newError(ErrExecutableNotFound, MissingParameters,
			fmt.Errorf("add %s to PATH or provide --executable: %w", name, err))
	}
	if path == "" {
		return "", newError(ErrExecutableNotFound, MissingParameters,
			fmt.Errorf("%s resolved to an empty path", name))
	}
	return path, nil
}

// Run validates opts, runs Dereplicator in a fresh working directory and
// copies its significant matches to opts.Out. The working directory is
// removed before Run returns, whatever the outcome.
//
// Nothing is retried and no timeout is applied. If the tool fails, the
// returned *Error carries its exit code and opts.Out is left untouched.
func (a *Adapter) Run(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	executable, err := a.ResolveExecutable(opts.Executable)
	if err != nil {
		return nil, err
	}
	res := &Result{Executable: executable, Output: opts.Out}

	workDir, err := afero.TempDir(a.fs, a.TempDir, config.DefaultTempPrefix)
	if err != nil {
		return res, newError(ErrCopyIO, CannotWriteOutputFile, fmt.Errorf("failed to create working directory: %w", err))
	}
	defer func() {
		if err := a.fs.RemoveAll(workDir); err != nil {
			a.logger.Warn("Failed to clean up working directory", "directory", workDir, "error", err)
		}
	}()
	res.WorkDir = workDir
	res.Args = BuildArgs(opts.In, workDir, opts.Database)

	if err := a.execute(ctx, executable, res.Args, opts.Debug); err != nil {
		return res, err
	}

	resultFile := filepath.Join(workDir, config.ConstantResultFilename)
	if err := a.checkResultFile(resultFile); err != nil {
		a.logger.Debug("Dereplicator finished without results", "file", resultFile)
		return res, err
	}

	n, err := a.publish(resultFile, opts.Out)
	res.BytesCopied = n
	if err != nil {
		return res, newError(ErrCopyIO, CannotWriteOutputFile, err)
	}

	a.logger.Info("Everything is fine! Results are in "+opts.Out, "size", humanize.Bytes(uint64(n)))
	return res, nil
}

// execute runs the tool in the caller's working directory so relative
// spectra and database paths keep their meaning.
func (a *Adapter) execute(ctx context.Context, executable string, args []string, debug bool) error {
	a.logger.Debug("Executing Dereplicator", "command", executable+" "+strings.Join(args, " "))

	if a.Progress != nil && !debug {
		a.Progress.Start()
	}
	out, err := a.exec.Run(ctx, executor.Command{Name: executable, Args: args, Stream: debug})
	if a.Progress != nil && !debug {
		a.Progress.Stop()
	}

	if !debug && out.Stdout != "" {
		a.logger.Debug("Dereplicator output", "stdout", strings.TrimSpace(out.Stdout))
	}
	if err != nil {
		a.logger.Error("Failed to run Dereplicator", "executable", executable, "error", err)
		return newError(ErrExternalProcessFailed, ExternalProgramError, err)
	}
	if out.ExitCode != 0 {
		a.logger.Error("Dereplicator failed", "code", out.ExitCode, "stderr", strings.TrimSpace(out.Stderr))
		return &Error{Kind: ErrExternalProcessFailed, Status: ExternalProgramError, Code: out.ExitCode}
	}
	return nil
}

func (a *Adapter) checkResultFile(path string) error {
	exists, err := afero.Exists(a.fs, path)
	if err != nil {
		return newError(ErrResultFileMissing, UnexpectedResult, err)
	}
	if !exists {
		return newError(ErrResultFileMissing, UnexpectedResult, fmt.Errorf("%s not found", filepath.Base(path)))
	}
	if isDir, _ := afero.IsDir(a.fs, path); isDir {
		return newError(ErrResultFileMissing, UnexpectedResult, fmt.Errorf("%s is a directory", filepath.Base(path)))
	}
	return nil
}

// publish replaces dst with a byte copy of src. A partially written dst is
// removed again.
func (a *Adapter) publish(src, dst string) (int64, error) {
	if err := a.fs.Remove(dst); err != nil && !errors.Is(err, os.ErrNotExist) {
		return 0, fmt.Errorf("failed to remove existing %s: %w", dst, err)
	}

	in, err := a.fs.Open(src)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = in.Close()
	}()

	out, err := a.fs.Create(dst)
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = a.fs.Remove(dst)
		return n, err
	}
	return n, nil
}
