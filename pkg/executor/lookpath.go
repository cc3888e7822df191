package executor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrNotExecutable is returned when a path exists but cannot be executed.
var ErrNotExecutable = errors.New("not an executable file")

// LookPath resolves a bare command name through PATH, or an explicit path
// as given, and returns the canonical absolute path with symlinks resolved.
func LookPath(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", errors.New("empty executable name")
	}

	path := name
	if !strings.ContainsRune(name, os.PathSeparator) && !strings.ContainsRune(name, '/') {
		found, err := exec.LookPath(name)
		if err != nil {
			return "", err
		}
		path = found
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to make %q absolute: %w", path, err)
	}
	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize %q: %w", abs, err)
	}

	info, err := os.Stat(canonical)
	if err != nil {
		return "", err
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%s: %w", canonical, ErrNotExecutable)
	}
	if err := checkExecutable(canonical, info); err != nil {
		return "", fmt.Errorf("%s: %w", canonical, ErrNotExecutable)
	}
	return canonical, nil
}
