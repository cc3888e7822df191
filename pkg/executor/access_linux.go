//go:build linux

package executor

import (
	"os"

	"golang.org/x/sys/unix"
)

// checkExecutable asks the kernel, so ACLs and the effective uid are honoured.
func checkExecutable(path string, _ os.FileInfo) error {
	return unix.Access(path, unix.X_OK)
}
