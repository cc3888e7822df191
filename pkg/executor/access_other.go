//go:build !linux

package executor

import (
	"errors"
	"os"
	"runtime"
)

func checkExecutable(_ string, info os.FileInfo) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	if info.Mode().Perm()&0111 == 0 {
		return errors.New("no execute bit set")
	}
	return nil
}
