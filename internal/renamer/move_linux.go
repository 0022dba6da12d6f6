//go:build linux

package renamer

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// moveNoReplace renames atomically with RENAME_NOREPLACE, falling back to a
// checked rename on filesystems that do not support the flag.
func moveNoReplace(oldPath, newPath string) error {
	err := unix.Renameat2(unix.AT_FDCWD, oldPath, unix.AT_FDCWD, newPath, unix.RENAME_NOREPLACE)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, unix.EEXIST):
		return fmt.Errorf("%w: %s", ErrDestinationExists, newPath)
	case errors.Is(err, unix.EINVAL), errors.Is(err, unix.ENOSYS):
		return moveChecked(oldPath, newPath)
	default:
		return &os.LinkError{Op: "rename", Old: oldPath, New: newPath, Err: err}
	}
}
