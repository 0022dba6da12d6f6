package renamer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// moveChecked refuses to rename onto an existing path. It is not atomic; the
// check and the rename are separate system calls.
func moveChecked(oldPath, newPath string) error {
	if _, err := os.Lstat(newPath); err == nil {
		return fmt.Errorf("%w: %s", ErrDestinationExists, newPath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat destination: %w", err)
	}
	return os.Rename(oldPath, newPath)
}
