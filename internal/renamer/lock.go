package renamer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
)

// acquireLock takes a per-directory lock so two rename runs cannot interleave
// on the same files.
func acquireLock(dir string) (*flock.Flock, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", dir, err)
	}
	name := "subspy-rename-" + uuid.NewSHA1(uuid.NameSpaceURL, []byte("file://"+abs)).String() + ".lock"
	lock := flock.New(filepath.Join(os.TempDir(), name))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire rename lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("another rename is already running in %s", abs)
	}
	return lock, nil
}
