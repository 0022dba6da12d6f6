//go:build !linux

package renamer

func moveNoReplace(oldPath, newPath string) error {
	return moveChecked(oldPath, newPath)
}
