package platform

import "os"

// ExecutablePerm is the mode given to produced binaries on POSIX targets.
const ExecutablePerm os.FileMode = 0755

// Chmod sets file permissions for a file built for target. On windows
// targets this is a no-op because Windows does not use Unix-style
// permission bits.
func Chmod(target OSFamily, path string, mode os.FileMode) error {
	if target == OSWindows {
		return nil
	}
	return os.Chmod(path, mode)
}

// IsExecutable reports whether info describes a file that target can
// execute. Windows targets only need a regular file.
func IsExecutable(target OSFamily, info os.FileInfo) bool {
	if !info.Mode().IsRegular() {
		return false
	}
	if target == OSWindows {
		return true
	}
	return info.Mode().Perm()&0111 == 0111
}
