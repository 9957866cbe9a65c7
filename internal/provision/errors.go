package provision

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrReleaseModeUnsupported is returned for ModeRelease. Fetching
// pre-built release artifacts needs an artifact addressing and integrity
// scheme that does not exist yet.
var ErrReleaseModeUnsupported = errors.New("release mode is not supported yet; use source mode")

// Filesystem operations reported in FilesystemError.Op.
const (
	OpMkdir  = "creating install directory"
	OpChmod  = "setting executable permissions on"
	OpVerify = "verifying"
	OpRoot   = "locating package root from"
)

// FilesystemError reports a failed filesystem step.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	cause := e.Err
	var pe *fs.PathError
	if errors.As(cause, &pe) && pe.Path == e.Path {
		cause = pe.Err
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, cause)
}

func (e *FilesystemError) Unwrap() error { return e.Err }
