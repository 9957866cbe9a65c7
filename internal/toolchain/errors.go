package toolchain

import "fmt"

// MissingError reports that the toolchain cannot be located or executed.
type MissingError struct {
	Binary string
	// InstallURL tells the user where to obtain the toolchain.
	InstallURL string
	Err        error
}

func (e *MissingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s toolchain not available: %v", e.Binary, e.Err)
	}
	return fmt.Sprintf("%s toolchain not available", e.Binary)
}

func (e *MissingError) Unwrap() error { return e.Err }

// OutdatedError reports a toolchain older than the go.mod "go" directive.
// It is advisory: with GOTOOLCHAIN=auto (the default since Go 1.21) the
// build downloads and switches to the required release on its own.
type OutdatedError struct {
	Binary   string
	Required string
	Found    string
}

func (e *OutdatedError) Error() string {
	return fmt.Sprintf("%s %s is older than required %s", e.Binary, e.Found, e.Required)
}

// BuildFailedError reports a non-zero exit from the build invocation. The
// build output was already streamed to the user, so only the exit status
// is kept.
type BuildFailedError struct {
	ExitCode int
	Err      error
}

func (e *BuildFailedError) Error() string {
	if e.ExitCode > 0 {
		return fmt.Sprintf("build failed with exit code %d", e.ExitCode)
	}
	return fmt.Sprintf("build failed: %v", e.Err)
}

func (e *BuildFailedError) Unwrap() error { return e.Err }
