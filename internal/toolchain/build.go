package toolchain

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// DefaultLDFlags strip the symbol table and DWARF data from the output.
const DefaultLDFlags = "-s -w"

// BuildRequest describes one "go build" invocation.
type BuildRequest struct {
	// Dir is the working directory, normally the package root.
	Dir string
	// Output is the path passed to -o.
	Output string
	// Env is the complete child environment (see BuildEnv).
	Env []string
	// LDFlags defaults to DefaultLDFlags when empty.
	LDFlags string
	// Package defaults to ".".
	Package string
}

// Args returns the toolchain arguments for the request.
func (r BuildRequest) Args() []string {
	ldflags := r.LDFlags
	if ldflags == "" {
		ldflags = DefaultLDFlags
	}
	pkg := r.Package
	if pkg == "" {
		pkg = "."
	}
	return []string{"build", "-ldflags=" + ldflags, "-o", r.Output, pkg}
}

// Build runs the toolchain synchronously with output streamed to the
// configured writers. A non-zero exit is a *BuildFailedError.
func (t *Toolchain) Build(ctx context.Context, req BuildRequest) error {
	if req.Output == "" {
		return fmt.Errorf("build request has no output path")
	}
	bin, err := t.Path()
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, bin, req.Args()...)
	cmd.Dir = req.Dir
	cmd.Env = req.Env
	cmd.Stdout = t.stdout()
	cmd.Stderr = t.stderr()

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &BuildFailedError{ExitCode: exitErr.ExitCode(), Err: err}
		}
		return &BuildFailedError{ExitCode: -1, Err: err}
	}
	return nil
}
