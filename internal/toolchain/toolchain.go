package toolchain

import (
	"context"
	"io"
	"os"
	"os/exec"
)

// DefaultBinary is the toolchain executable looked up on PATH.
const DefaultBinary = "go"

// Toolchain invokes an external Go toolchain binary.
type Toolchain struct {
	// Binary is a command name resolved on PATH, or a path to the executable.
	Binary string
	// InstallURL is attached to MissingError as remediation guidance.
	InstallURL string

	// Stdout and Stderr receive build output; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// New returns a Toolchain for binary, falling back to DefaultBinary.
func New(binary, installURL string) *Toolchain {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Toolchain{Binary: binary, InstallURL: installURL}
}

// Probe checks that the toolchain is reachable by running its version
// command with output discarded. Any spawn failure or non-zero exit is a
// *MissingError.
func (t *Toolchain) Probe(ctx context.Context) error {
	bin, err := exec.LookPath(t.Binary)
	if err != nil {
		return t.missing(err)
	}

	cmd := exec.CommandContext(ctx, bin, "version")
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	if err := cmd.Run(); err != nil {
		return t.missing(err)
	}
	return nil
}

// Path resolves the toolchain binary on PATH.
func (t *Toolchain) Path() (string, error) {
	bin, err := exec.LookPath(t.Binary)
	if err != nil {
		return "", t.missing(err)
	}
	return bin, nil
}

func (t *Toolchain) missing(err error) *MissingError {
	return &MissingError{Binary: t.Binary, InstallURL: t.InstallURL, Err: err}
}

func (t *Toolchain) stdout() io.Writer {
	if t.Stdout == nil {
		return os.Stdout
	}
	return t.Stdout
}

func (t *Toolchain) stderr() io.Writer {
	if t.Stderr == nil {
		return os.Stderr
	}
	return t.Stderr
}
