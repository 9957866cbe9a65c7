package provision

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rkristelijn/glab-tui-install/internal/branding"
	"golang.org/x/mod/modfile"
)

// Package describes the Go module being built.
type Package struct {
	Root string
	// Module is the module path declared in go.mod.
	Module string
	// GoVersion is the go.mod "go" directive, empty if absent.
	GoVersion string
}

var (
	// ErrNoPackageRoot is returned by FindRoot when no go.mod is found.
	ErrNoPackageRoot = errors.New("no go.mod found")
	// ErrInstallerModule is returned by FindRoot when the nearest go.mod is
	// the installer's own module rather than the package to build.
	ErrInstallerModule = errors.New("nearest go.mod belongs to the installer itself; set the package root explicitly")
)

// FindRoot walks up from start to the nearest directory holding go.mod. It
// refuses to pick the installer's own module.
func FindRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", &FilesystemError{Op: OpRoot, Path: start, Err: err}
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			if pkg, err := LoadPackage(dir); err == nil && pkg.Module == branding.GoModule() {
				return "", &FilesystemError{Op: OpRoot, Path: start, Err: ErrInstallerModule}
			}
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", &FilesystemError{Op: OpRoot, Path: start, Err: ErrNoPackageRoot}
		}
		dir = parent
	}
}

// LoadPackage parses root/go.mod.
func LoadPackage(root string) (*Package, error) {
	path := filepath.Join(root, "go.mod")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	f, err := modfile.ParseLax(path, data, nil)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	pkg := &Package{Root: root}
	if f.Module != nil {
		pkg.Module = f.Module.Mod.Path
	}
	if f.Go != nil {
		pkg.GoVersion = f.Go.Version
	}
	return pkg, nil
}
