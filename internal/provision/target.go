package provision

import (
	"path/filepath"

	"github.com/rkristelijn/glab-tui-install/internal/branding"
	"github.com/rkristelijn/glab-tui-install/internal/platform"
)

// BinDir is the install directory, relative to the package root.
const BinDir = "bin"

// InstallTarget is where the produced binary is placed.
type InstallTarget struct {
	Dir      string `json:"dir"`
	FileName string `json:"file_name"`
	Path     string `json:"path"`
}

// BinaryFileName returns the binary's file name for the target OS family.
// Only windows gains a suffix.
func BinaryFileName(family platform.OSFamily) string {
	name := branding.BinaryName()
	if family == platform.OSWindows {
		name += ".exe"
	}
	return name
}

// NewInstallTarget computes the install target under root for p.
func NewInstallTarget(root string, p platform.CanonicalPlatform) InstallTarget {
	dir := filepath.Join(root, BinDir)
	name := BinaryFileName(p.OS)
	return InstallTarget{
		Dir:      dir,
		FileName: name,
		Path:     filepath.Join(dir, name),
	}
}
