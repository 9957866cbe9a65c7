package platform

import "runtime"

// HostDescriptor holds the raw identifiers a host reports about itself, in
// the package-manager convention ("win32", "x64") rather than Go's.
type HostDescriptor struct {
	OS   string `json:"os"`
	Arch string `json:"arch"`
}

// String returns the descriptor in "os/arch" form.
func (h HostDescriptor) String() string {
	return h.OS + "/" + h.Arch
}

// GOOS/GOARCH values whose host-reported spelling differs. Anything not
// listed passes through unchanged and is rejected by Resolve if unsupported.
var (
	hostOSNames = map[string]string{
		"windows": "win32",
	}
	hostArchNames = map[string]string{
		"amd64": "x64",
		"386":   "ia32",
	}
)

// DetectHost captures the descriptor of the running process.
func DetectHost() HostDescriptor {
	return HostFromGo(runtime.GOOS, runtime.GOARCH)
}

// HostFromGo translates a GOOS/GOARCH pair into a HostDescriptor.
func HostFromGo(goos, goarch string) HostDescriptor {
	h := HostDescriptor{OS: goos, Arch: goarch}
	if v, ok := hostOSNames[goos]; ok {
		h.OS = v
	}
	if v, ok := hostArchNames[goarch]; ok {
		h.Arch = v
	}
	return h
}

// WithOverrides returns a copy of h with non-empty osName/arch replacing the
// detected values.
func (h HostDescriptor) WithOverrides(osName, arch string) HostDescriptor {
	if osName != "" {
		h.OS = osName
	}
	if arch != "" {
		h.Arch = arch
	}
	return h
}
