package platform

import "fmt"

// OSFamily is a canonical operating-system identifier (a GOOS value).
type OSFamily string

// Supported OS families.
const (
	OSDarwin  OSFamily = "darwin"
	OSLinux   OSFamily = "linux"
	OSWindows OSFamily = "windows"
)

// ArchFamily is a canonical CPU architecture identifier (a GOARCH value).
type ArchFamily string

// Supported architecture families.
const (
	ArchAMD64 ArchFamily = "amd64"
	ArchARM64 ArchFamily = "arm64"
)

// CanonicalPlatform is the (OS, architecture) pair handed to the toolchain.
type CanonicalPlatform struct {
	OS   OSFamily   `json:"goos"`
	Arch ArchFamily `json:"goarch"`
}

// String returns the pair in "os/arch" form.
func (p CanonicalPlatform) String() string {
	return string(p.OS) + "/" + string(p.Arch)
}

// IsWindows reports whether the target OS family is windows.
func (p CanonicalPlatform) IsWindows() bool {
	return p.OS == OSWindows
}

// UnsupportedPlatformError is returned when the host OS has no mapping.
type UnsupportedPlatformError struct {
	Raw string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("unsupported platform: %s", e.Raw)
}

// UnsupportedArchitectureError is returned when the host architecture has no mapping.
type UnsupportedArchitectureError struct {
	Raw string
}

func (e *UnsupportedArchitectureError) Error() string {
	return fmt.Sprintf("unsupported architecture: %s", e.Raw)
}

var osMap = map[string]OSFamily{
	"darwin": OSDarwin,
	"linux":  OSLinux,
	"win32":  OSWindows,
}

var archMap = map[string]ArchFamily{
	"x64":   ArchAMD64,
	"arm64": ArchARM64,
}

// Resolve maps a host descriptor to its canonical platform. The OS is
// checked before the architecture.
func Resolve(host HostDescriptor) (CanonicalPlatform, error) {
	goos, ok := osMap[host.OS]
	if !ok {
		return CanonicalPlatform{}, &UnsupportedPlatformError{Raw: host.OS}
	}
	goarch, ok := archMap[host.Arch]
	if !ok {
		return CanonicalPlatform{}, &UnsupportedArchitectureError{Raw: host.Arch}
	}
	return CanonicalPlatform{OS: goos, Arch: goarch}, nil
}

// SupportedHosts lists every host descriptor Resolve accepts, OS-major.
func SupportedHosts() []HostDescriptor {
	var hosts []HostDescriptor
	for _, o := range []string{"darwin", "linux", "win32"} {
		for _, a := range []string{"x64", "arm64"} {
			hosts = append(hosts, HostDescriptor{OS: o, Arch: a})
		}
	}
	return hosts
}
