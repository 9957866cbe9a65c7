package platform

import (
	"errors"
	"strings"
	"testing"
)

func TestResolve_Supported(t *testing.T) {
	tests := []struct {
		host HostDescriptor
		want CanonicalPlatform
	}{
		{HostDescriptor{"darwin", "x64"}, CanonicalPlatform{OSDarwin, ArchAMD64}},
		{HostDescriptor{"darwin", "arm64"}, CanonicalPlatform{OSDarwin, ArchARM64}},
		{HostDescriptor{"linux", "x64"}, CanonicalPlatform{OSLinux, ArchAMD64}},
		{HostDescriptor{"linux", "arm64"}, CanonicalPlatform{OSLinux, ArchARM64}},
		{HostDescriptor{"win32", "x64"}, CanonicalPlatform{OSWindows, ArchAMD64}},
		{HostDescriptor{"win32", "arm64"}, CanonicalPlatform{OSWindows, ArchARM64}},
	}

	for _, tt := range tests {
		t.Run(tt.host.String(), func(t *testing.T) {
			got, err := Resolve(tt.host)
			if err != nil {
				t.Fatalf("Resolve(%v) failed: %v", tt.host, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%v) = %v, want %v", tt.host, got, tt.want)
			}
		})
	}
}

func TestResolve_CoversSupportedHosts(t *testing.T) {
	hosts := SupportedHosts()
	if len(hosts) != 6 {
		t.Fatalf("SupportedHosts() returned %d entries, want 6", len(hosts))
	}
	for _, h := range hosts {
		if _, err := Resolve(h); err != nil {
			t.Errorf("Resolve(%v) failed: %v", h, err)
		}
	}
}

func TestResolve_UnsupportedPlatform(t *testing.T) {
	for _, raw := range []string{"freebsd", "openbsd", "aix", "windows", "", "Darwin"} {
		t.Run(raw, func(t *testing.T) {
			_, err := Resolve(HostDescriptor{OS: raw, Arch: "x64"})
			var pe *UnsupportedPlatformError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *UnsupportedPlatformError, got %T (%v)", err, err)
			}
			if pe.Raw != raw {
				t.Errorf("Raw = %q, want %q", pe.Raw, raw)
			}
			if !strings.Contains(err.Error(), raw) {
				t.Errorf("error %q does not name %q", err.Error(), raw)
			}
		})
	}
}

func TestResolve_UnsupportedArchitecture(t *testing.T) {
	for _, raw := range []string{"ia32", "arm", "ppc64", "amd64", "mips"} {
		t.Run(raw, func(t *testing.T) {
			_, err := Resolve(HostDescriptor{OS: "linux", Arch: raw})
			var ae *UnsupportedArchitectureError
			if !errors.As(err, &ae) {
				t.Fatalf("expected *UnsupportedArchitectureError, got %T (%v)", err, err)
			}
			if !strings.Contains(err.Error(), raw) {
				t.Errorf("error %q does not name %q", err.Error(), raw)
			}
		})
	}
}

func TestResolve_OSCheckedFirst(t *testing.T) {
	_, err := Resolve(HostDescriptor{OS: "sunos", Arch: "sparc"})
	var pe *UnsupportedPlatformError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *UnsupportedPlatformError when both are unknown, got %T", err)
	}
}

func TestCanonicalPlatform_String(t *testing.T) {
	p := CanonicalPlatform{OS: OSWindows, Arch: ArchAMD64}
	if got := p.String(); got != "windows/amd64" {
		t.Errorf("String() = %q, want %q", got, "windows/amd64")
	}
	if !p.IsWindows() {
		t.Error("IsWindows() = false for windows")
	}
}
