package platform

import (
	"runtime"
	"testing"
)

func TestHostFromGo(t *testing.T) {
	tests := []struct {
		goos, goarch string
		want         HostDescriptor
	}{
		{"darwin", "arm64", HostDescriptor{"darwin", "arm64"}},
		{"linux", "amd64", HostDescriptor{"linux", "x64"}},
		{"windows", "amd64", HostDescriptor{"win32", "x64"}},
		{"windows", "386", HostDescriptor{"win32", "ia32"}},
		{"freebsd", "riscv64", HostDescriptor{"freebsd", "riscv64"}},
	}
	for _, tt := range tests {
		if got := HostFromGo(tt.goos, tt.goarch); got != tt.want {
			t.Errorf("HostFromGo(%q, %q) = %v, want %v", tt.goos, tt.goarch, got, tt.want)
		}
	}
}

func TestDetectHost_RoundTrip(t *testing.T) {
	host := DetectHost()
	p, err := Resolve(host)
	if err != nil {
		t.Skipf("running on unsupported host %v: %v", host, err)
	}
	if string(p.OS) != runtime.GOOS || string(p.Arch) != runtime.GOARCH {
		t.Errorf("Resolve(DetectHost()) = %v, want %s/%s", p, runtime.GOOS, runtime.GOARCH)
	}
}

func TestWithOverrides(t *testing.T) {
	h := HostDescriptor{OS: "linux", Arch: "x64"}

	if got := h.WithOverrides("", ""); got != h {
		t.Errorf("empty overrides changed descriptor: %v", got)
	}
	got := h.WithOverrides("win32", "")
	if got.OS != "win32" || got.Arch != "x64" {
		t.Errorf("WithOverrides(win32, \"\") = %v", got)
	}
	if h.OS != "linux" {
		t.Error("WithOverrides mutated the receiver")
	}
}
