package toolchain

import (
	"runtime"
	"strings"

	"github.com/rkristelijn/glab-tui-install/internal/platform"
)

// Environment variables the toolchain reads for cross-compilation.
const (
	EnvGOOS       = "GOOS"
	EnvGOARCH     = "GOARCH"
	EnvCGOEnabled = "CGO_ENABLED"
)

// BuildEnv returns a copy of base with the target platform overlaid and
// cgo disabled. base is never modified.
func BuildEnv(base []string, p platform.CanonicalPlatform) []string {
	env := make([]string, len(base), len(base)+3)
	copy(env, base)

	env = setEnv(env, EnvGOOS, string(p.OS))
	env = setEnv(env, EnvGOARCH, string(p.Arch))
	env = setEnv(env, EnvCGOEnabled, "0")
	return env
}

// Overrides returns just the variables BuildEnv overlays, for display.
func Overrides(p platform.CanonicalPlatform) map[string]string {
	return map[string]string{
		EnvGOOS:       string(p.OS),
		EnvGOARCH:     string(p.Arch),
		EnvCGOEnabled: "0",
	}
}

// foldEnvKeys makes environment keys case-insensitive, as they are on
// Windows.
var foldEnvKeys = runtime.GOOS == "windows"

// setEnv sets or replaces an environment variable in the env slice. Later
// duplicates of key are dropped so the child sees exactly one value.
func setEnv(env []string, key, value string) []string {
	out := env[:0]
	found := false
	for _, e := range env {
		if !hasEnvKey(e, key) {
			out = append(out, e)
			continue
		}
		if !found {
			out = append(out, key+"="+value)
			found = true
		}
	}
	if !found {
		out = append(out, key+"="+value)
	}
	return out
}

func hasEnvKey(entry, key string) bool {
	k, _, ok := strings.Cut(entry, "=")
	if !ok {
		return false
	}
	if foldEnvKeys {
		return strings.EqualFold(k, key)
	}
	return k == key
}
