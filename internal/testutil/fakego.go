// Package testutil provides helpers for exercising the provisioner without
// a real Go toolchain.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"
)

// FakeGo describes a shell script that stands in for the "go" binary.
//
// "go version" prints Version and exits with VersionExit. "go build" prints
// a line to stdout, then either exits with BuildExit or writes a small text
// file at the -o path recording GOOS, GOARCH, CGO_ENABLED and the working
// directory it observed. Every invocation is appended to CallLog.
type FakeGo struct {
	Version     string
	VersionExit int
	BuildExit   int
	// Output changes what a successful build leaves at the -o path.
	Output BuildOutput
}

// BuildOutput selects the artifact a successful fake build produces.
type BuildOutput string

const (
	// OutputFile writes the KEY=VALUE report read by ReadOutput.
	OutputFile BuildOutput = ""
	// OutputNone writes nothing.
	OutputNone BuildOutput = "none"
	// OutputEmpty writes a zero-length file.
	OutputEmpty BuildOutput = "empty"
	// OutputDir creates a directory.
	OutputDir BuildOutput = "dir"
)

// Installed is a FakeGo written to disk.
type Installed struct {
	// Dir holds the script; prepend it to PATH to make it the "go" on PATH.
	Dir string
	// Path is the absolute path of the script.
	Path string
	// CallLog receives one line per invocation with the arguments.
	CallLog string
}

const fakeGoScript = `#!/bin/sh
echo "$*" >> "__LOG__"
case "$1" in
version)
	echo "go version go__VERSION__ fake/fake"
	exit __VERSION_EXIT__
	;;
build)
	out=""
	while [ $# -gt 0 ]; do
		if [ "$1" = "-o" ]; then out="$2"; fi
		shift
	done
	echo "fake go: building for $GOOS/$GOARCH"
	if [ __BUILD_EXIT__ -ne 0 ]; then
		echo "fake go: build failed" >&2
		exit __BUILD_EXIT__
	fi
	case "__OUTPUT__" in
	none) exit 0 ;;
	empty) : > "$out"; exit 0 ;;
	dir) mkdir -p "$out"; exit 0 ;;
	esac
	{
		echo "GOOS=$GOOS"
		echo "GOARCH=$GOARCH"
		echo "CGO_ENABLED=$CGO_ENABLED"
		echo "PWD=$(pwd -P)"
	} > "$out"
	exit 0
	;;
esac
exit 2
`

// Install writes the script into a fresh temp directory. Tests using it are
// skipped on Windows, where a shell script cannot stand in for go.exe.
func (f FakeGo) Install(t testing.TB) *Installed {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake toolchain requires a POSIX shell")
	}

	version := f.Version
	if version == "" {
		version = "1.22.3"
	}

	dir := t.TempDir()
	inst := &Installed{
		Dir:     dir,
		Path:    filepath.Join(dir, "go"),
		CallLog: filepath.Join(dir, "calls.log"),
	}

	script := strings.NewReplacer(
		"__LOG__", inst.CallLog,
		"__VERSION__", version,
		"__VERSION_EXIT__", strconv.Itoa(f.VersionExit),
		"__BUILD_EXIT__", strconv.Itoa(f.BuildExit),
		"__OUTPUT__", string(f.Output),
	).Replace(fakeGoScript)

	if err := os.WriteFile(inst.Path, []byte(script), 0755); err != nil {
		t.Fatalf("writing fake go: %v", err)
	}
	return inst
}

// Calls returns the recorded invocations, one argument string per call.
func (i *Installed) Calls(t testing.TB) []string {
	t.Helper()
	data, err := os.ReadFile(i.CallLog)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("reading call log: %v", err)
	}
	var calls []string
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line != "" {
			calls = append(calls, line)
		}
	}
	return calls
}

// OnPath prepends the script directory to PATH for the duration of the test.
func (i *Installed) OnPath(t testing.TB) {
	t.Helper()
	t.Setenv("PATH", i.Dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

// ReadOutput parses the KEY=VALUE file a successful fake build wrote.
func ReadOutput(t testing.TB, path string) map[string]string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading build output %s: %v", path, err)
	}
	out := make(map[string]string)
	for _, line := range strings.Split(string(data), "\n") {
		k, v, ok := strings.Cut(line, "=")
		if ok {
			out[k] = v
		}
	}
	return out
}
