package toolchain

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rkristelijn/glab-tui-install/internal/platform"
	"github.com/rkristelijn/glab-tui-install/internal/testutil"
)

func TestProbe_Available(t *testing.T) {
	fake := testutil.FakeGo{}.Install(t)

	tc := New(fake.Path, "https://golang.org/dl/")
	if err := tc.Probe(context.Background()); err != nil {
		t.Fatalf("Probe failed: %v", err)
	}

	calls := fake.Calls(t)
	if len(calls) != 1 || calls[0] != "version" {
		t.Errorf("calls = %v, want [version]", calls)
	}
}

func TestProbe_NotOnPath(t *testing.T) {
	tc := New(filepath.Join(t.TempDir(), "no-such-go"), "https://golang.org/dl/")

	err := tc.Probe(context.Background())
	var missing *MissingError
	if !errors.As(err, &missing) {
		t.Fatalf("expected *MissingError, got %T (%v)", err, err)
	}
	if missing.InstallURL != "https://golang.org/dl/" {
		t.Errorf("InstallURL = %q", missing.InstallURL)
	}
}

func TestProbe_NonZeroExit(t *testing.T) {
	fake := testutil.FakeGo{VersionExit: 3}.Install(t)

	err := New(fake.Path, "").Probe(context.Background())
	var missing *MissingError
	if !errors.As(err, &missing) {
		t.Fatalf("expected *MissingError, got %T (%v)", err, err)
	}
}

func TestBuild_StreamsOutputAndInjectsEnv(t *testing.T) {
	fake := testutil.FakeGo{}.Install(t)
	root := t.TempDir()
	out := filepath.Join(root, "glab-tui")

	var stdout, stderr bytes.Buffer
	tc := &Toolchain{Binary: fake.Path, Stdout: &stdout, Stderr: &stderr}

	p := platform.CanonicalPlatform{OS: platform.OSLinux, Arch: platform.ArchARM64}
	req := BuildRequest{
		Dir:    root,
		Output: out,
		Env:    BuildEnv([]string{"PATH=/usr/bin:/bin", "GOOS=plan9"}, p),
	}
	if err := tc.Build(context.Background(), req); err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if !strings.Contains(stdout.String(), "building for linux/arm64") {
		t.Errorf("build output not streamed, stdout = %q", stdout.String())
	}

	got := testutil.ReadOutput(t, out)
	if got["GOOS"] != "linux" || got["GOARCH"] != "arm64" || got["CGO_ENABLED"] != "0" {
		t.Errorf("child saw env %v", got)
	}
	wantDir, _ := filepath.EvalSymlinks(root)
	if got["PWD"] != wantDir {
		t.Errorf("child ran in %q, want %q", got["PWD"], wantDir)
	}

	calls := fake.Calls(t)
	want := "build -ldflags=-s -w -o " + out + " ."
	if len(calls) != 1 || calls[0] != want {
		t.Errorf("calls = %v, want [%s]", calls, want)
	}
}

func TestBuild_Failure(t *testing.T) {
	fake := testutil.FakeGo{BuildExit: 2}.Install(t)

	var stderr bytes.Buffer
	tc := &Toolchain{Binary: fake.Path, Stdout: &bytes.Buffer{}, Stderr: &stderr}
	err := tc.Build(context.Background(), BuildRequest{
		Dir:    t.TempDir(),
		Output: filepath.Join(t.TempDir(), "glab-tui"),
		Env:    []string{"PATH=/usr/bin:/bin"},
	})

	var failed *BuildFailedError
	if !errors.As(err, &failed) {
		t.Fatalf("expected *BuildFailedError, got %T (%v)", err, err)
	}
	if failed.ExitCode != 2 {
		t.Errorf("ExitCode = %d, want 2", failed.ExitCode)
	}
	if !strings.Contains(stderr.String(), "build failed") {
		t.Errorf("stderr not streamed: %q", stderr.String())
	}
	if strings.Contains(err.Error(), "fake go") {
		t.Errorf("error duplicates streamed output: %q", err.Error())
	}
}

func TestBuild_RequiresOutput(t *testing.T) {
	if err := New("", "").Build(context.Background(), BuildRequest{}); err == nil {
		t.Fatal("expected error for empty output path")
	}
}

func TestBuildRequest_Args(t *testing.T) {
	args := BuildRequest{Output: "/x/bin/glab-tui"}.Args()
	want := []string{"build", "-ldflags=-s -w", "-o", "/x/bin/glab-tui", "."}
	if strings.Join(args, "|") != strings.Join(want, "|") {
		t.Errorf("Args() = %q, want %q", args, want)
	}

	args = BuildRequest{Output: "o", LDFlags: "-s", Package: "./cmd/tui"}.Args()
	if args[1] != "-ldflags=-s" || args[4] != "./cmd/tui" {
		t.Errorf("Args() ignored overrides: %q", args)
	}
}
