package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	viper.Reset()
	t.Cleanup(viper.Reset)
	return home
}

func TestDirAndFilePath(t *testing.T) {
	home := setupHome(t)
	if got := Dir(); got != filepath.Join(home, ".glab-tui") {
		t.Errorf("Dir() = %q", got)
	}
	if got := FilePath(); got != filepath.Join(home, ".glab-tui", "config.yaml") {
		t.Errorf("FilePath() = %q", got)
	}
}

func TestLoadDefaults(t *testing.T) {
	setupHome(t)
	if err := Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	s := Current()
	if s.Toolchain != "go" || s.LDFlags != "-s -w" || s.Mode != "source" {
		t.Errorf("defaults = %+v", s)
	}
	if s.PackageRoot != "" || s.HostOS != "" || s.HostArch != "" {
		t.Errorf("unexpected values = %+v", s)
	}
}

func TestLoadPrecedence(t *testing.T) {
	home := setupHome(t)
	dir := filepath.Join(home, ".glab-tui")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	file := "toolchain: /opt/go/bin/go\nhost_os: linux\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(file), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GLAB_TUI_HOST_OS", "win32")

	if err := Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	s := Current()
	if s.Toolchain != "/opt/go/bin/go" {
		t.Errorf("Toolchain = %q, want value from file", s.Toolchain)
	}
	if s.HostOS != "win32" {
		t.Errorf("HostOS = %q, want env override", s.HostOS)
	}
}

func TestSetAndGet(t *testing.T) {
	setupHome(t)
	if err := Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if err := Set(KeyPackageRoot, "/src/glab-tui"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if got := Get(KeyPackageRoot); got != "/src/glab-tui" {
		t.Errorf("Get = %q", got)
	}

	res, err := ValidateFile(FilePath())
	if err != nil {
		t.Fatalf("ValidateFile failed: %v", err)
	}
	if !res.Valid {
		t.Errorf("written config is invalid: %+v", res.Issues)
	}

	viper.Reset()
	if err := Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := Get(KeyPackageRoot); got != "/src/glab-tui" {
		t.Errorf("after reload Get = %q", got)
	}
}

func TestSetUnknownKey(t *testing.T) {
	setupHome(t)
	if err := Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := Set("mirror", "https://example.com"); err == nil {
		t.Error("expected error for unknown key")
	}
	if _, err := os.Stat(FilePath()); !os.IsNotExist(err) {
		t.Error("config file written for an unknown key")
	}
}

func TestSetWritesOnlyFileKeys(t *testing.T) {
	setupHome(t)
	if err := Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if err := Set(KeyToolchain, "/opt/go/bin/go"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	data, err := os.ReadFile(FilePath())
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	if !strings.Contains(got, "toolchain: /opt/go/bin/go") {
		t.Errorf("config file = %q", got)
	}
	for _, k := range []string{KeyLDFlags, KeyMode, KeyPackageRoot} {
		if strings.Contains(got, k+":") {
			t.Errorf("config file contains unset key %s:\n%s", k, got)
		}
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	setupHome(t)
	if err := EnsureDir(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(FilePath(), []byte("mode: [unclosed\n"), 0644); err != nil {
		t.Fatal(err)
	}

	err := Load()
	if err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
	if !strings.Contains(err.Error(), FilePath()) {
		t.Errorf("error %q does not name the file", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	setupHome(t)
	if err := Load(); err != nil {
		t.Fatalf("missing file should load defaults: %v", err)
	}
	if got := Get(KeyToolchain); got != "go" {
		t.Errorf("toolchain = %q, want default", got)
	}
}
