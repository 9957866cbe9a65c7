package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		valid     bool
		wantPaths []string
	}{
		{name: "empty", yaml: "", valid: true},
		{name: "full", yaml: "package_root: /src\ntoolchain: go\nldflags: -s -w\nmode: source\nhost_os: linux\nhost_arch: x64\n", valid: true},
		{name: "bad mode", yaml: "mode: docker\n", valid: false, wantPaths: []string{"/mode"}},
		{name: "empty toolchain", yaml: "toolchain: \"\"\n", valid: false, wantPaths: []string{"/toolchain"}},
		{name: "wrong type", yaml: "ldflags: [1, 2]\n", valid: false, wantPaths: []string{"/ldflags"}},
		{name: "unknown key", yaml: "mirror: https://example.com\n", valid: false, wantPaths: []string{"/mirror"}},
		{name: "not a map", yaml: "- a\n- b\n", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Validate([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Validate failed: %v", err)
			}
			if res.Valid != tt.valid {
				t.Fatalf("Valid = %v, want %v (issues %+v)", res.Valid, tt.valid, res.Issues)
			}
			if !tt.valid && len(res.Issues) == 0 {
				t.Error("invalid result has no issues")
			}
			for _, want := range tt.wantPaths {
				found := false
				for _, issue := range res.Issues {
					if issue.Path == want {
						found = true
					}
				}
				if !found {
					t.Errorf("no issue at %s: %+v", want, res.Issues)
				}
			}
		})
	}
}

func TestValidate_MalformedYAML(t *testing.T) {
	if _, err := Validate([]byte("mode: [unclosed")); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidateFile_Missing(t *testing.T) {
	res, err := ValidateFile(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("ValidateFile failed: %v", err)
	}
	if !res.Valid {
		t.Error("missing file should be valid")
	}
	if res.Err("x") != nil {
		t.Error("Err() on a valid result should be nil")
	}
}

func TestValidationResultErr(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("mode: docker\n"), 0644); err != nil {
		t.Fatal(err)
	}
	res, err := ValidateFile(path)
	if err != nil {
		t.Fatal(err)
	}
	verr := res.Err(path)
	if verr == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(verr.Error(), "1 validation issue(s)") || !strings.Contains(verr.Error(), "/mode") {
		t.Errorf("Err() = %q", verr)
	}
}

func TestValidate_UnknownKeyListsValidKeys(t *testing.T) {
	res, err := Validate([]byte("mirror: a\nbin_dir: b\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Issues) != 2 {
		t.Fatalf("issues = %+v, want one per unknown key", res.Issues)
	}
	for _, issue := range res.Issues {
		if !strings.Contains(issue.Message, "valid keys are package_root") {
			t.Errorf("message = %q", issue.Message)
		}
	}
}
