// Package branding provides compile-time identity values for the installer.
//
// Values come from branding.yaml, embedded with //go:embed, so a fork can
// rename the produced binary without touching Go code.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName      string `yaml:"cli_name"`
	DisplayName  string `yaml:"display_name"`
	Description  string `yaml:"description"`
	BinaryName   string `yaml:"binary_name"`
	HomeDir      string `yaml:"home_dir"`
	EnvPrefix    string `yaml:"env_prefix"`
	GoModule     string `yaml:"go_module"`
	GitHubRepo   string `yaml:"github_repo"`
	ToolchainURL string `yaml:"toolchain_url"`
	UsageHint    string `yaml:"usage_hint"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:      "glab-tui-install",
			DisplayName:  "glab-tui",
			Description:  "Builds and installs the glab-tui binary for this machine",
			BinaryName:   "glab-tui",
			HomeDir:      ".glab-tui",
			EnvPrefix:    "GLAB_TUI",
			GoModule:     "github.com/rkristelijn/glab-tui-install",
			GitHubRepo:   "rkristelijn/glab-tui",
			ToolchainURL: "https://golang.org/dl/",
			UsageHint:    "npx glab-tui help",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "glab-tui-install").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// BinaryName returns the base file name of the produced binary, without
// any platform suffix (e.g., "glab-tui").
func BinaryName() string { load(); return defaults.BinaryName }

// HomeDir returns the dot-directory name under $HOME (e.g., ".glab-tui").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "GLAB_TUI").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns this installer's Go module path.
func GoModule() string { load(); return defaults.GoModule }

// GitHubRepo returns the "owner/repo" string of the product.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// ToolchainURL returns where users can download the Go toolchain.
func ToolchainURL() string { load(); return defaults.ToolchainURL }

// UsageHint returns the command suggested after a successful install.
func UsageHint() string { load(); return defaults.UsageHint }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("root") → "GLAB_TUI_ROOT".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
