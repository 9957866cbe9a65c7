package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rkristelijn/glab-tui-install/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys. Each is also readable from GLAB_TUI_<KEY>.
const (
	KeyPackageRoot = "package_root"
	KeyToolchain   = "toolchain"
	KeyLDFlags     = "ldflags"
	KeyMode        = "mode"
	KeyHostOS      = "host_os"
	KeyHostArch    = "host_arch"
)

// Keys lists every recognized setting.
var Keys = []string{KeyPackageRoot, KeyToolchain, KeyLDFlags, KeyMode, KeyHostOS, KeyHostArch}

// Settings is the resolved configuration for one run.
type Settings struct {
	PackageRoot string
	Toolchain   string
	LDFlags     string
	Mode        string
	HostOS      string
	HostArch    string
}

// Dir returns the path to the config directory (~/.glab-tui/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.glab-tui/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment. A
// missing config file is not an error; an unreadable or malformed one is.
func Load() error {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyToolchain, "go")
	viper.SetDefault(KeyLDFlags, "-s -w")
	viper.SetDefault(KeyMode, "source")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", FilePath(), err)
	}
	return nil
}

// Current returns the settings Viper resolved from flags, environment,
// config file and defaults.
func Current() Settings {
	return Settings{
		PackageRoot: viper.GetString(KeyPackageRoot),
		Toolchain:   viper.GetString(KeyToolchain),
		LDFlags:     viper.GetString(KeyLDFlags),
		Mode:        viper.GetString(KeyMode),
		HostOS:      viper.GetString(KeyHostOS),
		HostArch:    viper.GetString(KeyHostArch),
	}
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// IsKnownKey reports whether key is a recognized setting.
func IsKnownKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKnownKey(key) {
		return fmt.Errorf("unknown config key %q", key)
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	// Only the file's own keys are written back; the global instance also
	// carries defaults and flag bindings.
	file := viper.New()
	file.SetConfigFile(configFile)
	file.SetConfigType(fileType)
	if err := file.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	file.Set(key, value)
	if err := file.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	viper.Set(key, value)
	return nil
}
